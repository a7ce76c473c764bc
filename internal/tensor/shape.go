// Package tensor provides the dense float32 tensors the constraint engine
// trades in: per-batch constraint masks and the logits they are applied to,
// both of shape (batch, sequence length, alphabet size).
package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// strides calculates row-major strides for the shape.
func (s Shape) strides() []int {
	st := make([]int, len(s))
	if len(s) == 0 {
		return st
	}
	st[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		st[i] = st[i+1] * s[i+1]
	}
	return st
}
