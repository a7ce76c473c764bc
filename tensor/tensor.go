// Copyright 2025 The Lextag Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float32 tensors exchanged with the
// constraint engine and decoder: per-batch constraint masks and (masked)
// logits, both of shape (batch, sequence length, alphabet size).
//
// Example:
//
//	mask, err := tensor.NewDense(tensor.Shape{batch, maxLen, numLabels})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	row := mask.Row(0, 0) // length-numLabels vector for the first token
package tensor

import (
	"github.com/lextag-ml/lextag/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is a row-major dense float32 tensor.
type Dense = tensor.Dense

// NewDense allocates a zero-filled tensor with the given shape.
func NewDense(shape Shape) (*Dense, error) {
	return tensor.NewDense(shape)
}

// FromSlice wraps data into a tensor with the given shape. The slice is
// used directly, not copied.
func FromSlice(data []float32, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}
