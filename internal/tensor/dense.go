package tensor

import "fmt"

// Dense is a row-major dense float32 tensor.
//
// It is deliberately minimal: the constraint engine only ever materializes
// 0/1 masks and masked logits, so there is no dtype dispatch, no device
// placement, and no view sharing. A Dense is plain memory plus shape.
type Dense struct {
	shape  Shape
	stride []int
	data   []float32
}

// NewDense allocates a zero-filled tensor with the given shape.
func NewDense(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		shape:  shape.Clone(),
		stride: shape.strides(),
		data:   make([]float32, shape.NumElements()),
	}, nil
}

// FromSlice wraps data into a tensor with the given shape. The slice is
// used directly, not copied.
func FromSlice(data []float32, shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Dense{
		shape:  shape.Clone(),
		stride: shape.strides(),
		data:   data,
	}, nil
}

// Shape returns the tensor's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// Data returns the underlying flat storage.
func (d *Dense) Data() []float32 {
	return d.data
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return len(d.data)
}

// At returns the element at the given full index. Panics on rank mismatch
// or out-of-range indices, the same contract as slice indexing.
func (d *Dense) At(idx ...int) float32 {
	return d.data[d.offset(idx)]
}

// Set stores v at the given full index.
func (d *Dense) Set(v float32, idx ...int) {
	d.data[d.offset(idx)] = v
}

// Row returns the last-dimension row selected by the leading indices, as a
// mutable view into the tensor's storage. For a (B, L, V) tensor, Row(b, t)
// is the length-V vector at batch b, position t.
func (d *Dense) Row(leading ...int) []float32 {
	if len(leading) != len(d.shape)-1 {
		panic(fmt.Sprintf("Row: got %d indices for rank-%d tensor", len(leading), len(d.shape)))
	}
	off := 0
	for i, ix := range leading {
		if ix < 0 || ix >= d.shape[i] {
			panic(fmt.Sprintf("Row: index %d out of range for dimension %d (size %d)", ix, i, d.shape[i]))
		}
		off += ix * d.stride[i]
	}
	n := d.shape[len(d.shape)-1]
	return d.data[off : off+n]
}

// Fill sets every element to v.
func (d *Dense) Fill(v float32) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	data := make([]float32, len(d.data))
	copy(data, d.data)
	return &Dense{
		shape:  d.shape.Clone(),
		stride: d.shape.strides(),
		data:   data,
	}
}

func (d *Dense) offset(idx []int) int {
	if len(idx) != len(d.shape) {
		panic(fmt.Sprintf("got %d indices for rank-%d tensor", len(idx), len(d.shape)))
	}
	off := 0
	for i, ix := range idx {
		if ix < 0 || ix >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of range for dimension %d (size %d)", ix, i, d.shape[i]))
		}
		off += ix * d.stride[i]
	}
	return off
}
