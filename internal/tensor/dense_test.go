package tensor

import "testing"

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{2, 3, 4}, 24},
		{Shape{5}, 5},
		{Shape{}, 1}, // scalar
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShape_Validate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestShape_Equal(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("unequal shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("different ranks reported equal")
	}
}

func TestNewDense(t *testing.T) {
	d, err := NewDense(Shape{2, 3, 4})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	if !d.Shape().Equal(Shape{2, 3, 4}) {
		t.Errorf("shape = %v, want [2 3 4]", d.Shape())
	}
	if d.NumElements() != 24 {
		t.Errorf("NumElements = %d, want 24", d.NumElements())
	}
	for i, v := range d.Data() {
		if v != 0 {
			t.Fatalf("element %d not zero-initialized: %v", i, v)
		}
	}

	if _, err := NewDense(Shape{2, 0}); err == nil {
		t.Error("invalid shape accepted")
	}
}

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	d, err := FromSlice(data, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if got := d.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %v, want 6", got)
	}

	if _, err := FromSlice(data, Shape{2, 2}); err == nil {
		t.Error("length mismatch accepted")
	}
}

func TestDense_AtSet(t *testing.T) {
	d, err := NewDense(Shape{2, 3})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	d.Set(42, 1, 1)
	if got := d.At(1, 1); got != 42 {
		t.Errorf("At(1,1) = %v, want 42", got)
	}
	if got := d.At(0, 1); got != 0 {
		t.Errorf("At(0,1) = %v, want 0", got)
	}
}

func TestDense_Row(t *testing.T) {
	d, err := NewDense(Shape{2, 3, 4})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	row := d.Row(1, 2)
	if len(row) != 4 {
		t.Fatalf("row length = %d, want 4", len(row))
	}

	// Row is a mutable view into storage.
	row[3] = 7
	if got := d.At(1, 2, 3); got != 7 {
		t.Errorf("At(1,2,3) = %v, want 7 after writing through Row", got)
	}
}

func TestDense_FillAndClone(t *testing.T) {
	d, err := NewDense(Shape{2, 2})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	d.Fill(3)

	c := d.Clone()
	c.Set(9, 0, 0)

	if got := d.At(0, 0); got != 3 {
		t.Errorf("clone shares storage: original At(0,0) = %v, want 3", got)
	}
	if got := c.At(0, 0); got != 9 {
		t.Errorf("clone At(0,0) = %v, want 9", got)
	}
}

func TestDense_PanicsOnBadIndex(t *testing.T) {
	d, err := NewDense(Shape{2, 3})
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}

	assertPanics := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}

	assertPanics("At out of range", func() { d.At(2, 0) })
	assertPanics("At rank mismatch", func() { d.At(1) })
	assertPanics("Row rank mismatch", func() { d.Row(1, 1) })
}
