package tensor

import "fmt"

// Vec is a sample vector: the activations of one example, indexed 0..N-1.
type Vec[T Float] []T

// Batch is an ordered sequence of sample vectors sharing the same width.
type Batch[T Float] []Vec[T]

// Zeros returns a zero-filled vector of length n.
func Zeros[T Float](n int) Vec[T] {
	return make(Vec[T], n)
}

// NewBatch allocates a zero-filled batch of samples x width.
// All rows share one backing array.
func NewBatch[T Float](samples, width int) Batch[T] {
	data := make([]T, samples*width)
	b := make(Batch[T], samples)
	for s := range b {
		b[s] = data[s*width : (s+1)*width : (s+1)*width]
	}
	return b
}

// ZerosLike allocates a zero-filled batch with the same per-sample widths as b.
func ZerosLike[T Float](b Batch[T]) Batch[T] {
	out := make(Batch[T], len(b))
	for s := range b {
		out[s] = make(Vec[T], len(b[s]))
	}
	return out
}

// FromRows copies rows into a new batch, converting from float64.
func FromRows[T Float](rows [][]float64) Batch[T] {
	out := make(Batch[T], len(rows))
	for s, row := range rows {
		v := make(Vec[T], len(row))
		for i, x := range row {
			v[i] = T(x)
		}
		out[s] = v
	}
	return out
}

// Rows converts the batch to float64 rows.
func (b Batch[T]) Rows() [][]float64 {
	out := make([][]float64, len(b))
	for s, v := range b {
		row := make([]float64, len(v))
		for i, x := range v {
			row[i] = float64(x)
		}
		out[s] = row
	}
	return out
}

// Clone returns a deep copy of the batch.
func (b Batch[T]) Clone() Batch[T] {
	out := make(Batch[T], len(b))
	for s, v := range b {
		out[s] = append(Vec[T](nil), v...)
	}
	return out
}

// Clone returns a copy of the vector.
func (v Vec[T]) Clone() Vec[T] {
	return append(Vec[T](nil), v...)
}

// Shape returns the number of samples and the width of the first sample.
// An empty batch has shape (0, 0).
func (b Batch[T]) Shape() (samples, width int) {
	if len(b) == 0 {
		return 0, 0
	}
	return len(b), len(b[0])
}

// Rectangular reports whether every sample has the same width.
func (b Batch[T]) Rectangular() bool {
	_, width := b.Shape()
	for _, v := range b {
		if len(v) != width {
			return false
		}
	}
	return true
}

// SameShape reports whether all batches are rectangular and share the shape of a.
func SameShape[T Float](a Batch[T], others ...Batch[T]) bool {
	if !a.Rectangular() {
		return false
	}
	samples, width := a.Shape()
	for _, o := range others {
		if !o.Rectangular() {
			return false
		}
		s, w := o.Shape()
		if s != samples || w != width {
			return false
		}
	}
	return true
}

// ShapeError describes a batch that does not match the expected shape.
type ShapeError struct {
	Name           string
	Samples, Width int
	WantS, WantW   int
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("batch %q has shape [%d, %d], expected [%d, %d]",
		e.Name, e.Samples, e.Width, e.WantS, e.WantW)
}

// CheckShape returns a *ShapeError when b is not rectangular or its shape differs
// from (samples, width).
func CheckShape[T Float](name string, b Batch[T], samples, width int) error {
	s, w := b.Shape()
	if !b.Rectangular() {
		w = -1
	}
	if s != samples || w != width {
		return &ShapeError{Name: name, Samples: s, Width: w, WantS: samples, WantW: width}
	}
	return nil
}
