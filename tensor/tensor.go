// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public sample and batch containers used by activation passes.
//
// A Batch is a slice of sample vectors; every sample in a batch has the same width.
//
// Example:
//
//	b := tensor.NewBatch[float32](2, 3)  // 2 samples, 3 outputs each
//	s := tensor.Dot(b[0], b[1])
package tensor

import (
	"github.com/born-ml/activ/internal/tensor"
)

// Type aliases for public API

// Float is a constraint for the scalar types activations are evaluated in.
type Float = tensor.Float

// DataType represents the scalar type at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Vec is a sample vector.
type Vec[T Float] = tensor.Vec[T]

// Batch is an ordered sequence of sample vectors.
type Batch[T Float] = tensor.Batch[T]

// ShapeError describes a batch that does not match the expected shape.
type ShapeError = tensor.ShapeError

// Zeros returns a zero-filled vector of length n.
func Zeros[T Float](n int) Vec[T] {
	return tensor.Zeros[T](n)
}

// NewBatch allocates a zero-filled batch of samples x width.
func NewBatch[T Float](samples, width int) Batch[T] {
	return tensor.NewBatch[T](samples, width)
}

// ZerosLike allocates a zero-filled batch shaped like b.
func ZerosLike[T Float](b Batch[T]) Batch[T] {
	return tensor.ZerosLike(b)
}

// FromRows copies float64 rows into a new batch of T.
func FromRows[T Float](rows [][]float64) Batch[T] {
	return tensor.FromRows[T](rows)
}

// SameShape reports whether all batches are rectangular and equally shaped.
func SameShape[T Float](a Batch[T], others ...Batch[T]) bool {
	return tensor.SameShape(a, others...)
}

// CheckShape returns a *ShapeError when b is not a rectangular samples x width batch.
func CheckShape[T Float](name string, b Batch[T], samples, width int) error {
	return tensor.CheckShape(name, b, samples, width)
}

// Dot computes Σ a[i]*b[i] over the shorter of the two vectors.
func Dot[T Float](a, b []T) T {
	return tensor.Dot(a, b)
}
