// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"github.com/born-ml/activ/internal/activation"
	"github.com/born-ml/activ/internal/parallel"
	"github.com/born-ml/activ/internal/tensor"
)

// Float is the constraint for scalar types activations are evaluated in.
type Float = tensor.Float

// Vec is one sample's activations.
type Vec[T Float] = tensor.Vec[T]

// Batch is a sequence of equally wide sample vectors.
type Batch[T Float] = tensor.Batch[T]

// NewBatch allocates a zero-filled batch of samples x width.
func NewBatch[T Float](samples, width int) Batch[T] {
	return tensor.NewBatch[T](samples, width)
}

// Function is the capability set every activation exposes.
type Function[T Float] = activation.Function[T]

// Activations

// Identity passes values through: f(x) = x.
type Identity[T Float] = activation.Identity[T]

// Sigmoid is the logistic function: f(x) = 1 / (1 + exp(-x)).
type Sigmoid[T Float] = activation.Sigmoid[T]

// ReLU is the rectified linear unit: f(x) = max(0, x).
type ReLU[T Float] = activation.ReLU[T]

// LeakyReLU is ReLU with slope 0.01 for x <= 0.
type LeakyReLU[T Float] = activation.LeakyReLU[T]

// ELU is the exponential linear unit: x for x >= 0, exp(x) - 1 otherwise.
type ELU[T Float] = activation.ELU[T]

// Tanh is the hyperbolic tangent.
type Tanh[T Float] = activation.Tanh[T]

// TanhP1M2 is tanh rescaled into (0, 1).
type TanhP1M2[T Float] = activation.TanhP1M2[T]

// Softmax normalizes a sample vector into a probability distribution.
type Softmax[T Float] = activation.Softmax[T]

// DiagonalRow builds the Jacobian row of an elementwise activation.
func DiagonalRow[T Float](h Function[T], y Vec[T], i int) Vec[T] {
	return activation.DiagonalRow(h, y, i)
}

// Evaluation

// ForFunc is the iteration strategy Forward and Backward spread samples over.
type ForFunc = parallel.ForFunc

// Forward computes y = h(a) for every sample in the batch.
//
// Example:
//
//	y := activation.NewBatch[float64](len(a), len(a[0]))
//	activation.Forward(y, a, activation.ReLU[float64]{}, nil)
func Forward[T Float, F Function[T]](y, a Batch[T], h F, forI ForFunc) {
	activation.Forward(y, a, h, forI)
}

// Backward propagates prevDelta through h into currDelta, using the forward output thisOut.
func Backward[T Float, F Function[T]](prevDelta, thisOut, currDelta Batch[T], h F, forI ForFunc) {
	activation.Backward(prevDelta, thisOut, currDelta, h, forI)
}

// Apply is Forward into a freshly allocated batch.
func Apply[T Float, F Function[T]](a Batch[T], h F, forI ForFunc) Batch[T] {
	return activation.Apply(a, h, forI)
}

// Gradient is Backward into a freshly allocated batch.
func Gradient[T Float, F Function[T]](prevDelta, thisOut Batch[T], h F, forI ForFunc) Batch[T] {
	return activation.Gradient(prevDelta, thisOut, h, forI)
}

// Registry

// Kind identifies an activation by name.
type Kind = activation.Kind

// Supported activations.
const (
	KindIdentity  = activation.KindIdentity
	KindSigmoid   = activation.KindSigmoid
	KindReLU      = activation.KindReLU
	KindLeakyReLU = activation.KindLeakyReLU
	KindELU       = activation.KindELU
	KindTanh      = activation.KindTanh
	KindTanhP1M2  = activation.KindTanhP1M2
	KindSoftmax   = activation.KindSoftmax
)

// ErrUnknownActivation is returned for names and kinds outside the family.
var ErrUnknownActivation = activation.ErrUnknownActivation

// ParseKind resolves a canonical name or alias such as "relu" or "rectified_linear".
func ParseKind(name string) (Kind, error) {
	return activation.ParseKind(name)
}

// Kinds returns every activation in declaration order.
func Kinds() []Kind {
	return activation.Kinds()
}

// New returns the activation for k evaluated in T.
//
// Example:
//
//	kind, err := activation.ParseKind("softmax")
//	h, err := activation.New[float32](kind)
func New[T Float](k Kind) (Function[T], error) {
	return activation.New[T](k)
}

// ForwardKind runs Forward with the concrete activation for k.
func ForwardKind[T Float](k Kind, y, a Batch[T], forI ForFunc) error {
	return activation.ForwardKind(k, y, a, forI)
}

// BackwardKind runs Backward with the concrete activation for k.
func BackwardKind[T Float](k Kind, prevDelta, thisOut, currDelta Batch[T], forI ForFunc) error {
	return activation.BackwardKind(k, prevDelta, thisOut, currDelta, forI)
}

// Utilities

// LabelVector encodes a class label in h's target range.
func LabelVector[T Float](h Function[T], label, width int) Vec[T] {
	return activation.LabelVector(h, label, width)
}

// Rescale maps v from [srcLo, srcHi] into h's target range.
func Rescale[T Float](h Function[T], v Vec[T], srcLo, srcHi T) Vec[T] {
	return activation.Rescale(h, v, srcLo, srcHi)
}

// GradReport is the worst disagreement found by GradCheck.
type GradReport = activation.GradReport

// GradCheck compares Backward with central finite differences of Forward.
func GradCheck[T Float, F Function[T]](h F, a, upstream Batch[T], eps float64, forI ForFunc) GradReport {
	return activation.GradCheck(h, a, upstream, eps, forI)
}
