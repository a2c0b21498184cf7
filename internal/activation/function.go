// Package activation implements the activation function family and the batched
// forward/backward evaluation that a layer runs over its output tensor.
package activation

import (
	"math"

	"github.com/born-ml/activ/internal/tensor"
)

// Function is a stateless nonlinearity applied to a layer's pre-activation values.
//
// Derivatives are expressed in terms of the already computed output y = F(x),
// not the input x, so the backward pass never has to re-read pre-activations.
//
// None of the methods validate their arguments: index i must be in [0, len(v)).
type Function[T tensor.Float] interface {
	// F returns the activation at index i given the full pre-activation vector.
	F(v tensor.Vec[T], i int) T

	// DF returns dF_i/dy_i for the output value y.
	DF(y T) T

	// DFRow returns dF_i/dy_k for every k in [0, len(y)).
	DFRow(y tensor.Vec[T], i int) tensor.Vec[T]

	// OneHot reports whether the Jacobian is diagonal, i.e. DFRow is zero off index i.
	OneHot() bool

	// Scale returns the target value range used when encoding training targets.
	Scale() (lo, hi T)
}

// DiagonalRow is the Jacobian row of an elementwise activation: zero everywhere
// except index i, which holds h.DF(y[i]).
func DiagonalRow[T tensor.Float](h Function[T], y tensor.Vec[T], i int) tensor.Vec[T] {
	row := tensor.Zeros[T](len(y))
	row[i] = h.DF(y[i])
	return row
}

func exp[T tensor.Float](x T) T {
	return T(math.Exp(float64(x)))
}
