package activation

import (
	"math"

	"github.com/born-ml/activ/internal/tensor"
)

// Identity passes values through unchanged.
type Identity[T tensor.Float] struct{}

// F returns v[i].
func (Identity[T]) F(v tensor.Vec[T], i int) T { return v[i] }

// DF is 1 everywhere.
func (Identity[T]) DF(T) T { return 1 }

// DFRow returns the diagonal Jacobian row.
func (h Identity[T]) DFRow(y tensor.Vec[T], i int) tensor.Vec[T] {
	return DiagonalRow[T](h, y, i)
}

// OneHot is true: the Jacobian is diagonal.
func (Identity[T]) OneHot() bool { return true }

// Scale returns (0.1, 0.9).
func (Identity[T]) Scale() (lo, hi T) { return 0.1, 0.9 }

// Sigmoid is the logistic function.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// The derivative in terms of the output is σ'(x) = y * (1 - y).
type Sigmoid[T tensor.Float] struct{}

// F returns σ(v[i]).
func (Sigmoid[T]) F(v tensor.Vec[T], i int) T { return 1 / (1 + exp(-v[i])) }

// DF returns y * (1 - y).
func (Sigmoid[T]) DF(y T) T { return y * (1 - y) }

// DFRow returns the diagonal Jacobian row.
func (h Sigmoid[T]) DFRow(y tensor.Vec[T], i int) tensor.Vec[T] {
	return DiagonalRow[T](h, y, i)
}

// OneHot is true: the Jacobian is diagonal.
func (Sigmoid[T]) OneHot() bool { return true }

// Scale returns (0.1, 0.9).
func (Sigmoid[T]) Scale() (lo, hi T) { return 0.1, 0.9 }

// ReLU is a Rectified Linear Unit: f(x) = max(0, x).
//
// DF(0) is 0: the kink resolves to the inactive branch. A NaN input maps to 0.
type ReLU[T tensor.Float] struct{}

// RectifiedLinear is an alias kept for configurations that spell out the name.
type RectifiedLinear[T tensor.Float] = ReLU[T]

// F returns v[i] when it is positive and 0 otherwise, including for NaN.
func (ReLU[T]) F(v tensor.Vec[T], i int) T {
	if x := v[i]; x > 0 {
		return x
	}
	return 0
}

// DF returns 1 for y > 0 and 0 otherwise.
func (ReLU[T]) DF(y T) T {
	if y > 0 {
		return 1
	}
	return 0
}

// DFRow returns the diagonal Jacobian row.
func (h ReLU[T]) DFRow(y tensor.Vec[T], i int) tensor.Vec[T] {
	return DiagonalRow[T](h, y, i)
}

// OneHot is true: the Jacobian is diagonal.
func (ReLU[T]) OneHot() bool { return true }

// Scale returns (0.1, 0.9).
func (ReLU[T]) Scale() (lo, hi T) { return 0.1, 0.9 }

// LeakyReLU keeps a 0.01 slope for non-positive inputs.
type LeakyReLU[T tensor.Float] struct{}

// LeakySlope is the LeakyReLU slope for x <= 0.
const LeakySlope = 0.01

// F returns v[i] when it is positive and LeakySlope*v[i] otherwise.
func (LeakyReLU[T]) F(v tensor.Vec[T], i int) T {
	if x := v[i]; x > 0 {
		return x
	}
	return LeakySlope * v[i]
}

// DF is evaluated on the output, so a negative leak output y = 0.01x still yields 0.01.
func (LeakyReLU[T]) DF(y T) T {
	if y > 0 {
		return 1
	}
	return LeakySlope
}

// DFRow returns the diagonal Jacobian row.
func (h LeakyReLU[T]) DFRow(y tensor.Vec[T], i int) tensor.Vec[T] {
	return DiagonalRow[T](h, y, i)
}

// OneHot is true: the Jacobian is diagonal.
func (LeakyReLU[T]) OneHot() bool { return true }

// Scale returns (0.1, 0.9).
func (LeakyReLU[T]) Scale() (lo, hi T) { return 0.1, 0.9 }

// ELU is the exponential linear unit: x for x >= 0, exp(x) - 1 otherwise.
// For negative inputs exp(x) = 1 + y, which is what DF returns.
type ELU[T tensor.Float] struct{}

// F returns v[i] for v[i] >= 0 and exp(v[i]) - 1 otherwise.
func (ELU[T]) F(v tensor.Vec[T], i int) T {
	if x := v[i]; x < 0 {
		return exp(x) - 1
	}
	return v[i]
}

// DF returns 1 for y > 0 and 1 + y otherwise.
func (ELU[T]) DF(y T) T {
	if y > 0 {
		return 1
	}
	return 1 + y
}

// DFRow returns the diagonal Jacobian row.
func (h ELU[T]) DFRow(y tensor.Vec[T], i int) tensor.Vec[T] {
	return DiagonalRow[T](h, y, i)
}

// OneHot is true: the Jacobian is diagonal.
func (ELU[T]) OneHot() bool { return true }

// Scale returns (0.1, 0.9).
func (ELU[T]) Scale() (lo, hi T) { return 0.1, 0.9 }

// Tanh is the hyperbolic tangent.
//
// Applies the element-wise function: tanh(x) = (exp(x) - exp(-x)) / (exp(x) + exp(-x))
//
// Tanh is zero-centered, so its target range is symmetric: (-0.8, 0.8).
type Tanh[T tensor.Float] struct{}

// F returns tanh(v[i]).
func (Tanh[T]) F(v tensor.Vec[T], i int) T { return T(math.Tanh(float64(v[i]))) }

// DF returns 1 - y².
func (Tanh[T]) DF(y T) T { return 1 - y*y }

// DFRow returns the diagonal Jacobian row.
func (h Tanh[T]) DFRow(y tensor.Vec[T], i int) tensor.Vec[T] {
	return DiagonalRow[T](h, y, i)
}

// OneHot is true: the Jacobian is diagonal.
func (Tanh[T]) OneHot() bool { return true }

// Scale returns (-0.8, 0.8).
func (Tanh[T]) Scale() (lo, hi T) { return -0.8, 0.8 }

// TanhP1M2 is tanh rescaled into (0, 1) to match the other functions' target range:
// f(x) = exp(x) / (exp(x) + exp(-x)) = (tanh(x) + 1) / 2.
type TanhP1M2[T tensor.Float] struct{}

// F returns exp(v[i]) / (exp(v[i]) + exp(-v[i])).
func (TanhP1M2[T]) F(v tensor.Vec[T], i int) T {
	ep := exp(v[i])
	return ep / (ep + exp(-v[i]))
}

// DF returns 2y(1 - y).
func (TanhP1M2[T]) DF(y T) T { return 2 * y * (1 - y) }

// DFRow returns the diagonal Jacobian row.
func (h TanhP1M2[T]) DFRow(y tensor.Vec[T], i int) tensor.Vec[T] {
	return DiagonalRow[T](h, y, i)
}

// OneHot is true: the Jacobian is diagonal.
func (TanhP1M2[T]) OneHot() bool { return true }

// Scale returns (0.1, 0.9).
func (TanhP1M2[T]) Scale() (lo, hi T) { return 0.1, 0.9 }

// Softmax normalizes a whole sample vector into a probability distribution.
//
// Applies: softmax(x)_i = exp(x_i - α) / Σ_k exp(x_k - α), with α = max(x).
//
// Subtracting α keeps exp from overflowing and leaves the result unchanged.
// Every output depends on every input, so the Jacobian is dense and OneHot is false.
type Softmax[T tensor.Float] struct{}

// F returns the normalized exponential of v[i]. α is the first largest element;
// a NaN after the first position never replaces it.
func (Softmax[T]) F(v tensor.Vec[T], i int) T {
	alpha := v[0]
	for _, x := range v[1:] {
		if alpha < x {
			alpha = x
		}
	}
	numer := exp(v[i] - alpha)
	var denom T
	for _, x := range v {
		denom += exp(x - alpha)
	}
	return numer / denom
}

// DF is the diagonal term only.
func (Softmax[T]) DF(y T) T { return y * (1 - y) }

// DFRow returns the dense row: DF(y[i]) at k == i, -y[k]*y[i] elsewhere.
func (h Softmax[T]) DFRow(y tensor.Vec[T], i int) tensor.Vec[T] {
	row := tensor.Zeros[T](len(y))
	for k := range y {
		if k == i {
			row[k] = h.DF(y[i])
		} else {
			row[k] = -y[k] * y[i]
		}
	}
	return row
}

// OneHot is false: every output depends on every input.
func (Softmax[T]) OneHot() bool { return false }

// Scale returns (0, 1).
func (Softmax[T]) Scale() (lo, hi T) { return 0, 1 }
