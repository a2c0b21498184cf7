package activation

import (
	"github.com/born-ml/activ/internal/parallel"
	"github.com/born-ml/activ/internal/tensor"
)

// Forward computes y = h(a) for every sample in the batch.
//
// Samples are handed to forI independently; each body writes only its own row
// of y, so any ForFunc (including parallel.Sequential) yields identical results.
// A nil forI runs sequentially. An empty a returns without touching y.
//
// Shapes are not checked: y must have len(a) rows, each at least len(a[0]) wide.
func Forward[T tensor.Float, F Function[T]](y, a tensor.Batch[T], h F, forI parallel.ForFunc) {
	if len(a) == 0 {
		return
	}
	if forI == nil {
		forI = parallel.Sequential
	}

	width := len(a[0])
	forI(len(y), func(sample int) {
		out := y[sample]
		in := a[sample]
		for i := 0; i < width; i++ {
			out[i] = h.F(in, i)
		}
	})
}

// Backward propagates prevDelta (the error w.r.t. this layer's output) through h,
// writing the error w.r.t. the pre-activation into currDelta.
//
// For a diagonal Jacobian this is prevDelta[c] * h.DF(thisOut[c]); otherwise each
// element is the dot product of prevDelta with the Jacobian row h.DFRow(thisOut, c).
// OneHot is the only thing consulted to choose between the two.
func Backward[T tensor.Float, F Function[T]](prevDelta, thisOut, currDelta tensor.Batch[T], h F, forI parallel.ForFunc) {
	if forI == nil {
		forI = parallel.Sequential
	}

	oneHot := h.OneHot()
	forI(len(thisOut), func(sample int) {
		out := thisOut[sample]
		prev := prevDelta[sample]
		curr := currDelta[sample]
		n := len(prev)

		if oneHot {
			for c := 0; c < n; c++ {
				curr[c] = prev[c] * h.DF(out[c])
			}
			return
		}
		for c := 0; c < n; c++ {
			curr[c] = tensor.Dot(prev, h.DFRow(out, c))
		}
	})
}

// Apply is Forward into a freshly allocated batch.
func Apply[T tensor.Float, F Function[T]](a tensor.Batch[T], h F, forI parallel.ForFunc) tensor.Batch[T] {
	y := tensor.ZerosLike(a)
	Forward(y, a, h, forI)
	return y
}

// Gradient is Backward into a freshly allocated batch.
func Gradient[T tensor.Float, F Function[T]](prevDelta, thisOut tensor.Batch[T], h F, forI parallel.ForFunc) tensor.Batch[T] {
	curr := tensor.ZerosLike(thisOut)
	Backward(prevDelta, thisOut, curr, h, forI)
	return curr
}

// ForwardKind runs Forward with the concrete activation for k.
func ForwardKind[T tensor.Float](k Kind, y, a tensor.Batch[T], forI parallel.ForFunc) error {
	switch k {
	case KindIdentity:
		Forward(y, a, Identity[T]{}, forI)
	case KindSigmoid:
		Forward(y, a, Sigmoid[T]{}, forI)
	case KindReLU:
		Forward(y, a, ReLU[T]{}, forI)
	case KindLeakyReLU:
		Forward(y, a, LeakyReLU[T]{}, forI)
	case KindELU:
		Forward(y, a, ELU[T]{}, forI)
	case KindTanh:
		Forward(y, a, Tanh[T]{}, forI)
	case KindTanhP1M2:
		Forward(y, a, TanhP1M2[T]{}, forI)
	case KindSoftmax:
		Forward(y, a, Softmax[T]{}, forI)
	default:
		return unknownKind(k)
	}
	return nil
}

// BackwardKind runs Backward with the concrete activation for k.
func BackwardKind[T tensor.Float](k Kind, prevDelta, thisOut, currDelta tensor.Batch[T], forI parallel.ForFunc) error {
	switch k {
	case KindIdentity:
		Backward(prevDelta, thisOut, currDelta, Identity[T]{}, forI)
	case KindSigmoid:
		Backward(prevDelta, thisOut, currDelta, Sigmoid[T]{}, forI)
	case KindReLU:
		Backward(prevDelta, thisOut, currDelta, ReLU[T]{}, forI)
	case KindLeakyReLU:
		Backward(prevDelta, thisOut, currDelta, LeakyReLU[T]{}, forI)
	case KindELU:
		Backward(prevDelta, thisOut, currDelta, ELU[T]{}, forI)
	case KindTanh:
		Backward(prevDelta, thisOut, currDelta, Tanh[T]{}, forI)
	case KindTanhP1M2:
		Backward(prevDelta, thisOut, currDelta, TanhP1M2[T]{}, forI)
	case KindSoftmax:
		Backward(prevDelta, thisOut, currDelta, Softmax[T]{}, forI)
	default:
		return unknownKind(k)
	}
	return nil
}
