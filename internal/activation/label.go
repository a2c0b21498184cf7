package activation

import "github.com/born-ml/activ/internal/tensor"

// LabelVector encodes a class label as a target vector in h's target range:
// every element is the low end of h.Scale() except index label, which is the high end.
// label must be in [0, width).
func LabelVector[T tensor.Float](h Function[T], label, width int) tensor.Vec[T] {
	low, high := h.Scale()
	v := make(tensor.Vec[T], width)
	for i := range v {
		v[i] = low
	}
	v[label] = high
	return v
}

// LabelBatch encodes one target vector per label.
func LabelBatch[T tensor.Float](h Function[T], labels []int, width int) tensor.Batch[T] {
	b := make(tensor.Batch[T], len(labels))
	for s, label := range labels {
		b[s] = LabelVector(h, label, width)
	}
	return b
}

// Rescale maps v linearly from [srcLo, srcHi] into h's target range.
// A degenerate source range maps everything to the middle of the target range.
func Rescale[T tensor.Float](h Function[T], v tensor.Vec[T], srcLo, srcHi T) tensor.Vec[T] {
	low, high := h.Scale()
	out := make(tensor.Vec[T], len(v))
	if srcHi == srcLo {
		mid := (low + high) / 2
		for i := range out {
			out[i] = mid
		}
		return out
	}
	k := (high - low) / (srcHi - srcLo)
	for i, x := range v {
		out[i] = low + (x-srcLo)*k
	}
	return out
}
