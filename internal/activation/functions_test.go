package activation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/activ/internal/tensor"
)

func f1[T tensor.Float](h Function[T], x T) T {
	return h.F(tensor.Vec[T]{x}, 0)
}

func TestOneHot(t *testing.T) {
	for _, k := range Kinds() {
		h := MustNew[float64](k)
		assert.Equal(t, k != KindSoftmax, h.OneHot(), k.String())
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		kind   Kind
		lo, hi float64
	}{
		{KindIdentity, 0.1, 0.9},
		{KindSigmoid, 0.1, 0.9},
		{KindReLU, 0.1, 0.9},
		{KindLeakyReLU, 0.1, 0.9},
		{KindELU, 0.1, 0.9},
		{KindTanh, -0.8, 0.8},
		{KindTanhP1M2, 0.1, 0.9},
		{KindSoftmax, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			lo, hi := MustNew[float64](tt.kind).Scale()
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestPurity(t *testing.T) {
	v := tensor.Vec[float64]{-1.5, -0.2, 0, 0.7, 3}
	for _, k := range Kinds() {
		h := MustNew[float64](k)
		for i := range v {
			y1, y2 := h.F(v, i), h.F(v, i)
			assert.Equal(t, math.Float64bits(y1), math.Float64bits(y2), "%s F(v, %d)", k, i)
			assert.Equal(t, h.DF(y1), h.DF(y2), "%s DF", k)
			assert.Equal(t, h.DFRow(v, i), h.DFRow(v, i), "%s DFRow", k)
		}
	}
}

func TestIdentity(t *testing.T) {
	h := Identity[float64]{}
	assert.Equal(t, -3.5, f1[float64](h, -3.5))
	assert.Equal(t, 1.0, h.DF(42))
}

func TestSigmoid(t *testing.T) {
	h := Sigmoid[float32]{}
	assert.Equal(t, float32(0.5), f1[float32](h, 0))
	assert.Equal(t, float32(0.25), h.DF(0.5))

	h64 := Sigmoid[float64]{}
	assert.InDelta(t, 0.7310585786, f1[float64](h64, 1), 1e-9)
}

func TestReLU(t *testing.T) {
	h := ReLU[float32]{}
	assert.Equal(t, float32(0), f1[float32](h, -1))
	assert.Equal(t, float32(2), f1[float32](h, 2))
	assert.Equal(t, float32(0), h.DF(0.0))
	assert.Equal(t, float32(1), h.DF(1.0))

	var alias RectifiedLinear[float32]
	assert.Equal(t, float32(3), f1[float32](alias, 3))
}

func TestLeakyReLU(t *testing.T) {
	h := LeakyReLU[float32]{}
	assert.Equal(t, float32(-0.01), f1[float32](h, -1))
	assert.Equal(t, float32(0.01), h.DF(-0.01))
	assert.Equal(t, float32(5), f1[float32](h, 5))
	assert.Equal(t, float32(1), h.DF(5))

	h64 := LeakyReLU[float64]{}
	assert.Equal(t, -0.01, f1[float64](h64, -1))
}

func TestELU(t *testing.T) {
	h := ELU[float64]{}
	assert.Equal(t, 0.0, f1[float64](h, 0))
	assert.Equal(t, 2.0, f1[float64](h, 2))

	y := f1[float64](h, -1)
	assert.InDelta(t, math.Exp(-1)-1, y, 1e-15)
	assert.InDelta(t, math.Exp(-1), h.DF(y), 1e-15)
	assert.Equal(t, 1.0, h.DF(2))
}

func TestTanh(t *testing.T) {
	h := Tanh[float32]{}
	assert.Equal(t, float32(0), f1[float32](h, 0))
	assert.Equal(t, float32(1), h.DF(0))

	h64 := Tanh[float64]{}
	y := f1[float64](h64, 0.5)
	assert.InDelta(t, math.Tanh(0.5), y, 1e-15)
	assert.InDelta(t, 1-y*y, h64.DF(y), 1e-15)
}

func TestTanhP1M2(t *testing.T) {
	h := TanhP1M2[float64]{}
	assert.Equal(t, 0.5, f1[float64](h, 0))
	assert.Equal(t, 0.5, h.DF(0.5))

	// (tanh(x) + 1) / 2
	for _, x := range []float64{-2, -0.3, 0.8, 3} {
		assert.InDelta(t, (math.Tanh(x)+1)/2, f1[float64](h, x), 1e-12)
	}
}

func TestSoftmaxSumsToOne(t *testing.T) {
	vectors := []tensor.Vec[float64]{
		{0},
		{1, 2, 3},
		{-5, 0, 5, 10},
		{1000, 1001, 999}, // would overflow exp without the max shift
		{-1000, -1000},
	}
	h := Softmax[float64]{}
	for _, v := range vectors {
		var sum float64
		for i := range v {
			y := h.F(v, i)
			assert.Greater(t, y, 0.0, "%v[%d]", v, i)
			assert.LessOrEqual(t, y, 1.0, "%v[%d]", v, i)
			sum += y
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "%v", v)
	}
}

func TestSoftmaxTranslationInvariance(t *testing.T) {
	h := Softmax[float64]{}
	v := tensor.Vec[float64]{0.3, -1.2, 2.5, 0}
	for _, shift := range []float64{-100, -1, 7, 500} {
		shifted := make(tensor.Vec[float64], len(v))
		for i := range v {
			shifted[i] = v[i] + shift
		}
		for i := range v {
			assert.InDelta(t, h.F(v, i), h.F(shifted, i), 1e-12, "shift %v index %d", shift, i)
		}
	}
}

func TestSoftmaxJacobianRow(t *testing.T) {
	h := Softmax[float64]{}
	y := tensor.Vec[float64]{0.2, 0.3, 0.5}

	row := h.DFRow(y, 1)
	require.Len(t, row, 3)
	assert.InDeltaSlice(t, []float64{-0.06, 0.21, -0.15}, []float64(row), 1e-12)
}

func TestDiagonalRow(t *testing.T) {
	y := tensor.Vec[float64]{0.2, 0.5, 0.9}
	for _, k := range Kinds() {
		if k == KindSoftmax {
			continue
		}
		h := MustNew[float64](k)
		for i := range y {
			row := h.DFRow(y, i)
			require.Len(t, row, len(y))
			for j := range row {
				if j == i {
					assert.Equal(t, h.DF(y[i]), row[j], "%s row %d", k, i)
				} else {
					assert.Zero(t, row[j], "%s row %d col %d", k, i, j)
				}
			}
		}
	}
}

// NaN and Inf are not guarded against except by softmax's max shift.
func TestExtremeInputsPropagate(t *testing.T) {
	nan := math.NaN()
	assert.True(t, math.IsNaN(f1[float64](Sigmoid[float64]{}, nan)))
	assert.True(t, math.IsNaN(f1[float64](Tanh[float64]{}, nan)))
	assert.True(t, math.IsNaN(f1[float64](TanhP1M2[float64]{}, 1000)))
	assert.True(t, math.IsInf(f1[float64](Identity[float64]{}, math.Inf(1)), 1))
	assert.True(t, math.IsNaN(f1[float64](LeakyReLU[float64]{}, nan)))
	assert.True(t, math.IsNaN(f1[float64](ELU[float64]{}, nan)))
}

// ReLU takes the inactive branch for NaN: NaN > 0 is false.
func TestReLUNaN(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 0.0, f1[float64](ReLU[float64]{}, nan))
	assert.Equal(t, float32(0), f1[float32](ReLU[float32]{}, float32(nan)))
	assert.Equal(t, tensor.Batch[float64]{{0, 2}}, Apply(tensor.Batch[float64]{{nan, 2}}, ReLU[float64]{}, nil))
}
