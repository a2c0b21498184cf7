package activation

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/activ/internal/parallel"
	"github.com/born-ml/activ/internal/tensor"
)

func randomBatch(rnd *rand.Rand, samples, width int) tensor.Batch[float64] {
	b := tensor.NewBatch[float64](samples, width)
	for s := range b {
		for i := range b[s] {
			b[s][i] = rnd.NormFloat64() * 2
		}
	}
	return b
}

func strategies() map[string]parallel.ForFunc {
	return map[string]parallel.ForFunc{
		"nil":        nil,
		"sequential": parallel.Sequential,
		"chunked":    parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}.ForFunc(),
		"limited":    parallel.Limited(3),
		"reversed": func(n int, body func(i int)) {
			for i := n - 1; i >= 0; i-- {
				body(i)
			}
		},
	}
}

func TestForwardEmptyBatch(t *testing.T) {
	y := tensor.Batch[float64]{{7, 8}}
	Forward(y, tensor.Batch[float64]{}, Sigmoid[float64]{}, nil)
	assert.Equal(t, tensor.Batch[float64]{{7, 8}}, y)
}

func TestForward(t *testing.T) {
	a := tensor.Batch[float64]{{-1, 0, 2}, {3, -4, 0.5}}
	y := tensor.NewBatch[float64](2, 3)
	Forward(y, a, ReLU[float64]{}, nil)
	assert.Equal(t, tensor.Batch[float64]{{0, 0, 2}, {3, 0, 0.5}}, y)
}

func TestForwardSoftmaxRows(t *testing.T) {
	a := tensor.Batch[float64]{{1, 2, 3}, {0, 0, 0}}
	y := Apply(a, Softmax[float64]{}, nil)

	want := tensor.Batch[float64]{
		{0.09003057317038046, 0.24472847105479764, 0.6652409557748219},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
	}
	if diff := cmp.Diff(want, y, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("softmax rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBackwardOneHot(t *testing.T) {
	prev := tensor.Batch[float64]{{1.0, 2.0}}
	out := tensor.Batch[float64]{{0.5, 0.5}}
	curr := tensor.NewBatch[float64](1, 2)

	Backward(prev, out, curr, Sigmoid[float64]{}, nil)
	assert.Equal(t, tensor.Batch[float64]{{0.25, 0.5}}, curr)
}

func TestBackwardDense(t *testing.T) {
	h := Softmax[float64]{}
	prev := tensor.Batch[float64]{{1, -2, 0.5}}
	out := tensor.Batch[float64]{{0.2, 0.3, 0.5}}

	curr := Gradient(prev, out, h, nil)

	// Full contraction: curr[c] = Σ_k prev[k] * J[c][k].
	want := make([]float64, 3)
	for c := range want {
		row := h.DFRow(out[0], c)
		for k := range row {
			want[c] += prev[0][k] * row[k]
		}
	}
	assert.InDeltaSlice(t, want, []float64(curr[0]), 1e-12)

	// Softmax deltas sum to zero: the output is constrained to the simplex.
	assert.InDelta(t, 0, curr[0][0]+curr[0][1]+curr[0][2], 1e-12)
}

func TestBackwardDenseDiffersFromDiagonal(t *testing.T) {
	prev := tensor.Batch[float64]{{1, 0, 0}}
	out := tensor.Batch[float64]{{0.2, 0.3, 0.5}}

	dense := Gradient(prev, out, Softmax[float64]{}, nil)
	diag := Gradient(prev, out, Sigmoid[float64]{}, nil)

	assert.InDelta(t, 0.16, dense[0][0], 1e-12)
	assert.InDelta(t, -0.06, dense[0][1], 1e-12)
	assert.InDelta(t, -0.1, dense[0][2], 1e-12)
	assert.InDelta(t, 0.16, diag[0][0], 1e-12)
	assert.Zero(t, diag[0][1])
	assert.Zero(t, diag[0][2])
}

func TestExecutionOrderEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	a := randomBatch(rnd, 97, 10)
	up := randomBatch(rnd, 97, 10)

	for _, k := range Kinds() {
		h := MustNew[float64](k)
		wantY := Apply(a, h, parallel.Sequential)
		wantD := Gradient(up, wantY, h, parallel.Sequential)

		for name, forI := range strategies() {
			t.Run(k.String()+"/"+name, func(t *testing.T) {
				y := Apply(a, h, forI)
				d := Gradient(up, y, h, forI)
				if diff := cmp.Diff(wantY, y); diff != "" {
					t.Errorf("forward mismatch (-want +got):\n%s", diff)
				}
				if diff := cmp.Diff(wantD, d); diff != "" {
					t.Errorf("backward mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestForwardKindMatchesGeneric(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	a := randomBatch(rnd, 5, 4)
	up := randomBatch(rnd, 5, 4)

	for _, k := range Kinds() {
		h := MustNew[float64](k)

		y := tensor.ZerosLike(a)
		require.NoError(t, ForwardKind(k, y, a, nil))
		assert.Equal(t, Apply(a, h, nil), y, k.String())

		d := tensor.ZerosLike(a)
		require.NoError(t, BackwardKind(k, up, y, d, nil))
		assert.Equal(t, Gradient(up, y, h, nil), d, k.String())
	}
}

func TestKindDispatchUnknown(t *testing.T) {
	b := tensor.NewBatch[float64](1, 1)
	err := ForwardKind(Kind(99), b, b, nil)
	assert.True(t, errors.Is(err, ErrUnknownActivation))
	err = BackwardKind(Kind(-1), b, b, b, nil)
	assert.True(t, errors.Is(err, ErrUnknownActivation))
}

func TestForwardFloat32(t *testing.T) {
	a := tensor.Batch[float32]{{0, 0}}
	y := Apply(a, Sigmoid[float32]{}, parallel.Limited(2))
	assert.Equal(t, tensor.Batch[float32]{{0.5, 0.5}}, y)
}

func BenchmarkForward(b *testing.B) {
	rnd := rand.New(rand.NewSource(0))
	a := randomBatch(rnd, 256, 128)
	y := tensor.ZerosLike(a)

	b.Run("sigmoid/sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Forward(y, a, Sigmoid[float64]{}, parallel.Sequential)
		}
	})
	b.Run("sigmoid/parallel", func(b *testing.B) {
		forI := parallel.DefaultConfig().ForFunc()
		for i := 0; i < b.N; i++ {
			Forward(y, a, Sigmoid[float64]{}, forI)
		}
	})
}

func BenchmarkBackward(b *testing.B) {
	rnd := rand.New(rand.NewSource(0))
	a := randomBatch(rnd, 256, 64)
	up := randomBatch(rnd, 256, 64)
	forI := parallel.DefaultConfig().ForFunc()

	b.Run("sigmoid", func(b *testing.B) {
		y := Apply(a, Sigmoid[float64]{}, forI)
		d := tensor.ZerosLike(a)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Backward(up, y, d, Sigmoid[float64]{}, forI)
		}
	})
	b.Run("softmax", func(b *testing.B) {
		y := Apply(a, Softmax[float64]{}, forI)
		d := tensor.ZerosLike(a)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Backward(up, y, d, Softmax[float64]{}, forI)
		}
	})
}
