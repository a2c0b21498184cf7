package activation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/activ/internal/parallel"
	"github.com/born-ml/activ/internal/tensor"
)

// awayFromKink keeps inputs clear of x = 0, where ReLU-style derivatives are undefined.
func awayFromKink(rnd *rand.Rand, samples, width int) tensor.Batch[float64] {
	b := randomBatch(rnd, samples, width)
	for s := range b {
		for i, x := range b[s] {
			if math.Abs(x) < 0.1 {
				b[s][i] = math.Copysign(0.1+math.Abs(x), x)
			}
		}
	}
	return b
}

func TestGradCheckAllKinds(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	a := awayFromKink(rnd, 8, 5)
	up := randomBatch(rnd, 8, 5)

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			report := GradCheck(MustNew[float64](k), a, up, 1e-6, parallel.Limited(4))
			assert.Less(t, report.MaxAbsErr, 1e-6, report.String())
		})
	}
}

func TestGradCheckFloat32(t *testing.T) {
	a := tensor.Batch[float32]{{-0.5, 0.25, 1.5}}
	up := tensor.Batch[float32]{{1, -1, 0.5}}
	report := GradCheck(Softmax[float32]{}, a, up, 1e-2, nil)
	assert.Less(t, report.MaxAbsErr, 1e-3, report.String())
}

func TestGradCheckFloat32UsesActualStep(t *testing.T) {
	// 0.5 + 1e-4 is not representable in float32, so the step taken differs from 2e-4.
	a := tensor.Batch[float32]{{0.5, -1, 2}}
	up := tensor.Batch[float32]{{1, 1, 1}}
	report := GradCheck(Identity[float32]{}, a, up, 1e-4, nil)
	assert.InDelta(t, 0, report.MaxAbsErr, 1e-12, report.String())
	assert.InDelta(t, 1, report.Numeric, 1e-12)
}

// brokenSigmoid reports the input-based derivative formula applied to the output.
type brokenSigmoid struct{ Sigmoid[float64] }

func (brokenSigmoid) DF(y float64) float64 { return 1 - y }

func (h brokenSigmoid) DFRow(y tensor.Vec[float64], i int) tensor.Vec[float64] {
	return DiagonalRow[float64](h, y, i)
}

func TestGradCheckDetectsWrongDerivative(t *testing.T) {
	a := tensor.Batch[float64]{{0.5, -1}}
	up := tensor.Batch[float64]{{1, 1}}
	report := GradCheck(brokenSigmoid{}, a, up, 0, nil)
	assert.Greater(t, report.MaxAbsErr, 0.1)
	assert.Equal(t, 0, report.Sample)
	assert.Contains(t, report.String(), "analytic")
}
