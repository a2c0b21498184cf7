package activation

import (
	"fmt"

	"github.com/born-ml/activ/internal/parallel"
	"github.com/born-ml/activ/internal/tensor"
)

// DefaultEpsilon is the finite-difference step used when GradCheck is given eps <= 0.
const DefaultEpsilon = 1e-4

// GradReport is the worst disagreement found by GradCheck.
type GradReport struct {
	MaxAbsErr float64
	Sample    int
	Index     int
	Analytic  float64
	Numeric   float64
}

func (r GradReport) String() string {
	return fmt.Sprintf("max |analytic-numeric| = %.3g at [%d][%d] (analytic %.6g, numeric %.6g)",
		r.MaxAbsErr, r.Sample, r.Index, r.Analytic, r.Numeric)
}

// GradCheck compares Backward against central finite differences of the forward pass.
//
// For every sample s the scalar loss L(x) = Σ_i upstream[s][i] * h.F(x, i) is
// differentiated numerically with respect to each a[s][j] and compared with the
// delta produced by Backward(upstream, Forward(a), ...). Samples are checked
// through forI, so the check itself is parallel when forI is.
func GradCheck[T tensor.Float, F Function[T]](h F, a, upstream tensor.Batch[T], eps float64, forI parallel.ForFunc) GradReport {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	if forI == nil {
		forI = parallel.Sequential
	}

	out := Apply(a, h, forI)
	analytic := tensor.FromRows[float64](Gradient(upstream, out, h, forI).Rows())

	numeric := tensor.ZerosLike(analytic)
	forI(len(a), func(s int) {
		x := a[s].Clone()
		for j := range x {
			orig := x[j]
			x[j] = orig + T(eps)
			plus := weightedSum(h, x, upstream[s])
			hi := float64(x[j])
			x[j] = orig - T(eps)
			minus := weightedSum(h, x, upstream[s])
			lo := float64(x[j])
			x[j] = orig

			// The step actually taken in T, not the nominal 2*eps.
			numeric[s][j] = (plus - minus) / (hi - lo)
		}
	})

	var report GradReport
	report.MaxAbsErr, report.Sample, report.Index = tensor.MaxAbsDiff(analytic, numeric)
	if report.Sample < len(numeric) && report.Index < len(numeric[report.Sample]) {
		report.Analytic = analytic[report.Sample][report.Index]
		report.Numeric = numeric[report.Sample][report.Index]
	}
	return report
}

func weightedSum[T tensor.Float, F Function[T]](h F, x, w tensor.Vec[T]) float64 {
	var sum float64
	for i := range x {
		sum += float64(w[i]) * float64(h.F(x, i))
	}
	return sum
}
