// Package regress fits the straight lines drawn over the scatter plots and reduces
// two resource measurements to one score. It is a thin layer over gonum's stat package
package regress

import (
	"math"

	perr "gasanalysis/internal/platform/errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit is an ordinary least squares line y = Intercept + Slope*x
type Fit struct {
	N         int
	Slope     float64
	Intercept float64
	R2        float64
}

// At evaluates the line at x
func (f Fit) At(x float64) float64 { return f.Intercept + f.Slope*x }

// Linear fits y on x. ok is false when fewer than two points are given or x is
// constant, in which case no line can be drawn
func Linear(xs, ys []float64) (Fit, bool) {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return Fit{N: n}, false
	}
	if stat.Variance(xs, nil) == 0 {
		return Fit{N: n}, false
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	if math.IsNaN(r2) {
		// constant y: the line is exact
		r2 = 1
	}
	return Fit{N: n, Slope: beta, Intercept: alpha, R2: r2}, true
}

// Normalize returns z-scores using the sample standard deviation.
// A constant input maps to all zeros
func Normalize(xs []float64) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}
	mean, std := stat.MeanStdDev(xs, nil)
	for i, x := range xs {
		out[i] = x - mean
		if std > 0 && !math.IsNaN(std) {
			out[i] /= std
		}
	}
	return out
}

// FirstComponent normalizes xs and ys, then projects each point onto their first
// principal component. The sign is chosen so the loadings sum to a non-negative
// number, so larger inputs give larger scores
func FirstComponent(xs, ys []float64) ([]float64, error) {
	n := len(xs)
	if n != len(ys) {
		return nil, perr.Internalf("first component: %d x values for %d y values", n, len(ys))
	}
	if n < 2 {
		return nil, perr.Internalf("first component: need at least 2 points, got %d", n)
	}
	nx, ny := Normalize(xs), Normalize(ys)
	data := make([]float64, 0, 2*n)
	for i := range nx {
		data = append(data, nx[i], ny[i])
	}
	a := mat.NewDense(n, 2, data)

	var pc stat.PC
	if ok := pc.PrincipalComponents(a, nil); !ok {
		return nil, perr.Internalf("first component: decomposition failed")
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	load := []float64{vecs.At(0, 0), vecs.At(1, 0)}
	if floats.Sum(load) < 0 {
		floats.Scale(-1, load)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = nx[i]*load[0] + ny[i]*load[1]
	}
	return out, nil
}
