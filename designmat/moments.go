// Package designmat: weighted standardization moments and response helpers.
//
// These run once per fit, before the solver starts; none of them appear on
// the per-coordinate hot path. Variances here are weighted population
// variances (divide by Σw, not Σw−1), matching the standardized coordinate
// system the solver's deviance accounting assumes.

package designmat

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// epsVar is the variance floor below which a column is treated as constant:
// its scale is pinned to 1 so downstream divisions stay finite. Constant
// columns should be excluded from fitting via the inclusion flags.
const epsVar = 1e-12

// Moments holds per-column weighted standardization statistics.
//
//   - Xm — weighted column mean (the centering shift).
//   - Xs — column scale; sqrt of the weighted variance when standardizing,
//     1.0 otherwise.
//   - Xv — weighted variance of the scaled column: exactly 1 for
//     standardized columns, the raw variance otherwise.
type Moments struct {
	Xm []float64
	Xs []float64
	Xv []float64
}

// ComputeMoments computes per-column weighted moments of mx.
// Weights must be normalized (sum to 1); see NormalizeWeights.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ComputeMoments(mx Matrix, w []float64, standardize bool) (Moments, error) {
	if mx == nil {
		return Moments{}, ErrNilMatrix
	}
	rows, cols := mx.Dims()
	if len(w) != rows {
		return Moments{}, ErrDimensionMismatch
	}

	m := Moments{
		Xm: make([]float64, cols),
		Xs: make([]float64, cols),
		Xv: make([]float64, cols),
	}
	for j := 0; j < cols; j++ {
		sum, sumSq := mx.ColSums(j, w)
		m.Xm[j] = sum
		v := sumSq - sum*sum
		if v < epsVar {
			// Constant column: scale 1, variance 0.
			m.Xs[j] = 1
			m.Xv[j] = 0
			continue
		}
		if standardize {
			m.Xs[j] = math.Sqrt(v)
			m.Xv[j] = 1
		} else {
			m.Xs[j] = 1
			m.Xv[j] = v
		}
	}

	return m, nil
}

// Gradient computes the initial weighted covariance between each
// standardized column and the (internally centered) response:
//
//	g[j] = (Σ_i w[i]·x[i,j]·y[i] − Xm[j]·ȳ_w) / Xs[j]
//
// This is the g vector the solver starts from: the gradient of the
// least-squares loss at the all-zero coefficient vector. Weights must be
// normalized.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Gradient(mx Matrix, w, y []float64, m Moments) ([]float64, error) {
	if mx == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := mx.Dims()
	if len(w) != rows || len(y) != rows {
		return nil, ErrDimensionMismatch
	}
	if len(m.Xm) != cols || len(m.Xs) != cols {
		return nil, ErrDimensionMismatch
	}

	ybar := stat.Mean(y, w)
	g := make([]float64, cols)
	for j := 0; j < cols; j++ {
		g[j] = (mx.ResponseDot(j, w, y) - m.Xm[j]*ybar) / m.Xs[j]
	}

	return g, nil
}

// StandardizeResponse returns a centered, unit-weighted-variance copy of y
// together with the removed mean and scale. The solver's deviance ratio is
// relative to a response standardized this way. Weights must be normalized.
//
// Errors: ErrDimensionMismatch, ErrNaNInf (zero-variance response).
func StandardizeResponse(y, w []float64) (ys []float64, mean, scale float64, err error) {
	if len(y) != len(w) {
		return nil, 0, 0, ErrDimensionMismatch
	}
	mean = stat.Mean(y, w)
	var v float64
	for i, yi := range y {
		d := yi - mean
		v += w[i] * d * d
	}
	if v < epsVar {
		return nil, 0, 0, ErrNaNInf
	}
	scale = math.Sqrt(v)

	ys = make([]float64, len(y))
	copy(ys, y)
	floats.AddConst(-mean, ys)
	floats.Scale(1/scale, ys)

	return ys, mean, scale, nil
}

// NormalizeWeights scales w in place so it sums to 1.
//
// Errors: ErrBadWeights when any weight is negative or the sum is not
// positive, ErrNaNInf on non-finite weights.
func NormalizeWeights(w []float64) error {
	for _, wi := range w {
		if math.IsNaN(wi) || math.IsInf(wi, 0) {
			return ErrNaNInf
		}
		if wi < 0 {
			return ErrBadWeights
		}
	}
	s := floats.Sum(w)
	if s <= 0 {
		return ErrBadWeights
	}
	floats.Scale(1/s, w)

	return nil
}
