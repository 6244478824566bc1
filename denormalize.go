package elnet

import "github.com/tomasb21/elnet/designmat"

// Denormalize converts a record's standardized-space coefficients back to
// the original data scale, recovering the intercept in the process.
//
// yMean and yScale are the values removed by
// designmat.StandardizeResponse. The returned model predicts
//
//	ŷ_i = intercept + Σ_j coef[j]·x[i,j]
//
// on the raw (uncentered, unscaled) design matrix.
func Denormalize(rec FitRecord, m designmat.Moments, yMean, yScale float64) (coef map[int]float64, intercept float64) {
	coef = make(map[int]float64, len(rec.Coef))
	intercept = yMean
	for j, a := range rec.Coef {
		b := yScale * a / m.Xs[j]
		coef[j] = b
		intercept -= b * m.Xm[j]
	}

	return coef, intercept
}
