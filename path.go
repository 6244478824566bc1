// Package elnet: the path driver.
//
// Owns the lambda sequence (explicit, or geometric derived from the
// initial gradient), drives warm starts through the shared point engine,
// and applies the path-level stopping rules: deviance saturation,
// active-set and final-model caps, and fatal numeric failure.

package elnet

import "math"

// Fit runs the whole path fit described by cfg and returns one record per
// solved lambda.
//
// The call is synchronous and single-threaded; cfg and its slices are not
// mutated. Early termination by truncation or deviance saturation is a
// normal outcome (Status on the result), not an error. The only in-fit
// error is ErrNumeric, returned together with the records solved before
// the failure.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadAlpha, ErrBadLambda,
// ErrBadPenalty, ErrBadBounds, ErrBadWeights, ErrBadConfig, ErrNumeric.
func Fit(cfg Config) (PathResult, error) {
	if err := cfg.validate(); err != nil {
		return PathResult{}, err
	}
	_, p := cfg.Matrix.Dims()
	cfg.normalize(p)

	eng := newPointEngine(&cfg)
	var res PathResult

	// Unpenalized features enter the model before the first lambda.
	if st := eng.forceIn(); st != StatusOK {
		res.Status = st

		return res, nil
	}

	implicit := cfg.Lambdas == nil
	nlam := cfg.NLambda
	var lamMax, alf float64
	if implicit {
		// Largest lambda at which every penalized coefficient is zero:
		// max |g_j| / vp_j over penalized eligible features, scaled by
		// the (floored) mixing parameter.
		for j := 0; j < p; j++ {
			if cfg.JU[j] && cfg.VP[j] > 0 {
				if v := math.Abs(cfg.G[j]) / cfg.VP[j]; v > lamMax {
					lamMax = v
				}
			}
		}
		lamMax /= math.Max(cfg.Alpha, minAlphaScale)
		if nlam > 1 {
			alf = math.Pow(cfg.LambdaMinRatio, 1/float64(nlam-1))
		}
	} else {
		nlam = len(cfg.Lambdas)
	}

	var lam, rsqPrev float64
	for m := 0; m < nlam; m++ {
		switch {
		case !implicit:
			lam = cfg.Lambdas[m]
		case m == 0:
			lam = lamMax
		default:
			lam *= alf
		}

		st := eng.solve(lam)
		if st == StatusTruncated || st == StatusNumeric {
			// Truncation keeps only fully solved lambdas; numeric
			// failure additionally surfaces as an error.
			res.Status = st
			res.Passes = eng.totalPasses
			if st == StatusNumeric {
				return res, ErrNumeric
			}

			return res, nil
		}

		res.Fits = append(res.Fits, eng.record(lam, st))
		res.NSolved++
		if cfg.Progress != nil {
			cfg.Progress(m, lam)
		}

		if st == StatusNoConvergence && !cfg.ContinueOnStall {
			res.Status = StatusNoConvergence
			res.Passes = eng.totalPasses

			return res, nil
		}
		if res.Fits[len(res.Fits)-1].NonZero > cfg.MaxFinal {
			res.Status = StatusTruncated
			res.Passes = eng.totalPasses

			return res, nil
		}

		// Deviance saturation applies to implicit sequences only: an
		// explicit sequence is solved in full at the caller's request.
		if implicit && res.NSolved >= cfg.MinLambdas {
			if eng.rsq-rsqPrev < cfg.SmallDevianceRatio*eng.rsq ||
				eng.rsq > cfg.MaxDevianceFraction {
				break
			}
		}
		rsqPrev = eng.rsq
	}

	res.Status = StatusOK
	res.Passes = eng.totalPasses

	return res, nil
}
