// Package elnet: the point engine — the single-lambda solver.
//
// Cyclic coordinate descent over the active set, followed by a KKT scan
// of inactive eligible features; violators join the active set and descent
// resumes. The engine persists across the whole path so each lambda warm
// starts from the previous solution, and the active set only ever grows.

package elnet

import "math"

type pointEngine struct {
	cfg   *Config
	cache *gradCache

	// a holds coefficients in standardized space; implicitly zero
	// outside the active set.
	a []float64
	// ia is the active set in activation order; active[j] mirrors
	// membership for O(1) lookups.
	ia     []int
	active []bool

	// rsq accumulates the fraction of deviance explained across the
	// path (exact when the response was standardized to unit weighted
	// variance).
	rsq float64

	passes      int // sweeps spent on the current lambda
	totalPasses int // sweeps spent on the whole path
}

func newPointEngine(cfg *Config) *pointEngine {
	_, p := cfg.Matrix.Dims()

	return &pointEngine{
		cfg:    cfg,
		cache:  newGradCache(cfg),
		a:      make([]float64, p),
		active: make([]bool, p),
	}
}

// forceIn activates every eligible feature with a zero penalty factor.
// These are unpenalized at any lambda and belong in the model from the
// start of the path.
func (e *pointEngine) forceIn() Status {
	for j := 0; j < e.cache.p; j++ {
		if e.cfg.JU[j] && e.cfg.VP[j] == 0 {
			if st := e.activate(j); st != StatusOK {
				return st
			}
		}
	}

	return StatusOK
}

func (e *pointEngine) activate(j int) Status {
	if len(e.ia) >= e.cfg.MaxActive {
		return StatusTruncated
	}
	e.cache.ensure(j)
	e.ia = append(e.ia, j)
	e.active[j] = true

	return StatusOK
}

// solve fits the current lambda to convergence, mutating coefficients in
// place. Returns StatusOK, StatusNoConvergence (pass budget exhausted,
// best iterate kept), StatusTruncated (active-set cap hit) or
// StatusNumeric.
func (e *pointEngine) solve(lam float64) Status {
	l1 := lam * e.cfg.Alpha
	l2 := lam * (1 - e.cfg.Alpha)
	e.passes = 0

	first := true
	for {
		// KKT scan: admit inactive eligible features whose gradient
		// violates the stationarity threshold at this lambda.
		added, st := e.admit(l1)
		if st != StatusOK {
			return st
		}
		if !first && added == 0 {
			return StatusOK
		}
		first = false

		if st = e.converge(l1, l2); st != StatusOK {
			return st
		}
	}
}

// admit scans inactive eligible features and activates every violator
// (|g_j| > l1·vp_j; equality stays inactive). Returns how many joined.
func (e *pointEngine) admit(l1 float64) (int, Status) {
	added := 0
	for j := 0; j < e.cache.p; j++ {
		if !e.cfg.JU[j] || e.active[j] {
			continue
		}
		if math.Abs(e.cache.g[j]) > l1*e.cfg.VP[j] {
			if st := e.activate(j); st != StatusOK {
				return added, st
			}
			added++
		}
	}

	return added, StatusOK
}

// converge sweeps the active set cyclically until the largest
// variance-weighted squared coefficient change drops below Tol or the
// pass budget runs out.
func (e *pointEngine) converge(l1, l2 float64) Status {
	for {
		e.passes++
		e.totalPasses++
		if e.passes > e.cfg.MaxPasses {
			return StatusNoConvergence
		}

		var dlx float64
		for _, k := range e.ia {
			gk := e.cache.g[k]
			ak := e.a[k]
			anew := coordUpdate(gk+ak*e.cfg.Xv[k], e.cfg.Xv[k], e.cfg.VP[k],
				l1, l2, e.cfg.CL[k][0], e.cfg.CL[k][1])
			if anew == ak {
				continue
			}
			if math.IsNaN(anew) || math.Abs(anew) >= e.cfg.BigValue {
				return StatusNumeric
			}

			del := anew - ak
			e.a[k] = anew
			e.rsq += del * (2*gk - del*e.cfg.Xv[k])
			e.cache.apply(k, del)
			if d := e.cfg.Xv[k] * del * del; d > dlx {
				dlx = d
			}
		}
		if dlx < e.cfg.Tol {
			return StatusOK
		}
	}
}

// record snapshots the current solution as the output for lambda lam.
func (e *pointEngine) record(lam float64, st Status) FitRecord {
	coef := make(map[int]float64, len(e.ia))
	nz := 0
	for _, j := range e.ia {
		if e.a[j] != 0 {
			coef[j] = e.a[j]
			nz++
		}
	}
	active := make([]int, len(e.ia))
	copy(active, e.ia)

	return FitRecord{
		Lambda:   lam,
		Coef:     coef,
		Active:   active,
		NonZero:  nz,
		DevRatio: e.rsq,
		Status:   st,
	}
}
