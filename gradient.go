// Package elnet: the gradient (covariance) cache.
//
// g[j] is the weighted covariance between standardized column j and the
// implicit residual. It is never recomputed from the residual: every
// accepted coordinate step propagates its exact effect through cached
// cross-product columns, so an update costs O(p) regardless of n. The
// residual itself is never materialized.

package elnet

import "github.com/tomasb21/elnet/designmat"

// gradCache owns the mutable gradient vector and the standardized
// cross-product columns of every activated feature. It is scoped to one
// path fit and mutates nothing outside itself.
type gradCache struct {
	mx     designmat.Matrix
	w      []float64
	xm, xs []float64
	ju     []bool
	p      int

	// g is the live gradient; invariant: equal to the true standardized
	// feature–residual covariance after every apply.
	g []float64

	// slot[j] is 1+index into cols once feature j is cached, 0 before.
	// Columns are cached once, on first activation, and reused for the
	// rest of the path.
	slot []int
	cols [][]float64
}

func newGradCache(cfg *Config) *gradCache {
	_, p := cfg.Matrix.Dims()
	g := make([]float64, p)
	copy(g, cfg.G)

	return &gradCache{
		mx:   cfg.Matrix,
		w:    cfg.W,
		xm:   cfg.Xm,
		xs:   cfg.Xs,
		ju:   cfg.JU,
		p:    p,
		g:    g,
		slot: make([]int, p),
	}
}

// ensure caches the standardized cross-product column of feature k:
//
//	c[j] = (Σ_i w_i·x_ij·x_ik − xm_j·xm_k) / (xs_j·xs_k)
//
// The raw dot product comes from the matrix view — dense rows, or only
// the shared nonzero rows for sparse storage — and the mean/scale
// corrections are applied algebraically, so a centered matrix is never
// formed. Cost: one ColDot per eligible feature, paid once per
// activation.
func (c *gradCache) ensure(k int) {
	if c.slot[k] != 0 {
		return
	}
	col := make([]float64, c.p)
	xmk, xsk := c.xm[k], c.xs[k]
	for j := 0; j < c.p; j++ {
		if !c.ju[j] {
			continue
		}
		col[j] = (c.mx.ColDot(j, k, c.w) - c.xm[j]*xmk) / (c.xs[j] * xsk)
	}
	c.cols = append(c.cols, col)
	c.slot[k] = len(c.cols)
}

// apply propagates a coefficient change del on feature k to the whole
// gradient: g[j] -= c_jk·del for every eligible j. O(p).
func (c *gradCache) apply(k int, del float64) {
	col := c.cols[c.slot[k]-1]
	for j := 0; j < c.p; j++ {
		if c.ju[j] {
			c.g[j] -= col[j] * del
		}
	}
}
