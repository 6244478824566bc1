// Package elnet: the coordinate-update kernel.
//
// One closed-form soft-threshold step for a single feature, pure in its
// inputs. Everything stateful (gradient maintenance, active-set growth)
// lives above this in point.go and gradient.go.

package elnet

import "math"

// coordUpdate returns the new coefficient for one feature.
//
//	u  — g[j] + old·xv[j]: the gradient with the current coefficient's
//	     own contribution folded back in, so the update is expressed at
//	     the virtual point "coefficient j set to zero".
//	xv — weighted variance of the standardized column.
//	vp — penalty factor; l1 = lambda·alpha, l2 = lambda·(1−alpha).
//	lo, hi — box constraints with lo ≤ 0 ≤ hi.
//
// The update is clamp(S(u, l1·vp) / (xv + l2·vp), lo, hi), where S is the
// soft-threshold operator. At |u| ≤ l1·vp the result is exactly zero
// (equality sits inside the zero region), which makes the kernel
// idempotent on converged inputs.
func coordUpdate(u, xv, vp, l1, l2, lo, hi float64) float64 {
	v := math.Abs(u) - l1*vp
	if v <= 0 {
		return 0
	}
	b := math.Copysign(v, u) / (xv + l2*vp)
	if b < lo {
		return lo
	}
	if b > hi {
		return hi
	}

	return b
}
