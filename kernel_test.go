package elnet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCoordUpdate_ZeroRegion checks the soft-threshold dead zone,
// including the boundary at exact equality: |u| == l1·vp must stay zero.
func TestCoordUpdate_ZeroRegion(t *testing.T) {
	lo, hi := math.Inf(-1), math.Inf(1)

	assert.Equal(t, 0.0, coordUpdate(0.3, 1, 1, 0.5, 0, lo, hi),
		"|u| below the L1 threshold stays zero")
	assert.Equal(t, 0.0, coordUpdate(-0.3, 1, 1, 0.5, 0, lo, hi),
		"negative side of the dead zone stays zero")
	assert.Equal(t, 0.0, coordUpdate(0.5, 1, 1, 0.5, 0, lo, hi),
		"equality sits inside the zero region")
	assert.Equal(t, 0.0, coordUpdate(-0.5, 1, 1, 0.5, 0, lo, hi),
		"equality on the negative side stays zero")
	assert.NotEqual(t, 0.0, coordUpdate(0.5000001, 1, 1, 0.5, 0, lo, hi),
		"just past the threshold the coefficient moves")
}

// TestCoordUpdate_ClosedForm pins the update against a hand computation:
// (|u|−l1·vp)·sign(u) / (xv + l2·vp).
func TestCoordUpdate_ClosedForm(t *testing.T) {
	lo, hi := math.Inf(-1), math.Inf(1)

	got := coordUpdate(2.0, 1.0, 1.0, 0.5, 0.25, lo, hi)
	assert.InDelta(t, (2.0-0.5)/(1.0+0.25), got, 1e-15, "positive branch")

	got = coordUpdate(-2.0, 1.0, 1.0, 0.5, 0.25, lo, hi)
	assert.InDelta(t, -(2.0-0.5)/(1.0+0.25), got, 1e-15, "negative branch")

	// Penalty factor scales both threshold and ridge term.
	got = coordUpdate(2.0, 1.0, 2.0, 0.5, 0.25, lo, hi)
	assert.InDelta(t, (2.0-1.0)/(1.0+0.5), got, 1e-15, "vp=2 doubles both penalties")
}

// TestCoordUpdate_BoxConstraints checks clamping on both sides.
func TestCoordUpdate_BoxConstraints(t *testing.T) {
	got := coordUpdate(5.0, 1.0, 1.0, 0.5, 0, -0.25, 0.25)
	assert.Equal(t, 0.25, got, "upper bound clamps the update")

	got = coordUpdate(-5.0, 1.0, 1.0, 0.5, 0, -0.25, 0.25)
	assert.Equal(t, -0.25, got, "lower bound clamps the update")

	got = coordUpdate(5.0, 1.0, 1.0, 0.5, 0, math.Inf(-1), 0.0)
	assert.Equal(t, 0.0, got, "a zero upper bound pins the coefficient at zero")
}

// TestCoordUpdate_Idempotent reconstructs the gradient a converged
// coefficient implies (g = b·l2·vp + l1·vp for b > 0) and re-applies the
// kernel: the same coefficient must come back, so the delta is zero.
func TestCoordUpdate_Idempotent(t *testing.T) {
	const (
		b  = 0.7
		xv = 1.3
		vp = 1.0
		l1 = 0.2
		l2 = 0.1
	)
	g := b*l2*vp + l1*vp
	u := g + b*xv

	got := coordUpdate(u, xv, vp, l1, l2, math.Inf(-1), math.Inf(1))
	assert.InDelta(t, b, got, 1e-15, "converged coefficient is a fixed point")
}
