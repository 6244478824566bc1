package designmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tomasb21/elnet/designmat"
)

// TestComputeMoments_HandChecked verifies the weighted moments of a single
// column against a hand computation. Column [1 2 3 4] with uniform weights:
// mean 2.5, population variance 1.25.
func TestComputeMoments_HandChecked(t *testing.T) {
	view, err := designmat.NewDense(mat.NewDense(4, 1, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	w := uniformWeights(4)

	m, err := designmat.ComputeMoments(view, w, true)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, m.Xm[0], 1e-14, "weighted mean")
	assert.InDelta(t, math.Sqrt(1.25), m.Xs[0], 1e-14, "scale = sqrt(population variance)")
	assert.Equal(t, 1.0, m.Xv[0], "standardized column has unit variance")

	raw, err := designmat.ComputeMoments(view, w, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, raw.Xs[0], "no standardization keeps unit scale")
	assert.InDelta(t, 1.25, raw.Xv[0], 1e-14, "raw variance preserved")
}

// TestComputeMoments_ConstantColumn pins the scale of a constant column to
// one so downstream divisions stay finite.
func TestComputeMoments_ConstantColumn(t *testing.T) {
	view, err := designmat.NewDense(mat.NewDense(3, 1, []float64{2, 2, 2}))
	require.NoError(t, err)

	m, err := designmat.ComputeMoments(view, uniformWeights(3), true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Xs[0], "constant column scale pinned to 1")
	assert.Equal(t, 0.0, m.Xv[0], "constant column has zero variance")
}

// TestNormalizeWeights covers normalization and the rejection branches.
func TestNormalizeWeights(t *testing.T) {
	w := []float64{1, 3, 4}
	require.NoError(t, designmat.NormalizeWeights(w))
	assert.InDelta(t, 0.125, w[0], 1e-15)
	assert.InDelta(t, 0.5, w[2], 1e-15)

	assert.ErrorIs(t, designmat.NormalizeWeights([]float64{1, -1}), designmat.ErrBadWeights,
		"negative weight must be rejected")
	assert.ErrorIs(t, designmat.NormalizeWeights([]float64{0, 0}), designmat.ErrBadWeights,
		"zero total weight must be rejected")
	assert.ErrorIs(t, designmat.NormalizeWeights([]float64{1, math.NaN()}), designmat.ErrNaNInf,
		"NaN weight must be rejected")
}

// TestStandardizeResponse checks that the returned copy is centered with
// unit weighted variance and that the original slice is untouched.
func TestStandardizeResponse(t *testing.T) {
	y := []float64{2, 4, 6, 8}
	w := uniformWeights(4)

	ys, mean, scale, err := designmat.StandardizeResponse(y, w)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mean, 1e-14)
	assert.InDelta(t, math.Sqrt(5.0), scale, 1e-14, "population sd of [2 4 6 8]")
	assert.Equal(t, []float64{2, 4, 6, 8}, y, "input must not be mutated")

	var m, v float64
	for i, yi := range ys {
		m += w[i] * yi
	}
	for i, yi := range ys {
		v += w[i] * yi * yi
	}
	assert.InDelta(t, 0, m, 1e-14, "standardized response is centered")
	assert.InDelta(t, 1, v, 1e-14, "standardized response has unit weighted variance")

	_, _, _, err = designmat.StandardizeResponse([]float64{3, 3, 3}, uniformWeights(3))
	assert.ErrorIs(t, err, designmat.ErrNaNInf, "constant response has no scale")
}

// TestGradient verifies the initial gradient against the defining formula
// computed directly on standardized columns and centered response.
func TestGradient(t *testing.T) {
	src := fixture()
	view, err := designmat.NewDense(src)
	require.NoError(t, err)
	n, p := view.Dims()
	w := uniformWeights(n)
	y := []float64{1.0, -0.5, 2.5, 0.0, 3.0, -1.5}

	m, err := designmat.ComputeMoments(view, w, true)
	require.NoError(t, err)
	g, err := designmat.Gradient(view, w, y, m)
	require.NoError(t, err)

	var ybar float64
	for i := range y {
		ybar += w[i] * y[i]
	}
	for j := 0; j < p; j++ {
		var want float64
		for i := 0; i < n; i++ {
			want += w[i] * (src.At(i, j) - m.Xm[j]) / m.Xs[j] * (y[i] - ybar)
		}
		assert.InDelta(t, want, g[j], 1e-12, "gradient col %d", j)
	}
}
