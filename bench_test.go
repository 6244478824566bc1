package elnet_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/tomasb21/elnet"
	"github.com/tomasb21/elnet/designmat"
)

// benchConfig assembles a deterministic n×p problem (sinusoid fill, no
// randomness) over the given view factory and returns a ready Config.
func benchConfig(b *testing.B, n, p int, thin float64, sparse bool) elnet.Config {
	b.Helper()

	data := make([]float64, n*p)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			v := math.Sin(float64((i + 1) * (j + 3)))
			if math.Abs(v) < thin {
				v = 0
			}
			data[i*p+j] = v
		}
	}
	src := mat.NewDense(n, p, data)

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < p && j < 5; j++ {
			y[i] += float64(5-j) * src.At(i, j)
		}
		y[i] += 0.05 * math.Sin(float64(17*i))
	}

	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}

	var view designmat.Matrix
	var err error
	if sparse {
		view, err = designmat.FromDense(src)
	} else {
		view, err = designmat.NewDense(src)
	}
	if err != nil {
		b.Fatalf("building view: %v", err)
	}

	mom, err := designmat.ComputeMoments(view, w, true)
	if err != nil {
		b.Fatalf("moments: %v", err)
	}
	ys, _, _, err := designmat.StandardizeResponse(y, w)
	if err != nil {
		b.Fatalf("standardize: %v", err)
	}
	g, err := designmat.Gradient(view, w, ys, mom)
	if err != nil {
		b.Fatalf("gradient: %v", err)
	}

	ju := make([]bool, p)
	vp := make([]float64, p)
	cl := make([][2]float64, p)
	for j := 0; j < p; j++ {
		ju[j] = true
		vp[j] = 1
		cl[j] = [2]float64{math.Inf(-1), math.Inf(1)}
	}

	cfg := elnet.DefaultConfig()
	cfg.Matrix = view
	cfg.JU, cfg.VP, cfg.CL, cfg.W = ju, vp, cl, w
	cfg.Xm, cfg.Xs, cfg.Xv, cfg.G = mom.Xm, mom.Xs, mom.Xv, g
	cfg.NLambda = 50

	return cfg
}

func benchmarkFit(b *testing.B, n, p int, thin float64, sparse bool) {
	cfg := benchConfig(b, n, p, thin, sparse)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := elnet.Fit(cfg); err != nil {
			b.Fatalf("Fit failed: %v", err)
		}
	}
}

// BenchmarkFitDenseSmall fits a 200×20 dense path.
func BenchmarkFitDenseSmall(b *testing.B) { benchmarkFit(b, 200, 20, 0, false) }

// BenchmarkFitDenseMedium fits a 1000×50 dense path.
func BenchmarkFitDenseMedium(b *testing.B) { benchmarkFit(b, 1000, 50, 0, false) }

// BenchmarkFitSparseMedium fits a 1000×50 path through the
// compressed-column view with roughly half the entries zeroed.
func BenchmarkFitSparseMedium(b *testing.B) { benchmarkFit(b, 1000, 50, 0.5, true) }
