package elnet

import (
	"math"

	"github.com/tomasb21/elnet/designmat"
)

// Default configuration values. All thresholds that encode algorithm
// policy (saturation rules, pass budgets, overflow guard) are Config
// fields seeded here, never constants buried in the driver.
const (
	// DefaultNLambda is the implicit sequence length.
	DefaultNLambda = 100
	// DefaultLambdaMinRatio is the ratio of the smallest to the largest
	// implicit lambda.
	DefaultLambdaMinRatio = 1e-4
	// DefaultTol is the convergence threshold on the maximum
	// variance-weighted squared coefficient change per sweep.
	DefaultTol = 1e-7
	// DefaultMaxPasses caps coordinate sweeps per lambda (inner sweeps
	// and post-convergence violator re-checks share the budget).
	DefaultMaxPasses = 100000
	// DefaultMinLambdas is the minimum number of solved lambdas before
	// deviance-saturation stopping may trigger.
	DefaultMinLambdas = 5
	// DefaultSmallDevianceRatio stops the path when a lambda adds less
	// than this fraction of the current deviance ratio.
	DefaultSmallDevianceRatio = 1e-5
	// DefaultMaxDevianceFraction stops the path once this fraction of
	// deviance is explained.
	DefaultMaxDevianceFraction = 0.999
	// DefaultBigValue is the coefficient magnitude treated as numeric
	// overflow.
	DefaultBigValue = 9.9e35

	// minAlphaScale floors alpha when deriving lambda-max so the ridge
	// end of the mixing range still yields a finite sequence.
	minAlphaScale = 1e-3
)

// Status classifies the outcome of a path fit or of a single lambda.
type Status int

const (
	// StatusOK — solved to convergence.
	StatusOK Status = iota

	// StatusTruncated — the path stopped early because the active set
	// (or the final nonzero count) exceeded its cap. A normal outcome:
	// every preceding record is valid.
	StatusTruncated

	// StatusNoConvergence — the pass budget ran out at some lambda.
	// Non-fatal; the record for that lambda holds the best iterate.
	StatusNoConvergence

	// StatusNumeric — fatal numeric overflow; fitting aborted. Records
	// solved before the failure are retained.
	StatusNumeric
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusTruncated:
		return "truncated"
	case StatusNoConvergence:
		return "no-convergence"
	case StatusNumeric:
		return "numeric-overflow"
	default:
		return "unknown"
	}
}

// Config is the flat, validated aggregate of everything one path fit
// needs. It is read-only during the fit: Fit receives it by value and all
// slices are treated as immutable.
//
// Per-feature slices (JU, VP, CL, Xm, Xs, Xv, G) must have length p and
// W length n, where (n, p) = Matrix.Dims(). Weights must sum to 1.
// G is the weighted covariance of each standardized column with the
// (centered, unit-variance) response at the all-zero coefficient vector;
// designmat.Gradient computes it.
type Config struct {
	// Matrix is the design-matrix view, dense or sparse.
	Matrix designmat.Matrix

	// JU gates feature eligibility: features with JU[j] == false never
	// enter the active set.
	JU []bool
	// VP holds non-negative per-feature penalty factors. A zero factor
	// forces the feature into the model at every lambda.
	VP []float64
	// CL holds per-feature {lower, upper} coefficient bounds with
	// lower ≤ 0 ≤ upper.
	CL [][2]float64
	// W holds normalized observation weights.
	W []float64
	// Xm, Xs, Xv are the per-feature standardization moments
	// (mean shift, scale, variance of the scaled column).
	Xm, Xs, Xv []float64
	// G is the initial gradient (feature–response covariance in
	// standardized space).
	G []float64

	// Alpha mixes the penalties: Alpha·L1 + (1−Alpha)·L2.
	Alpha float64

	// Lambdas, when non-nil, is an explicit non-increasing sequence and
	// NLambda/LambdaMinRatio are ignored. When nil, a geometric sequence
	// of NLambda values decaying to LambdaMinRatio·lambda_max is derived
	// from G.
	Lambdas        []float64
	NLambda        int
	LambdaMinRatio float64

	// Tol is the convergence threshold; MaxPasses the per-lambda sweep
	// budget.
	Tol       float64
	MaxPasses int

	// MaxActive caps how many features may ever become active (zero
	// means p). Exceeding it truncates the path. MaxFinal caps the
	// nonzero count of a stored record the same way.
	MaxActive int
	MaxFinal  int

	// MinLambdas, SmallDevianceRatio and MaxDevianceFraction control
	// deviance-saturation stopping on implicit sequences.
	MinLambdas          int
	SmallDevianceRatio  float64
	MaxDevianceFraction float64

	// BigValue is the coefficient magnitude treated as overflow.
	BigValue float64

	// ContinueOnStall keeps the path going past a lambda that exhausted
	// its pass budget instead of stopping after recording it.
	ContinueOnStall bool

	// Progress, when non-nil, is invoked after each solved lambda with
	// its index and value. Its return is ignored; it must not mutate
	// fit state.
	Progress func(k int, lambda float64)
}

// DefaultConfig returns a Config seeded with recommended defaults.
// Matrix, JU, VP, CL, W, moments and G remain for the caller to fill.
func DefaultConfig() Config {
	return Config{
		Alpha:               1,
		NLambda:             DefaultNLambda,
		LambdaMinRatio:      DefaultLambdaMinRatio,
		Tol:                 DefaultTol,
		MaxPasses:           DefaultMaxPasses,
		MinLambdas:          DefaultMinLambdas,
		SmallDevianceRatio:  DefaultSmallDevianceRatio,
		MaxDevianceFraction: DefaultMaxDevianceFraction,
		BigValue:            DefaultBigValue,
	}
}

// FitRecord is the per-lambda output: the solution at one point of the
// path.
type FitRecord struct {
	// Lambda is the regularization strength this record was solved at.
	Lambda float64
	// Coef maps feature index to its nonzero coefficient, in
	// standardized space.
	Coef map[int]float64
	// Active lists every feature that has entered the model so far, in
	// activation order. It only grows along the path; entries may carry
	// a zero coefficient at this particular lambda.
	Active []int
	// NonZero counts nonzero coefficients.
	NonZero int
	// DevRatio is the fraction of (standardized) deviance explained.
	DevRatio float64
	// Status is StatusOK or StatusNoConvergence for this lambda.
	Status Status
}

// PathResult is the outcome of a whole path fit.
type PathResult struct {
	// Fits holds one record per solved lambda, in solving order.
	Fits []FitRecord
	// NSolved is len(Fits); kept explicit for parity with truncation
	// reporting.
	NSolved int
	// Status is the terminal path status.
	Status Status
	// Passes counts coordinate sweeps over the whole path.
	Passes int
}

// normalize fills zero-valued caps with their derived defaults.
// Called on Fit's private copy; the caller's Config is untouched.
func (c *Config) normalize(p int) {
	if c.MaxActive == 0 {
		c.MaxActive = p
	}
	if c.MaxFinal == 0 {
		c.MaxFinal = p
	}
	if c.MinLambdas == 0 {
		c.MinLambdas = DefaultMinLambdas
	}
	if c.SmallDevianceRatio == 0 {
		c.SmallDevianceRatio = DefaultSmallDevianceRatio
	}
	if c.MaxDevianceFraction == 0 {
		c.MaxDevianceFraction = DefaultMaxDevianceFraction
	}
	if c.BigValue == 0 {
		c.BigValue = DefaultBigValue
	}
}

// validate asserts every invariant of the configuration bundle.
// It repairs nothing: inconsistent inputs are the caller's to fix.
func (c *Config) validate() error {
	if c.Matrix == nil {
		return ErrNilMatrix
	}
	n, p := c.Matrix.Dims()
	if len(c.JU) != p || len(c.VP) != p || len(c.CL) != p ||
		len(c.Xm) != p || len(c.Xs) != p || len(c.Xv) != p || len(c.G) != p {
		return ErrDimensionMismatch
	}
	if len(c.W) != n {
		return ErrDimensionMismatch
	}
	if c.Alpha < 0 || c.Alpha > 1 || math.IsNaN(c.Alpha) {
		return ErrBadAlpha
	}
	if c.Tol <= 0 || c.MaxPasses <= 0 || c.MaxActive < 0 || c.MaxFinal < 0 {
		return ErrBadConfig
	}

	var wsum float64
	for _, wi := range c.W {
		if wi < 0 || math.IsNaN(wi) || math.IsInf(wi, 0) {
			return ErrBadWeights
		}
		wsum += wi
	}
	if math.Abs(wsum-1) > 1e-6 {
		return ErrBadWeights
	}

	anyPenalized := false
	for j := 0; j < p; j++ {
		if c.VP[j] < 0 || math.IsNaN(c.VP[j]) {
			return ErrBadPenalty
		}
		if c.CL[j][0] > 0 || c.CL[j][1] < 0 {
			return ErrBadBounds
		}
		if c.Xs[j] <= 0 || c.Xv[j] < 0 {
			return ErrBadConfig
		}
		if math.IsNaN(c.G[j]) || math.IsInf(c.G[j], 0) {
			return ErrBadConfig
		}
		if c.JU[j] && c.VP[j] > 0 {
			anyPenalized = true
		}
	}

	if c.Lambdas != nil {
		if len(c.Lambdas) == 0 || c.Lambdas[0] <= 0 {
			return ErrBadLambda
		}
		for i := 1; i < len(c.Lambdas); i++ {
			if c.Lambdas[i] < 0 || c.Lambdas[i] > c.Lambdas[i-1] {
				return ErrBadLambda
			}
		}
	} else {
		if c.NLambda < 1 || c.LambdaMinRatio <= 0 || c.LambdaMinRatio >= 1 {
			return ErrBadLambda
		}
		if !anyPenalized {
			// Lambda-max is derived from penalized features only.
			return ErrBadPenalty
		}
	}

	return nil
}
