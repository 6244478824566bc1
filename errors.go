// Package elnet: sentinel error set.
// Errors are reserved for pre-fit configuration failure plus the one fatal
// in-fit condition (numeric overflow). Per-lambda outcomes are Status
// codes on the result, not errors. Match with errors.Is.

package elnet

import "errors"

var (
	// ErrNilMatrix indicates Config.Matrix is nil.
	ErrNilMatrix = errors.New("elnet: nil design matrix")

	// ErrDimensionMismatch indicates a per-feature or per-observation
	// slice whose length disagrees with the design matrix.
	ErrDimensionMismatch = errors.New("elnet: dimension mismatch")

	// ErrBadAlpha indicates Alpha outside [0, 1].
	ErrBadAlpha = errors.New("elnet: alpha outside [0,1]")

	// ErrBadLambda indicates an unusable lambda descriptor: an explicit
	// sequence that is empty, negative or increasing, or an implicit one
	// with NLambda < 1 or LambdaMinRatio outside (0, 1).
	ErrBadLambda = errors.New("elnet: invalid lambda sequence")

	// ErrBadPenalty indicates a negative penalty factor, or an implicit
	// lambda sequence with no penalized eligible feature to derive
	// lambda-max from.
	ErrBadPenalty = errors.New("elnet: invalid penalty factors")

	// ErrBadBounds indicates box constraints that exclude zero
	// (lower > 0 or upper < 0).
	ErrBadBounds = errors.New("elnet: box constraints must contain zero")

	// ErrBadWeights indicates observation weights that are negative,
	// non-finite, or not normalized to sum 1.
	ErrBadWeights = errors.New("elnet: weights must be normalized")

	// ErrBadConfig covers remaining scalar misconfiguration: Tol, passes,
	// active-set caps and similar non-positive knobs.
	ErrBadConfig = errors.New("elnet: invalid configuration")

	// ErrNumeric reports fatal numeric overflow during fitting. The
	// returned PathResult still carries every record solved before the
	// failure.
	ErrNumeric = errors.New("elnet: numeric overflow during fit")
)
