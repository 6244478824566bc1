// Package designmat: sentinel error set.
// All validation failures in this package return one of these sentinels;
// tests match them via errors.Is. Panics are reserved for programmer errors
// in private helpers.

package designmat

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix (or nil view) was supplied.
	ErrNilMatrix = errors.New("designmat: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0, or slice lengths inconsistent with it).
	ErrBadShape = errors.New("designmat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("designmat: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between a view
	// and an auxiliary vector (weights, response, moments).
	ErrDimensionMismatch = errors.New("designmat: dimension mismatch")

	// ErrBadColPtr signals a malformed compressed-column layout:
	// non-monotone column pointers, wrong first/last entry, or row indices
	// that are unsorted or duplicated within a column.
	ErrBadColPtr = errors.New("designmat: malformed column pointers")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required by the numeric policy (ingestion of matrix values,
	// weights, or response).
	ErrNaNInf = errors.New("designmat: NaN or Inf encountered")

	// ErrBadWeights indicates observation weights that are negative or
	// sum to a non-positive value.
	ErrBadWeights = errors.New("designmat: invalid observation weights")
)
