// Package designmat provides read-only design-matrix views for the elnet
// path solver, plus the weighted standardization moments those views need.
//
// Two storage kinds implement the same Matrix capability surface:
//
//   - Dense — a non-owning view over any gonum mat.Matrix.
//   - CSC   — compressed-column sparse storage (column pointers, sorted
//     row indices, explicit values). Only nonzero entries are materialized;
//     standardization is applied algebraically, never by centering columns.
//
// The Matrix interface exposes exactly the weighted column statistics the
// solver consumes: raw column cross-products, per-column weighted sums, and
// column–response dot products. All methods treat the underlying data as
// immutable; views never copy or mutate caller storage.
//
// Moments (per-column weighted mean Xm, scale Xs, variance Xv) are computed
// by ComputeMoments and are the bridge between raw storage and the
// standardized coordinate system the solver works in:
//
//	standardized column j = (x_j − Xm[j]) / Xs[j]
//
// Observation weights are expected to sum to one everywhere in this
// package; use NormalizeWeights first when they do not.
//
// All user-triggered error conditions return package sentinels
// (ErrBadShape, ErrOutOfRange, ErrBadColPtr, ErrNaNInf, …) matched via
// errors.Is; no public entry point panics on bad input.
package designmat
