// Package designmat: the Matrix capability surface and its two storages.
//
// The solver consumes weighted column statistics only — it never iterates
// rows itself. Keeping the surface this narrow lets the sparse view skip
// zero rows everywhere while the dense view stays a thin adapter over
// gonum's mat types.

package designmat

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a read-only view of a design matrix, dense or sparse.
//
// Contracts (shared by all implementations):
//   - Dims never changes over the lifetime of a view.
//   - w must have length Dims() rows; methods do not re-validate it on the
//     hot path — callers validate once up front.
//   - All returned statistics are raw (unstandardized); standardization is
//     applied by the consumer using Moments.
type Matrix interface {
	// Dims returns (rows, cols) of the viewed matrix.
	Dims() (rows, cols int)

	// ColDot returns the weighted raw cross-product
	// Σ_i w[i]·x[i,j]·x[i,k]. For sparse storage only rows where both
	// columns are nonzero contribute.
	ColDot(j, k int, w []float64) float64

	// ColSums returns Σ_i w[i]·x[i,j] and Σ_i w[i]·x[i,j]².
	ColSums(j int, w []float64) (sum, sumSq float64)

	// ResponseDot returns Σ_i w[i]·x[i,j]·y[i].
	ResponseDot(j int, w, y []float64) float64
}

// Dense is a non-owning Matrix view over a gonum mat.Matrix.
// The underlying matrix must not be mutated while the view is in use.
type Dense struct {
	m    mat.Matrix
	r, c int
}

// NewDense wraps m as a Dense view. The matrix is scanned once for
// NaN/Inf entries (numeric policy: finite values only).
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNaNInf.
func NewDense(m mat.Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
	}

	return &Dense{m: m, r: r, c: c}, nil
}

// Dims returns (rows, cols).
func (d *Dense) Dims() (int, int) { return d.r, d.c }

// ColDot returns Σ_i w[i]·x[i,j]·x[i,k].
func (d *Dense) ColDot(j, k int, w []float64) float64 {
	var s float64
	for i := 0; i < d.r; i++ {
		s += w[i] * d.m.At(i, j) * d.m.At(i, k)
	}

	return s
}

// ColSums returns the weighted sum and weighted sum of squares of column j.
func (d *Dense) ColSums(j int, w []float64) (sum, sumSq float64) {
	var v float64
	for i := 0; i < d.r; i++ {
		v = d.m.At(i, j)
		sum += w[i] * v
		sumSq += w[i] * v * v
	}

	return sum, sumSq
}

// ResponseDot returns Σ_i w[i]·x[i,j]·y[i].
func (d *Dense) ResponseDot(j int, w, y []float64) float64 {
	var s float64
	for i := 0; i < d.r; i++ {
		s += w[i] * d.m.At(i, j) * y[i]
	}

	return s
}

// CSC is a compressed-column sparse design matrix.
//
// Layout: column j occupies RowIdx[ColPtr[j]:ColPtr[j+1]] (strictly
// increasing row indices) with matching values in Val. Rows absent from a
// column are implicitly zero.
type CSC struct {
	rows, cols int
	colPtr     []int
	rowIdx     []int
	val        []float64
}

// NewCSC builds a CSC view over the given compressed-column layout.
// The slices are retained, not copied; callers must not mutate them while
// the view is in use.
//
// Validation (all up front, none on the hot path):
//   - len(colPtr) == cols+1, colPtr[0] == 0, monotone non-decreasing,
//     colPtr[cols] == len(rowIdx) == len(val);
//   - row indices in [0, rows) and strictly increasing within a column;
//   - all values finite.
//
// Errors: ErrBadShape, ErrBadColPtr, ErrOutOfRange, ErrNaNInf.
func NewCSC(rows, cols int, colPtr, rowIdx []int, val []float64) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(colPtr) != cols+1 || colPtr[0] != 0 {
		return nil, ErrBadColPtr
	}
	for j := 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] {
			return nil, ErrBadColPtr
		}
	}
	nnz := colPtr[cols]
	if len(rowIdx) != nnz || len(val) != nnz {
		return nil, ErrBadColPtr
	}
	for j := 0; j < cols; j++ {
		prev := -1
		for p := colPtr[j]; p < colPtr[j+1]; p++ {
			r := rowIdx[p]
			if r < 0 || r >= rows {
				return nil, ErrOutOfRange
			}
			if r <= prev {
				return nil, ErrBadColPtr
			}
			prev = r
			if v := val[p]; math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
		}
	}

	return &CSC{rows: rows, cols: cols, colPtr: colPtr, rowIdx: rowIdx, val: val}, nil
}

// FromDense converts m into CSC form, dropping exact zeros.
// Intended for tests and callers holding dense data that is logically
// sparse; the conversion is O(rows·cols).
func FromDense(m mat.Matrix) (*CSC, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}
	colPtr := make([]int, c+1)
	var rowIdx []int
	var val []float64
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if v != 0 {
				rowIdx = append(rowIdx, i)
				val = append(val, v)
			}
		}
		colPtr[j+1] = len(rowIdx)
	}

	return &CSC{rows: r, cols: c, colPtr: colPtr, rowIdx: rowIdx, val: val}, nil
}

// Dims returns (rows, cols).
func (s *CSC) Dims() (int, int) { return s.rows, s.cols }

// NNZ returns the number of explicitly stored entries.
func (s *CSC) NNZ() int { return s.colPtr[s.cols] }

// ColDot returns Σ w[i]·x[i,j]·x[i,k] by merging the two sorted nonzero
// row lists; cost is O(nnz(j) + nnz(k)).
func (s *CSC) ColDot(j, k int, w []float64) float64 {
	a, aEnd := s.colPtr[j], s.colPtr[j+1]
	b, bEnd := s.colPtr[k], s.colPtr[k+1]
	var sum float64
	for a < aEnd && b < bEnd {
		ra, rb := s.rowIdx[a], s.rowIdx[b]
		switch {
		case ra < rb:
			a++
		case rb < ra:
			b++
		default:
			sum += w[ra] * s.val[a] * s.val[b]
			a++
			b++
		}
	}

	return sum
}

// ColSums returns the weighted sum and sum of squares of column j in
// O(nnz(j)).
func (s *CSC) ColSums(j int, w []float64) (sum, sumSq float64) {
	for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
		wv := w[s.rowIdx[p]] * s.val[p]
		sum += wv
		sumSq += wv * s.val[p]
	}

	return sum, sumSq
}

// ResponseDot returns Σ w[i]·x[i,j]·y[i] in O(nnz(j)).
func (s *CSC) ResponseDot(j int, w, y []float64) float64 {
	var sum float64
	for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
		r := s.rowIdx[p]
		sum += w[r] * s.val[p] * y[r]
	}

	return sum
}

// ToDense materializes the view as a gonum *mat.Dense.
// Intended for tests and diagnostics, not the fitting hot path.
func (s *CSC) ToDense() *mat.Dense {
	out := mat.NewDense(s.rows, s.cols, nil)
	for j := 0; j < s.cols; j++ {
		for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			out.Set(s.rowIdx[p], j, s.val[p])
		}
	}

	return out
}
