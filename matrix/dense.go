// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/eigenkit/number"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero number.Quad is a valid 0, so a fresh buffer needs no fill pass.
type Dense struct {
	r, c int           // number of rows and columns
	data []number.Quad // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: make([]number.Quad, rows*cols)}, nil
}

// NewFromRows builds a Dense from a rectangular [][]number.Quad (copied).
// Returns ErrInvalidDimensions for empty input and ErrDimensionMismatch
// (tagged with the first ragged row) when row lengths differ.
func NewFromRows(rows [][]number.Quad) (*Dense, error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf("NewFromRows", err)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf("NewFromRows", err)
	}
	for i, row := range rows {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (number.Quad, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return number.Quad{}, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
// Quad values are immutable, so storing v directly is safe.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v number.Quad) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

func (m *Dense) cloneDense() *Dense {
	data := make([]number.Quad, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// at/set are unchecked accessors for kernels that already validated bounds.
func (m *Dense) at(i, j int) number.Quad     { return m.data[i*m.c+j] }
func (m *Dense) set(i, j int, v number.Quad) { m.data[i*m.c+j] = v }

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < m.c; k++ {
		m.data[i*m.c+k], m.data[j*m.c+k] = m.data[j*m.c+k], m.data[i*m.c+k]
	}
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy.
func toDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	out := &Dense{r: m.Rows(), c: m.Cols(), data: make([]number.Quad, m.Rows()*m.Cols())}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			out.data[i*out.c+j], _ = m.At(i, j) // safe: bounds ensured
		}
	}

	return out
}
