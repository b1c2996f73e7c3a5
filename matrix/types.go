// SPDX-License-Identifier: MIT

// Package matrix: domain types. This file contains ONLY the public Matrix
// interface and the eigen result types; errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import "github.com/katalvlaran/eigenkit/number"

// Matrix represents a two-dimensional mutable array of exact values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (number.Quad, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v number.Quad) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Eigenvalue is a root of the characteristic polynomial with its algebraic
// multiplicity.
type Eigenvalue struct {
	Value        number.Quad
	Multiplicity int
}

// EigenSpace groups an eigenvalue with a basis of its eigenspace.
// Vectors are n×1 column matrices; len(Vectors) is the geometric
// multiplicity and never exceeds Multiplicity.
type EigenSpace struct {
	Value        number.Quad
	Multiplicity int
	Vectors      []*Dense
}
