// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or validation of underlying kernels.

package matrix

import (
	"github.com/katalvlaran/eigenkit/number"
	"github.com/spf13/afero"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.set(i, i, number.One())
	}

	return I, nil
}

// CloneMatrix returns a deep copy of m. Thin wrapper over Matrix.Clone.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ---------- Eigen pipeline ----------

// EigenResult bundles everything matrix2eigens prints.
type EigenResult struct {
	Matrix       *Dense
	Eigenvalues  []Eigenvalue
	Eigenvectors []EigenSpace
}

// ComputeEigen runs Eigenvals and Eigenvects on m.
func ComputeEigen(m Matrix) (*EigenResult, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	vals, err := Eigenvals(m)
	if err != nil {
		return nil, err
	}
	vecs, err := Eigenvects(m)
	if err != nil {
		return nil, err
	}

	return &EigenResult{Matrix: toDense(m).cloneDense(), Eigenvalues: vals, Eigenvectors: vecs}, nil
}

// ComputeEigenFromFile reads path from fs and runs ComputeEigen.
func ComputeEigenFromFile(fs afero.Fs, path string, opts ...Option) (*EigenResult, error) {
	m, err := ReadFile(fs, path, opts...)
	if err != nil {
		return nil, err
	}

	return ComputeEigen(m)
}
