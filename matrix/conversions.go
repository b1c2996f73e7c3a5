// SPDX-License-Identifier: MIT

package matrix

import (
	"math/big"

	"github.com/katalvlaran/eigenkit/number"
)

// NewFromRats builds a Dense from rational rows. Errors as NewFromRows.
func NewFromRats(rows [][]*big.Rat) (*Dense, error) {
	q := make([][]number.Quad, len(rows))
	for i, row := range rows {
		q[i] = make([]number.Quad, len(row))
		for j, v := range row {
			q[i][j] = number.FromRat(v)
		}
	}

	return NewFromRows(q)
}

// NewFromInts builds a Dense from integer rows. Errors as NewFromRows.
func NewFromInts(rows [][]int64) (*Dense, error) {
	q := make([][]number.Quad, len(rows))
	for i, row := range rows {
		q[i] = make([]number.Quad, len(row))
		for j, v := range row {
			q[i][j] = number.FromInt(v)
		}
	}

	return NewFromRows(q)
}

// ToRows returns a [][]number.Quad copy of m.
func ToRows(m Matrix) [][]number.Quad {
	d := toDense(m)
	out := make([][]number.Quad, d.r)
	for i := range out {
		out[i] = make([]number.Quad, d.c)
		copy(out[i], d.data[i*d.c:(i+1)*d.c])
	}

	return out
}

// ToStrings renders every entry with number.Quad.String.
func ToStrings(m Matrix) [][]string {
	d := toDense(m)
	out := make([][]string, d.r)
	for i := range out {
		out[i] = make([]string, d.c)
		for j := range out[i] {
			out[i][j] = d.at(i, j).String()
		}
	}

	return out
}

// toRats extracts a rational copy of m; callers validate ValidateRational first.
func toRats(m *Dense) [][]*big.Rat {
	out := make([][]*big.Rat, m.r)
	for i := range out {
		out[i] = make([]*big.Rat, m.c)
		for j := range out[i] {
			r, _ := m.at(i, j).Rat()
			out[i][j] = r
		}
	}

	return out
}
