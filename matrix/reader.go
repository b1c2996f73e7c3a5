// SPDX-License-Identifier: MIT
// Package matrix - text reader.
//
// Purpose:
//   - Read a matrix written one row per line, entries separated by whitespace
//     (or a literal delimiter, see WithDelimiter).
//   - Every entry is a plain rational literal parsed by number.ParseRat;
//     nothing in the input is ever evaluated.
//
// Errors:
//   - *ParseError (matches ErrParse and its cause) for a bad token;
//   - ErrDimensionMismatch for a row whose length differs from the first row;
//   - ErrEmpty when no non-blank line exists.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/eigenkit/number"
	"github.com/spf13/afero"
)

const (
	opParse    = "Parse"
	opReadFile = "ReadFile"
)

// ParseError reports a token that is not a rational literal.
// Line and Column are 1-based; Column counts tokens, not bytes.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error // cause, usually number.ErrSyntax
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, entry %d: %q: %v", e.Line, e.Column, e.Token, e.Err)
}

// Unwrap exposes both ErrParse and the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Parse reads a matrix from r.
//
// Stage 1 (Scan): split non-blank lines into tokens.
// Stage 2 (Parse): convert every token with number.ParseRat.
// Stage 3 (Validate): all rows must match the first row's length.
// Complexity: O(input size).
func Parse(r io.Reader, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, o.maxLineBytes)), o.maxLineBytes)

	var (
		rows  [][]number.Quad
		line  int
		width int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		tokens := splitRow(text, o.delimiter)
		if len(tokens) == 0 {
			continue // a line made only of delimiters
		}

		row := make([]number.Quad, len(tokens))
		for j, tok := range tokens {
			v, err := number.Parse(tok)
			if err != nil {
				return nil, matrixErrorf(opParse, &ParseError{Line: line, Column: j + 1, Token: tok, Err: unwrapCause(err)})
			}
			row[j] = v
		}

		if len(rows) == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, matrixErrorf(
				fmt.Sprintf("%s: line %d has %d entries, want %d", opParse, line, len(row), width),
				ErrDimensionMismatch,
			)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s: line %d", opParse, line+1), errors.Join(ErrParse, err))
	}
	if len(rows) == 0 {
		return nil, matrixErrorf(opParse, ErrEmpty)
	}

	return NewFromRows(rows)
}

// ReadFile opens path on fs and parses it with Parse.
// A missing file surfaces fs.ErrNotExist through the wrap chain.
func ReadFile(fs afero.Fs, path string, opts ...Option) (*Dense, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, matrixErrorf(opReadFile, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s(%s)", opReadFile, path), err)
	}

	return m, nil
}

// splitRow tokenizes one trimmed line.
func splitRow(text, delim string) []string {
	if delim == "" {
		return strings.Fields(text)
	}
	parts := strings.Split(text, delim)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// unwrapCause strips the ParseRat call-site tag, keeping the sentinel.
func unwrapCause(err error) error {
	switch {
	case errors.Is(err, number.ErrDivisionByZero):
		return number.ErrDivisionByZero
	case errors.Is(err, number.ErrSyntax):
		return number.ErrSyntax
	}

	return err
}
