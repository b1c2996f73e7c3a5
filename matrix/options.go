// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the matrix reader.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes reader behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter splits rows on any run of whitespace.
	DefaultDelimiter = ""

	// DefaultMaxLineBytes bounds one input line. Larger lines fail with
	// bufio.ErrTooLong wrapped in ErrParse.
	DefaultMaxLineBytes = 1 << 20
)

// panic messages for invalid constructor arguments
const (
	panicMaxLineInvalid = "matrix: WithMaxLineBytes: limit must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates reader options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	delimiter    string // DefaultDelimiter; "" means whitespace
	maxLineBytes int    // DefaultMaxLineBytes
}

// WithDelimiter splits each row on the literal sep instead of whitespace.
// Empty tokens produced by repeated separators are dropped, and each token is
// trimmed of surrounding spaces. An empty sep restores whitespace splitting.
func WithDelimiter(sep string) Option {
	return func(o *Options) { o.delimiter = sep }
}

// WithMaxLineBytes sets the longest accepted input line.
// Panics when limit <= 0.
func WithMaxLineBytes(limit int) Option {
	if limit <= 0 {
		panic(panicMaxLineInvalid)
	}

	return func(o *Options) { o.maxLineBytes = limit }
}

// Delimiter returns the effective delimiter ("" means whitespace).
func (o Options) Delimiter() string { return o.delimiter }

// gatherOptions resolves user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		delimiter:    DefaultDelimiter,
		maxLineBytes: DefaultMaxLineBytes,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
