// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"io"

	"github.com/katalvlaran/eigenkit/matrix"
)

// RenderOption customizes Render / RenderModes output.
type RenderOption func(*renderOptions)

type renderOptions struct {
	heading func(string) string
}

// WithHeadingStyle decorates section headings (e.g. bold in a terminal).
// The body text is never styled. A nil fn keeps headings plain.
func WithHeadingStyle(fn func(string) string) RenderOption {
	return func(o *renderOptions) {
		if fn != nil {
			o.heading = fn
		}
	}
}

func gatherRenderOptions(opts ...RenderOption) renderOptions {
	o := renderOptions{heading: func(s string) string { return s }}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// printer remembers the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

// RenderModes writes derived modes, one general-solution term per mode:
//
//	Derived Fundamental Solutions:
//	x1(t) = e^(1t) * Matrix([
//	    [-sqrt(2)*sin(sqrt(2)*t)],
//	    [cos(sqrt(2)*t)],
//	])
func RenderModes(w io.Writer, modes []Mode, opts ...RenderOption) error {
	cfg := gatherRenderOptions(opts...)
	p := &printer{w: w}

	p.println(cfg.heading("Derived Fundamental Solutions:"))
	if len(modes) == 0 {
		p.println("(none)")
	}
	for i, m := range modes {
		p.printf("x%d(t) = %s * %s\n", i+1, exponent(m.Rate), matrix.FormatPretty(modeCells(m)))
	}

	return p.err
}
