package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Colour modes accepted by output.color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// styler decorates section headings. Values and matrices are never styled so
// the text output stays machine-comparable with colour off.
type styler struct {
	enabled bool
	heading lipgloss.Style
}

func newStyler(w io.Writer, mode string) *styler {
	enabled := false
	switch mode {
	case colorAlways:
		enabled = true
	case colorAuto:
		enabled = os.Getenv("NO_COLOR") == "" && isTerminal(w)
	}

	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &styler{
		enabled: enabled,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}

// Heading renders a section title.
func (s *styler) Heading(text string) string {
	if !s.enabled {
		return text
	}

	return s.heading.Render(text)
}

// isTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
