package output

import (
	"io"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme styles the pretty text blocks. The zero Theme renders plain text.
type Theme struct {
	on   bool
	id   lipgloss.Style
	good lipgloss.Style
	bad  lipgloss.Style
	dim  lipgloss.Style
}

// NewTheme returns the colored theme. Styles always render full ANSI; write
// through ColorWriter to downsample or strip them for the target terminal.
func NewTheme() Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return Theme{
		on:   true,
		id:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		good: r.NewStyle().Foreground(lipgloss.Color("10")),
		bad:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		dim:  r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (t Theme) render(s lipgloss.Style, text string) string {
	if !t.on {
		return text
	}
	return s.Render(text)
}

// ColorWriter adapts ANSI sequences written to w to profile p. NoTTY strips
// them entirely.
func ColorWriter(w io.Writer, p colorprofile.Profile) io.Writer {
	return &colorprofile.Writer{Forward: w, Profile: p}
}
