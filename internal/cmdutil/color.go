package cmdutil

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"golang.org/x/term"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// ResolveColor decides whether to style output written to stdout and for
// which terminal profile. Auto only colors a terminal, and honours NO_COLOR
// and friends through environ.
func ResolveColor(mode string, stdout io.Writer, environ []string) (bool, colorprofile.Profile) {
	switch mode {
	case ColorAlways:
		return true, colorprofile.TrueColor
	case ColorNever:
		return false, colorprofile.NoTTY
	}
	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, colorprofile.NoTTY
	}
	p := colorprofile.Detect(f, environ)
	return p != colorprofile.NoTTY && p != colorprofile.Ascii, p
}
