package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled decides whether output to w may carry ANSI styling.
// NO_COLOR and the --no-color flag always win.
func ColorEnabled(w io.Writer, noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(w)
}

// Configure sets the process-wide color profile for lipgloss and pterm
func Configure(w io.Writer, noColorFlag bool) {
	if !ColorEnabled(w, noColorFlag) {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
	pterm.EnableStyling()
}
