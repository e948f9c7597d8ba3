package printer

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Phase color palette, kept to the basic ANSI range so the output reads the
// same on light and dark terminals.
var (
	colorPreRun   = lipgloss.Color("4") // blue
	colorRealtime = lipgloss.Color("2") // green
	colorPostRun  = lipgloss.Color("3") // yellow
	colorWarning  = lipgloss.Color("1") // red
	colorNotice   = lipgloss.Color("5") // magenta
)

// phaseStyle renders text for one phase. With colors disabled it passes text
// through unmodified.
type phaseStyle struct {
	enabled bool
	style   lipgloss.Style
}

func (s phaseStyle) render(text string) string {
	if !s.enabled {
		return text
	}
	return s.style.Render(text)
}

type styles struct {
	preRun   phaseStyle
	realtime phaseStyle
	postRun  phaseStyle
	warning  phaseStyle
	notice   phaseStyle
}

// newStyles builds the phase styles. A dedicated renderer with a forced ANSI
// profile keeps styling deterministic regardless of the environment lipgloss
// would otherwise detect.
func newStyles(w io.Writer, enabled bool) styles {
	if !enabled {
		return styles{}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	mk := func(c lipgloss.Color) phaseStyle {
		return phaseStyle{enabled: true, style: r.NewStyle().Foreground(c)}
	}
	return styles{
		preRun:   mk(colorPreRun),
		realtime: mk(colorRealtime),
		postRun:  mk(colorPostRun),
		warning:  mk(colorWarning),
		notice:   mk(colorNotice),
	}
}
