package report

import "github.com/fatih/color"

// palette holds the colors used by the text renderers. Colors are toggled
// per palette, never through the global color.NoColor switch.
type palette struct {
	bold   *color.Color
	faint  *color.Color
	red    *color.Color
	yellow *color.Color
	green  *color.Color
	cyan   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		bold:   color.New(color.Bold),
		faint:  color.New(color.Faint),
		red:    color.New(color.FgRed, color.Bold),
		yellow: color.New(color.FgYellow),
		green:  color.New(color.FgGreen),
		cyan:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.bold, p.faint, p.red, p.yellow, p.green, p.cyan} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// impact returns the color for a gap impact class.
func (p palette) impact(severity int) *color.Color {
	switch severity {
	case 3:
		return p.red
	case 2:
		return p.yellow
	default:
		return p.green
	}
}

// score returns the color for an overall score.
func (p palette) score(score int) *color.Color {
	switch {
	case score < 40:
		return p.red
	case score < 70:
		return p.yellow
	default:
		return p.green
	}
}
