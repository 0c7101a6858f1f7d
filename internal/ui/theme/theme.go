package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: calm dashboard tones, with red/amber/green kept for
// severity.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Banner = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	// Answered marks the option chosen on an earlier visit.
	Answered = lipgloss.NewStyle().
			Foreground(Secondary)
)

// Severity
var (
	ImpactHigh = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ImpactMedium = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	ImpactLow = lipgloss.NewStyle().
			Foreground(Success)
)

// ImpactStyle returns the style for a gap severity rank (3 high, 2 medium,
// anything else low).
func ImpactStyle(severity int) lipgloss.Style {
	switch severity {
	case 3:
		return ImpactHigh
	case 2:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// ScoreStyle returns the style for an overall score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score < 40:
		return ImpactHigh
	case score < 70:
		return ImpactMedium
	default:
		return ImpactLow.Bold(true)
	}
}
