package result

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gapcheck/internal/diagnosis"
	"github.com/abhisek/gapcheck/internal/report"
	"github.com/abhisek/gapcheck/internal/router"
	"github.com/abhisek/gapcheck/internal/screen"
	"github.com/abhisek/gapcheck/internal/ui/components"
	"github.com/abhisek/gapcheck/internal/ui/layout"
	"github.com/abhisek/gapcheck/internal/ui/theme"
)

// ResultScreen shows a diagnostic result: score, consultation banner and
// the ranked gaps, with the recommendations of the selected gap.
type ResultScreen struct {
	result   diagnosis.Result
	selected int
	keys     components.KeyMap
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a new ResultScreen. The result is only read.
func New(r diagnosis.Result) *ResultScreen {
	return &ResultScreen{result: r, keys: components.DefaultKeyMap()}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Resultado"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Lacunas"},
		{Key: "Enter", Description: "Início"},
		{Key: "Esc", Description: "Voltar"},
	}
}

// Selected returns the index of the highlighted gap.
func (s *ResultScreen) Selected() int {
	return s.selected
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, s.keys.Up):
		if s.selected > 0 {
			s.selected--
		}
	case key.Matches(kmsg, s.keys.Down):
		if s.selected < len(s.result.Gaps)-1 {
			s.selected++
		}
	case key.Matches(kmsg, s.keys.Select):
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	r := s.result
	cw := min(max(width-8, 20), 90)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Title.Render("Pontuação geral")))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width,
		theme.ScoreStyle(r.OverallScore).Render(fmt.Sprintf("%d / 100", r.OverallScore))))
	b.WriteString("\n\n")

	if r.NeedsConsultation {
		banner := theme.Banner.
			BorderForeground(theme.Error).
			Foreground(theme.Error).
			Render("Consultoria recomendada: " + report.ReasonText(r.ConsultationReason))
		b.WriteString(layout.Centered(width, banner))
	} else {
		banner := theme.Banner.
			BorderForeground(theme.Success).
			Foreground(theme.Success).
			Render("Operação saudável: nenhuma consultoria necessária")
		b.WriteString(layout.Centered(width, banner))
	}
	b.WriteString("\n\n")

	if len(r.Gaps) == 0 {
		b.WriteString(layout.Centered(width, theme.Hint.Render("Nenhuma lacuna identificada.")))
		return b.String()
	}

	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Lacunas: %d alto, %d médio, %d baixo",
			r.CountByImpact(diagnosis.ImpactHigh),
			r.CountByImpact(diagnosis.ImpactMedium),
			r.CountByImpact(diagnosis.ImpactLow)))))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, layout.Divider(width, cw)))
	b.WriteString("\n")

	var list strings.Builder
	for i, g := range r.Gaps {
		prefix := "  "
		nameStyle := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			nameStyle = theme.Selected
		}
		impact := theme.ImpactStyle(g.Impact.Severity()).Render(fmt.Sprintf("%-6s", g.Impact))
		line := fmt.Sprintf("%s%s %s  prob. %s  impacto %s",
			prefix,
			impact,
			nameStyle.Render(fmt.Sprintf("%-12s", diagnosis.Describe(g.Type).Label)),
			report.Percent(g.Probability),
			report.Percent(g.ImpactScore))
		list.WriteString(line)
		list.WriteString("\n")
	}
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Width(cw).Render(list.String())))
	b.WriteString("\n")

	if s.selected < len(r.Gaps) {
		g := r.Gaps[s.selected]
		var detail strings.Builder
		detail.WriteString(theme.Body.Render(g.Description))
		for _, rec := range g.Recommendations {
			detail.WriteString("\n")
			detail.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("• "))
			detail.WriteString(theme.Body.Render(rec))
		}
		card := lipgloss.NewStyle().
			Width(cw).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(detail.String())
		b.WriteString(layout.Centered(width, card))
	}

	return b.String()
}
