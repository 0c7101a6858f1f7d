package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gapcheck/internal/router"
	"github.com/abhisek/gapcheck/internal/screen"
	"github.com/abhisek/gapcheck/internal/screens/result"
	"github.com/abhisek/gapcheck/internal/store"
	"github.com/abhisek/gapcheck/internal/ui/components"
	"github.com/abhisek/gapcheck/internal/ui/layout"
	"github.com/abhisek/gapcheck/internal/ui/theme"
)

// historyLimit caps how many results the screen loads.
const historyLimit = 50

type historyLoadedMsg struct {
	Results []store.ResultRecord
	Err     error
}

// HistoryScreen lists stored diagnostic results, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	results   []store.ResultRecord
	visible   []int // indexes into results that match the filter
	selected  int
	filter    components.FilterInput
	keys      components.KeyMap
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		filter:    components.NewFilterInput("sessão ou lacuna", 40),
		keys:      components.DefaultKeyMap(),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		results, err := repo.QueryResults(context.Background(), store.QueryOpts{Limit: historyLimit})
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Histórico"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Aplicar"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Detalhes"},
		{Key: "↑↓", Description: "Navegar"},
		{Key: "/", Description: "Filtrar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			s.applyFilter()
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.filter.Focused() {
			if msg.String() == "enter" {
				s.filter.Blur()
				return s, nil
			}
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			s.applyFilter()
			return s, cmd
		}

		switch {
		case key.Matches(msg, s.keys.Filter):
			return s, s.filter.Focus()
		case key.Matches(msg, s.keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, s.keys.Down):
			if s.selected < len(s.visible)-1 {
				s.selected++
			}
		case key.Matches(msg, s.keys.Select):
			if s.selected < len(s.visible) {
				rec := s.results[s.visible[s.selected]]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: result.New(rec.Result)}
				}
			}
		}
	}
	return s, nil
}

// applyFilter recomputes the visible rows. A row matches when its session
// ID starts with the filter or one of its gap types contains it.
func (s *HistoryScreen) applyFilter() {
	q := s.filter.Value()
	s.visible = s.visible[:0]
	for i, rec := range s.results {
		if q == "" || matches(rec, q) {
			s.visible = append(s.visible, i)
		}
	}
	if s.selected >= len(s.visible) {
		s.selected = max(len(s.visible)-1, 0)
	}
}

func matches(rec store.ResultRecord, q string) bool {
	if strings.HasPrefix(strings.ToLower(rec.SessionID), q) {
		return true
	}
	for _, g := range rec.Result.Gaps {
		if strings.Contains(strings.ToLower(string(g.Type)), q) {
			return true
		}
	}
	return false
}

// Visible returns the records currently shown.
func (s *HistoryScreen) Visible() []store.ResultRecord {
	out := make([]store.ResultRecord, len(s.visible))
	for i, idx := range s.visible {
		out[i] = s.results[idx]
	}
	return out
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nErro: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Carregando histórico...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nenhum diagnóstico ainda. Comece pelo menu inicial!")
	}

	var b strings.Builder
	b.WriteString("\n")
	if fv := s.filter.View(); fv != "" {
		b.WriteString(layout.Centered(width, fv))
		b.WriteString("\n\n")
	}
	if len(s.visible) == 0 {
		b.WriteString(layout.Centered(width, theme.Hint.Render("Nenhum resultado para o filtro.")))
		return b.String()
	}

	for row, idx := range s.visible {
		rec := s.results[idx]
		consult := "  "
		if rec.Result.NeedsConsultation {
			consult = lipgloss.NewStyle().Foreground(theme.Error).Render("! ")
		}
		top := "sem lacunas"
		if len(rec.Result.Gaps) > 0 {
			g := rec.Result.Gaps[0]
			top = fmt.Sprintf("%s (%s)", g.Type, g.Impact)
		}

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if row == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %3d/100  %-24s  %s",
			prefix,
			rec.Timestamp.Local().Format("02/01/2006 15:04"),
			rec.Result.OverallScore,
			top,
			shortID(rec.SessionID))
		b.WriteString(layout.Centered(width, consult+style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
