package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/gapcheck/internal/questionbank"
	"github.com/abhisek/gapcheck/internal/router"
	"github.com/abhisek/gapcheck/internal/screen"
	"github.com/abhisek/gapcheck/internal/screens/history"
	"github.com/abhisek/gapcheck/internal/screens/notice"
	"github.com/abhisek/gapcheck/internal/screens/questionnaire"
	"github.com/abhisek/gapcheck/internal/store"
	"github.com/abhisek/gapcheck/internal/ui/components"
	"github.com/abhisek/gapcheck/internal/ui/theme"
)

// latestLoadedMsg carries the most recent stored result.
type latestLoadedMsg struct {
	Record *store.ResultRecord
	Err    error
}

// HomeScreen is the landing screen: bank summary, last result and menu.
type HomeScreen struct {
	bank   *questionbank.Bank
	repo   store.EventRepo
	logger *zap.Logger
	menu   components.Menu
	latest *store.ResultRecord
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen. repo may be nil, in which case results are
// not persisted and history is unavailable.
func New(bank *questionbank.Bank, repo store.EventRepo, logger *zap.Logger) *HomeScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &HomeScreen{bank: bank, repo: repo, logger: logger}

	items := []components.MenuItem{
		{Label: "INICIAR DIAGNÓSTICO", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: questionnaire.New(h.bank, h.repo, h.logger)}
			}
		}},
		{Label: "HISTÓRICO", Action: func() tea.Cmd {
			if h.repo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: notice.New("Histórico", "Nenhum banco de dados configurado.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.repo)}
			}
		}},
		{Label: "SAIR", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLatest()
}

// Resume reloads the last result after a diagnostic or a history visit.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadLatest()
}

func (h *HomeScreen) loadLatest() tea.Cmd {
	if h.repo == nil {
		return nil
	}
	repo := h.repo
	return func() tea.Msg {
		rec, err := repo.LatestResult(context.Background())
		return latestLoadedMsg{Record: rec, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(latestLoadedMsg); ok {
		if msg.Err != nil {
			h.logger.Warn("load latest result", zap.Error(msg.Err))
			return h, nil
		}
		h.latest = msg.Record
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(max(width-6, 20), 60)
	box := lipgloss.NewStyle().
		Width(cw).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render("Diagnóstico de Marketing")+"\n"+
			theme.Subtitle.Render("descubra as lacunas da sua operação")))

	stats := fmt.Sprintf("Banco: %s   Perguntas: %d   Áreas: %d",
		h.bank.Name(), h.bank.Len(), len(h.bank.GapTypes()))
	if h.latest != nil {
		res := h.latest.Result
		stats += "\n" + "Último diagnóstico: " +
			theme.ScoreStyle(res.OverallScore).Render(fmt.Sprintf("%d/100", res.OverallScore)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				"  em "+h.latest.Timestamp.Local().Format("02/01/2006"))
	}
	sections = append(sections, box.Render(stats))
	sections = append(sections, box.Render(h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Início"
}
