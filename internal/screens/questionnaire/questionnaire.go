package questionnaire

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/gapcheck/internal/diagnosis"
	"github.com/abhisek/gapcheck/internal/questionbank"
	"github.com/abhisek/gapcheck/internal/router"
	"github.com/abhisek/gapcheck/internal/screen"
	"github.com/abhisek/gapcheck/internal/screens/result"
	"github.com/abhisek/gapcheck/internal/session"
	"github.com/abhisek/gapcheck/internal/store"
	"github.com/abhisek/gapcheck/internal/ui/components"
	"github.com/abhisek/gapcheck/internal/ui/layout"
	"github.com/abhisek/gapcheck/internal/ui/theme"
)

// QuestionnaireScreen walks the user through the question bank one
// question at a time.
type QuestionnaireScreen struct {
	sess    *session.Session
	repo    store.EventRepo
	logger  *zap.Logger
	choices components.ChoiceList
	keys    components.KeyMap
	pending []session.AnswerEvent
	errMsg  string
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)
var _ screen.StatusProvider = (*QuestionnaireScreen)(nil)

// New starts a new diagnostic over bank. repo may be nil.
func New(bank *questionbank.Bank, repo store.EventRepo, logger *zap.Logger) *QuestionnaireScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &QuestionnaireScreen{
		sess:   session.New(bank, ""),
		repo:   repo,
		logger: logger,
		keys:   components.DefaultKeyMap(),
	}
	s.sess.OnAnswer(func(ev session.AnswerEvent) {
		s.pending = append(s.pending, ev)
	})
	s.syncChoices()
	return s
}

// Session exposes the underlying state machine.
func (s *QuestionnaireScreen) Session() *session.Session {
	return s.sess
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	s.logger.Info("diagnostic started",
		zap.String("session_id", s.sess.ID()),
		zap.String("bank", s.sess.Bank().Name()))
	return nil
}

func (s *QuestionnaireScreen) Title() string {
	return "Diagnóstico"
}

func (s *QuestionnaireScreen) Status() string {
	answered, total := s.sess.Progress()
	return fmt.Sprintf("%d/%d respondidas", answered, total)
}

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Responder"},
	}
	if s.sess.Index() > 0 {
		hints = append(hints, layout.KeyHint{Key: s.keys.Previous.Help().Key, Description: "Anterior"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Abandonar"})
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMadeMsg:
		return s.answer(msg.Index)

	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Previous) {
			if s.sess.Previous() {
				s.errMsg = ""
				s.syncChoices()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// answer submits the option at idx for the current question.
func (s *QuestionnaireScreen) answer(idx int) (screen.Screen, tea.Cmd) {
	q, ok := s.sess.Current()
	if !ok || idx < 0 || idx >= len(q.Options) {
		return s, nil
	}

	if err := s.sess.Answer(q.ID, q.Options[idx].ID); err != nil {
		s.logger.Error("answer rejected", zap.String("session_id", s.sess.ID()), zap.Error(err))
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""

	s.flushEvents()

	if res, done := s.sess.Result(); done {
		s.logger.Info("diagnostic completed",
			zap.String("session_id", s.sess.ID()),
			zap.Int("overall_score", res.OverallScore),
			zap.Int("gaps", len(res.Gaps)),
			zap.Bool("needs_consultation", res.NeedsConsultation))
		s.persistResult(res)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: result.New(res)}
		}
	}

	s.syncChoices()
	return s, nil
}

// flushEvents stores the answer events collected by the observer. Writes
// happen inside Update so their sequence numbers follow answer order.
// Failures are logged and the questionnaire carries on.
func (s *QuestionnaireScreen) flushEvents() {
	events := s.pending
	s.pending = nil
	if s.repo == nil {
		return
	}

	ctx := context.Background()
	for _, ev := range events {
		err := s.repo.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:     ev.SessionID,
			QuestionID:    ev.QuestionID,
			OptionID:      ev.OptionID,
			QuestionIndex: ev.QuestionIndex,
			Weight:        ev.Weight,
			Replaced:      ev.Replaced,
		})
		if err != nil {
			s.logger.Warn("persist answer", zap.String("session_id", ev.SessionID), zap.Error(err))
		}
	}
}

// persistResult stores the completed result after its answer events.
func (s *QuestionnaireScreen) persistResult(res diagnosis.Result) {
	if s.repo == nil {
		return
	}
	err := s.repo.AppendResult(context.Background(), store.ResultData{
		SessionID:    s.sess.ID(),
		BankName:     s.sess.Bank().Name(),
		Result:       res,
		Answers:      s.sess.Answers().Pairs(),
		DurationSecs: int(s.sess.CompletedAt().Sub(s.sess.StartedAt()).Seconds()),
	})
	if err != nil {
		s.logger.Warn("persist result", zap.String("session_id", s.sess.ID()), zap.Error(err))
	}
}

// syncChoices rebuilds the choice list for the current question,
// preselecting an earlier answer when the question is revisited.
func (s *QuestionnaireScreen) syncChoices() {
	q, ok := s.sess.Current()
	if !ok {
		return
	}
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Text
	}
	answered := -1
	if id, ok := s.sess.Selected(); ok {
		answered = q.OptionIndex(id)
	}
	s.choices = components.NewChoiceList(q.Text, labels, answered)
}

func (s *QuestionnaireScreen) View(width, height int) string {
	if _, ok := s.sess.Current(); !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Calculando resultado...")
	}

	cw := min(max(width-8, 20), 90)
	answered, total := s.sess.Progress()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Pergunta %d de %d", s.sess.Index()+1, total))))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, components.StepProgress(answered, total, cw).View()))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, layout.Divider(width, cw)))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, s.choices.View(cw)))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}
	return b.String()
}
