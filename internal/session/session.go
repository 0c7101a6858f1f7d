package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/gapcheck/internal/diagnosis"
	"github.com/abhisek/gapcheck/internal/questionbank"
)

// AnswerEvent describes an accepted answer. It is handed to the observer
// after the session state has been updated.
type AnswerEvent struct {
	SessionID     string
	QuestionID    string
	OptionID      string
	QuestionIndex int
	Weight        float64
	Replaced      bool // true when the question had been answered before
	Completed     bool // true when this answer completed the session
	Timestamp     time.Time
}

// Session walks a question bank one question at a time and collects the
// answer map. It is not safe for concurrent use; each diagnostic run owns
// its own Session.
type Session struct {
	id       string
	bank     *questionbank.Bank
	index    int
	phase    Phase
	answers  *diagnosis.AnswerMap
	result   *diagnosis.Result
	observer func(AnswerEvent)

	startedAt   time.Time
	completedAt time.Time
	now         func() time.Time
}

// New starts a session over the bank at the first question. An empty id
// is replaced with a random UUID.
func New(bank *questionbank.Bank, id string) *Session {
	if id == "" {
		id = uuid.New().String()
	}
	s := &Session{
		id:      id,
		bank:    bank,
		phase:   PhaseAsking,
		answers: diagnosis.NewAnswerMap(),
		now:     time.Now,
	}
	s.startedAt = s.now()
	return s
}

// OnAnswer registers a callback invoked after every accepted answer.
func (s *Session) OnAnswer(fn func(AnswerEvent)) {
	s.observer = fn
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Bank returns the question bank being walked.
func (s *Session) Bank() *questionbank.Bank { return s.bank }

// Phase returns the current navigation state.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the index of the current question. After completion it
// stays on the last question.
func (s *Session) Index() int { return s.index }

// Current returns the question awaiting an answer. The bool is false once
// the session is completed.
func (s *Session) Current() (questionbank.Question, bool) {
	if s.phase == PhaseCompleted {
		return questionbank.Question{}, false
	}
	return s.bank.At(s.index), true
}

// Selected returns the option previously chosen for the current question,
// if any, so a revisited question can be shown with its answer.
func (s *Session) Selected() (string, bool) {
	if s.phase == PhaseCompleted {
		return "", false
	}
	return s.answers.Get(s.bank.At(s.index).ID)
}

// Answers returns a copy of the answer map.
func (s *Session) Answers() *diagnosis.AnswerMap {
	return s.answers.Clone()
}

// Progress returns the number of answered questions and the bank size.
func (s *Session) Progress() (answered, total int) {
	return s.answers.Len(), s.bank.Len()
}

// Result returns a copy of the computed result. The bool is false until
// the session is completed.
func (s *Session) Result() (diagnosis.Result, bool) {
	if s.result == nil {
		return diagnosis.Result{}, false
	}
	return s.result.Clone(), true
}

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// CompletedAt returns when the last question was answered, or the zero time.
func (s *Session) CompletedAt() time.Time { return s.completedAt }

// Answer records optionID for questionID, which must be the current
// question. Answering the last question completes the session and
// computes the result. A rejected call returns *InvalidAnswerError and
// leaves the session untouched.
func (s *Session) Answer(questionID, optionID string) error {
	if s.phase == PhaseCompleted {
		return &InvalidAnswerError{QuestionID: questionID, OptionID: optionID, Err: ErrSessionCompleted}
	}

	q := s.bank.At(s.index)
	if q.ID != questionID {
		return &InvalidAnswerError{QuestionID: questionID, OptionID: optionID, Err: ErrOutOfSequence}
	}
	opt, ok := q.Option(optionID)
	if !ok {
		return &InvalidAnswerError{QuestionID: questionID, OptionID: optionID, Err: ErrUnknownOption}
	}

	_, replaced := s.answers.Get(questionID)
	s.answers.Set(questionID, optionID)

	ev := AnswerEvent{
		SessionID:     s.id,
		QuestionID:    questionID,
		OptionID:      optionID,
		QuestionIndex: s.index,
		Weight:        opt.Weight,
		Replaced:      replaced,
		Timestamp:     s.now(),
	}

	if s.index == s.bank.Len()-1 {
		s.phase = PhaseCompleted
		s.result = diagnosis.Compute(s.bank, s.answers)
		s.completedAt = ev.Timestamp
		ev.Completed = true
	} else {
		s.index++
	}

	if s.observer != nil {
		s.observer(ev)
	}
	return nil
}

// Previous moves back one question. It is a no-op on the first question
// and after completion. Returns true if the session moved.
func (s *Session) Previous() bool {
	if s.phase == PhaseCompleted || s.index == 0 {
		return false
	}
	s.index--
	return true
}
