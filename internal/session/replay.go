package session

import (
	"fmt"
	"strings"

	"github.com/abhisek/gapcheck/internal/diagnosis"
	"github.com/abhisek/gapcheck/internal/questionbank"
)

// Replay drives a new session through a prerecorded answer map, in bank
// order. Every question must be answered unless partial is set; with
// partial, replay stops at the first unanswered question and answers past
// it are rejected, since the session cannot skip ahead.
func Replay(bank *questionbank.Bank, id string, answers *diagnosis.AnswerMap, partial bool) (*Session, error) {
	var unknown []string
	answers.Each(func(questionID, _ string) {
		if bank.Index(questionID) < 0 {
			unknown = append(unknown, questionID)
		}
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, strings.Join(unknown, ", "))
	}

	if !partial {
		var missing []string
		for _, q := range bank.Questions() {
			if _, ok := answers.Get(q.ID); !ok {
				missing = append(missing, q.ID)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
		}
	}

	s := New(bank, id)
	for i := 0; i < bank.Len(); i++ {
		q := bank.At(i)
		optionID, ok := answers.Get(q.ID)
		if !ok {
			for j := i + 1; j < bank.Len(); j++ {
				if _, later := answers.Get(bank.At(j).ID); later {
					return nil, fmt.Errorf("%w: %q is answered but %q is not",
						ErrIncomplete, bank.At(j).ID, q.ID)
				}
			}
			break
		}
		if err := s.Answer(q.ID, optionID); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Score returns the result of a completed session, or scores the answers
// collected so far when the session is still asking.
func (s *Session) Score() diagnosis.Result {
	if s.result != nil {
		return s.result.Clone()
	}
	return *diagnosis.Compute(s.bank, s.answers)
}
