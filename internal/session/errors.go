package session

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfSequence is returned when an answer names a question other
	// than the current one.
	ErrOutOfSequence = errors.New("question is not the current question")

	// ErrUnknownOption is returned when the option does not belong to the
	// current question.
	ErrUnknownOption = errors.New("unknown option")

	// ErrSessionCompleted is returned for answers after the last question.
	ErrSessionCompleted = errors.New("session already completed")
)

// InvalidAnswerError reports a rejected Answer call. The session is left
// unchanged when it is returned.
type InvalidAnswerError struct {
	QuestionID string
	OptionID   string
	Err        error
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer %q for question %q: %v", e.OptionID, e.QuestionID, e.Err)
}

func (e *InvalidAnswerError) Unwrap() error { return e.Err }

var (
	// ErrIncomplete is returned by Replay when answers do not cover the bank.
	ErrIncomplete = errors.New("answers do not cover every question")

	// ErrUnknownQuestion is returned by Replay for answers naming a
	// question the bank does not have.
	ErrUnknownQuestion = errors.New("unknown question")
)
