package store

import (
	"context"
	"time"

	"github.com/abhisek/gapcheck/internal/diagnosis"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnswerEventData captures one accepted answer.
type AnswerEventData struct {
	SessionID     string
	QuestionID    string
	OptionID      string
	QuestionIndex int
	Weight        float64
	Replaced      bool
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	AnswerEventData
	ID        int64
	Sequence  int64
	Timestamp time.Time
}

// ResultData captures a completed diagnostic.
type ResultData struct {
	SessionID    string
	BankName     string
	Result       diagnosis.Result
	Answers      []diagnosis.Answer
	DurationSecs int
}

// ResultRecord is a stored diagnostic result.
type ResultRecord struct {
	ResultData
	ID        int64
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to diagnostic events.
type EventRepo interface {
	// AppendAnswer records an accepted answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendResult records a completed diagnostic. A session can be
	// recorded once.
	AppendResult(ctx context.Context, data ResultData) error

	// QueryAnswers returns the answer events of a session in sequence order.
	QueryAnswers(ctx context.Context, sessionID string) ([]AnswerEventRecord, error)

	// QueryResults returns stored results, newest first.
	QueryResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error)

	// LatestResult returns the most recent result, or nil if none exist.
	LatestResult(ctx context.Context) (*ResultRecord, error)

	// ResultBySession returns the result of a session, or nil if not found.
	ResultBySession(ctx context.Context, sessionID string) (*ResultRecord, error)
}
