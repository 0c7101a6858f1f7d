package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"

	"github.com/abhisek/gapcheck/internal/diagnosis"
)

const (
	answerEventsTable      = "answer_events"
	diagnosticResultsTable = "diagnostic_results"
)

var answerColumns = []string{
	"id", "sequence", "timestamp", "session_id", "question_id",
	"option_id", "question_index", "weight", "replaced",
}

var resultColumns = []string{
	"id", "sequence", "timestamp", "session_id", "bank_name", "overall_score",
	"needs_consultation", "consultation_reason", "gaps", "answers", "duration_secs",
}

// eventRepo implements EventRepo with ent's SQL builder over database/sql.
type eventRepo struct {
	db     *sql.DB
	seq    *sequenceCounter
	logger *zap.Logger
}

func sqlite() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	if data.SessionID == "" || data.QuestionID == "" || data.OptionID == "" {
		return errors.New("save answer event: session, question and option IDs are required")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := sqlite().Insert(answerEventsTable).
		Columns(answerColumns[1:]...).
		Values(
			seqNum,
			time.Now().UTC(),
			data.SessionID,
			data.QuestionID,
			data.OptionID,
			data.QuestionIndex,
			data.Weight,
			data.Replaced,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}

	r.logger.Debug("answer event saved",
		zap.String("session_id", data.SessionID),
		zap.String("question_id", data.QuestionID),
		zap.Int64("sequence", seqNum))
	return nil
}

func (r *eventRepo) AppendResult(ctx context.Context, data ResultData) error {
	if data.SessionID == "" {
		return errors.New("save diagnostic result: session ID is required")
	}

	gaps := data.Result.Gaps
	if gaps == nil {
		gaps = []diagnosis.Gap{}
	}
	gapsJSON, err := json.Marshal(gaps)
	if err != nil {
		return fmt.Errorf("marshal gaps: %w", err)
	}
	answers := data.Answers
	if answers == nil {
		answers = []diagnosis.Answer{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := sqlite().Insert(diagnosticResultsTable).
		Columns(resultColumns[1:]...).
		Values(
			seqNum,
			time.Now().UTC(),
			data.SessionID,
			data.BankName,
			data.Result.OverallScore,
			data.Result.NeedsConsultation,
			data.Result.ConsultationReason,
			string(gapsJSON),
			string(answersJSON),
			data.DurationSecs,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save diagnostic result: %w", err)
	}

	r.logger.Info("diagnostic result saved",
		zap.String("session_id", data.SessionID),
		zap.Int("overall_score", data.Result.OverallScore),
		zap.Bool("needs_consultation", data.Result.NeedsConsultation),
		zap.Int64("sequence", seqNum))
	return nil
}

func (r *eventRepo) QueryAnswers(ctx context.Context, sessionID string) ([]AnswerEventRecord, error) {
	query, args := sqlite().Select(answerColumns...).
		From(entsql.Table(answerEventsTable)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy(entsql.Asc("sequence")).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEventRecord
	for rows.Next() {
		var rec AnswerEventRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Sequence,
			timeScanner{&rec.Timestamp},
			&rec.SessionID,
			&rec.QuestionID,
			&rec.OptionID,
			&rec.QuestionIndex,
			&rec.Weight,
			&rec.Replaced,
		); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) QueryResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error) {
	sel := sqlite().Select(resultColumns...).
		From(entsql.Table(diagnosticResultsTable)).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)
	return r.queryResults(ctx, sel)
}

func (r *eventRepo) LatestResult(ctx context.Context) (*ResultRecord, error) {
	recs, err := r.QueryResults(ctx, QueryOpts{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func (r *eventRepo) ResultBySession(ctx context.Context, sessionID string) (*ResultRecord, error) {
	sel := sqlite().Select(resultColumns...).
		From(entsql.Table(diagnosticResultsTable)).
		Where(entsql.EQ("session_id", sessionID)).
		Limit(1)
	recs, err := r.queryResults(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func (r *eventRepo) queryResults(ctx context.Context, sel *entsql.Selector) ([]ResultRecord, error) {
	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query diagnostic results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var (
			rec         ResultRecord
			gapsJSON    string
			answersJSON string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Sequence,
			timeScanner{&rec.Timestamp},
			&rec.SessionID,
			&rec.BankName,
			&rec.Result.OverallScore,
			&rec.Result.NeedsConsultation,
			&rec.Result.ConsultationReason,
			&gapsJSON,
			&answersJSON,
			&rec.DurationSecs,
		); err != nil {
			return nil, fmt.Errorf("scan diagnostic result: %w", err)
		}
		if err := json.Unmarshal([]byte(gapsJSON), &rec.Result.Gaps); err != nil {
			return nil, fmt.Errorf("unmarshal gaps for session %s: %w", rec.SessionID, err)
		}
		if err := json.Unmarshal([]byte(answersJSON), &rec.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers for session %s: %w", rec.SessionID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query diagnostic results: %w", err)
	}
	return out, nil
}

// applyQueryOpts adds the filters and limit of opts to sel.
func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
