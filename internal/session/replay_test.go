package session

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gapcheck/internal/diagnosis"
)

func answers(pairs ...string) *diagnosis.AnswerMap {
	m := diagnosis.NewAnswerMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name      string
		answers   *diagnosis.AnswerMap
		partial   bool
		wantErr   error
		wantPhase Phase
		wantCount int
	}{
		{
			name:      "complete",
			answers:   answers("q1", "A", "q2", "B", "q3", "A"),
			wantPhase: PhaseCompleted,
			wantCount: 3,
		},
		{
			name:      "file order does not matter",
			answers:   answers("q3", "A", "q1", "B", "q2", "A"),
			wantPhase: PhaseCompleted,
			wantCount: 3,
		},
		{
			name:    "missing without partial",
			answers: answers("q1", "A", "q2", "B"),
			wantErr: ErrIncomplete,
		},
		{
			name:      "prefix with partial",
			answers:   answers("q1", "A", "q2", "B"),
			partial:   true,
			wantPhase: PhaseAsking,
			wantCount: 2,
		},
		{
			name:      "empty with partial",
			answers:   answers(),
			partial:   true,
			wantPhase: PhaseAsking,
			wantCount: 0,
		},
		{
			name:    "gap with partial",
			answers: answers("q1", "A", "q3", "B"),
			partial: true,
			wantErr: ErrIncomplete,
		},
		{
			name:    "unknown question",
			answers: answers("q1", "A", "nope", "A"),
			partial: true,
			wantErr: ErrUnknownQuestion,
		},
		{
			name:    "unknown option",
			answers: answers("q1", "Z", "q2", "A", "q3", "A"),
			wantErr: ErrUnknownOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Replay(testBank(t), "replay", tt.answers, tt.partial)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "replay", s.ID())
			assert.Equal(t, tt.wantPhase, s.Phase())
			assert.Equal(t, tt.wantCount, s.Answers().Len())
		})
	}
}

func TestScore(t *testing.T) {
	b := testBank(t)

	s, err := Replay(b, "", answers("q1", "B", "q2", "A"), true)
	require.NoError(t, err)
	if _, done := s.Result(); done {
		t.Fatal("partial replay must not complete")
	}
	want := diagnosis.Compute(b, answers("q1", "B", "q2", "A"))
	if diff := cmp.Diff(*want, s.Score()); diff != "" {
		t.Errorf("partial score mismatch (-want +got):\n%s", diff)
	}

	s, err = Replay(b, "", answers("q1", "B", "q2", "A", "q3", "A"), false)
	require.NoError(t, err)
	res, done := s.Result()
	require.True(t, done)
	if diff := cmp.Diff(res, s.Score()); diff != "" {
		t.Errorf("completed score mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreNoAnswers(t *testing.T) {
	s := New(testBank(t), "")
	got := s.Score()
	assert.Equal(t, 0, got.OverallScore)
	assert.True(t, got.NeedsConsultation)
	assert.Equal(t, diagnosis.ReasonNoAnswers, got.ConsultationReason)
	assert.Empty(t, got.Gaps)
}
