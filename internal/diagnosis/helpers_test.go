package diagnosis

import (
	"testing"

	"github.com/abhisek/gapcheck/internal/questionbank"
)

func mustBank(t *testing.T, questions ...questionbank.Question) *questionbank.Bank {
	t.Helper()
	b, err := questionbank.New("test", questions)
	if err != nil {
		t.Fatalf("build bank: %v", err)
	}
	return b
}

// twoOptionBank is a single question with an ideal answer A and a worst
// answer B tagged "processo".
func twoOptionBank(t *testing.T) *questionbank.Bank {
	return mustBank(t, questionbank.Question{
		ID:   "q1",
		Text: "Q1",
		Options: []questionbank.Option{
			{ID: "A", Text: "A", Weight: 1},
			{ID: "B", Text: "B", Weight: 0, GapTypes: []questionbank.GapType{questionbank.GapProcess}},
		},
	})
}
