package diagnosis

import (
	"slices"

	"github.com/abhisek/gapcheck/internal/questionbank"
)

// Impact is the severity class of a gap.
type Impact string

const (
	ImpactHigh   Impact = "Alto"
	ImpactMedium Impact = "Médio"
	ImpactLow    Impact = "Baixo"
)

// Severity returns the sort rank of the impact: 3 for Alto, 2 for Médio,
// 1 for Baixo and 0 for anything else.
func (i Impact) Severity() int {
	switch i {
	case ImpactHigh:
		return 3
	case ImpactMedium:
		return 2
	case ImpactLow:
		return 1
	default:
		return 0
	}
}

// Accumulator holds the per-gap-type statistics folded from an answer map.
type Accumulator struct {
	Type      questionbank.GapType
	Count     int
	WeightSum float64 // sum of chosen option weights
	ImpactSum float64 // sum of (1 - weight)
}

// Gap is a scored deficiency category.
type Gap struct {
	Type            questionbank.GapType `json:"type"`
	Probability     float64              `json:"probability"`
	ImpactScore     float64              `json:"impact_score"`
	Impact          Impact               `json:"impact"`
	Description     string               `json:"description"`
	Recommendations []string             `json:"recommendations"`
}

// Result is the outcome of a completed diagnostic. It is produced once and
// handed to presenters by value; they must not mutate it.
type Result struct {
	Gaps              []Gap `json:"gaps"`
	OverallScore      int   `json:"overall_score"` // 0–100
	NeedsConsultation bool  `json:"needs_consultation"`

	// ConsultationReason names the first consultation rule that fired,
	// or is empty when NeedsConsultation is false.
	ConsultationReason string `json:"consultation_reason,omitempty"`
}

// Clone returns a copy of r that shares no slices with it.
func (r *Result) Clone() Result {
	out := *r
	out.Gaps = slices.Clone(r.Gaps)
	for i := range out.Gaps {
		out.Gaps[i].Recommendations = slices.Clone(r.Gaps[i].Recommendations)
	}
	return out
}

// CountByImpact returns how many gaps have the given impact.
func (r *Result) CountByImpact(i Impact) int {
	n := 0
	for _, g := range r.Gaps {
		if g.Impact == i {
			n++
		}
	}
	return n
}
