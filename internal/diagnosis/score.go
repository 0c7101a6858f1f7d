package diagnosis

import (
	"math"
	"sort"

	"github.com/abhisek/gapcheck/internal/questionbank"
)

// Classification thresholds. Both comparisons are strict.
const (
	highImpactThreshold   = 0.7
	mediumImpactThreshold = 0.4
)

// Overall score penalty: each gap costs a tenth of its probability, capped.
const (
	gapPenaltyFactor = 0.1
	maxPenalty       = 0.5
)

// ClassifyImpact maps an impact score to its severity class.
func ClassifyImpact(impactScore float64) Impact {
	switch {
	case impactScore > highImpactThreshold:
		return ImpactHigh
	case impactScore > mediumImpactThreshold:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// ScoreGap converts an accumulator into a gap. The second return value is
// false when the accumulator holds no answers.
func ScoreGap(acc *Accumulator) (Gap, bool) {
	if acc == nil || acc.Count == 0 {
		return Gap{}, false
	}

	n := float64(acc.Count)
	probability := clamp01(1 - acc.WeightSum/n)
	// Equal to probability today. Kept separate so impact can be weighted
	// independently without touching the probability formula.
	normalizedImpact := clamp01(acc.ImpactSum / n)
	impactScore := (probability + normalizedImpact) / 2

	info := Describe(acc.Type)
	return Gap{
		Type:            acc.Type,
		Probability:     probability,
		ImpactScore:     impactScore,
		Impact:          ClassifyImpact(impactScore),
		Description:     info.Description,
		Recommendations: info.Recommendations,
	}, true
}

// Compute scores an answer map against a bank. It is a pure function of its
// inputs: the result is rebuilt from scratch on every call.
func Compute(bank *questionbank.Bank, answers *AnswerMap) *Result {
	var totalWeight float64
	var questionCount int
	answers.Each(func(questionID, optionID string) {
		opt, ok := bank.Option(questionID, optionID)
		if !ok {
			return
		}
		totalWeight += opt.Weight
		questionCount++
	})

	if questionCount == 0 {
		return &Result{
			Gaps:               []Gap{},
			OverallScore:       0,
			NeedsConsultation:  true,
			ConsultationReason: ReasonNoAnswers,
		}
	}

	accs := Aggregate(bank, answers)
	gaps := make([]Gap, 0, len(accs))
	for _, acc := range accs {
		if g, ok := ScoreGap(acc); ok {
			gaps = append(gaps, g)
		}
	}
	SortGaps(gaps)

	res := &Result{
		Gaps:         gaps,
		OverallScore: OverallScore(totalWeight, questionCount, gaps),
	}
	res.ConsultationReason = RunConsultationRules(DefaultConsultationRules(), res)
	res.NeedsConsultation = res.ConsultationReason != ""
	return res
}

// OverallScore blends the mean answer weight with a penalty for the
// detected gaps. Returns 0 when no questions were answered.
func OverallScore(totalWeight float64, questionCount int, gaps []Gap) int {
	if questionCount <= 0 {
		return 0
	}

	base := totalWeight / float64(questionCount) * 100

	var penalty float64
	for _, g := range gaps {
		penalty += g.Probability * gapPenaltyFactor
	}
	penalty = math.Min(penalty, maxPenalty)

	score := int(math.Round(base * (1 - penalty)))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// SortGaps orders gaps by severity, then probability, both descending.
// Remaining ties are broken by type so the order is deterministic.
func SortGaps(gaps []Gap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		si, sj := gaps[i].Impact.Severity(), gaps[j].Impact.Severity()
		if si != sj {
			return si > sj
		}
		if gaps[i].Probability != gaps[j].Probability {
			return gaps[i].Probability > gaps[j].Probability
		}
		return gaps[i].Type < gaps[j].Type
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
