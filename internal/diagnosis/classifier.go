package diagnosis

// ReasonNoAnswers is reported when a result was computed from an empty
// answer map.
const ReasonNoAnswers = "no-answers"

const (
	consultationScoreThreshold = 70
	consultationHighGapCount   = 3
	criticalProbability        = 0.8
)

// ConsultationRule decides whether a result warrants a human follow-up.
type ConsultationRule interface {
	Name() string
	Triggered(r *Result) bool
}

// DefaultConsultationRules returns the rules in evaluation order. Any rule
// firing routes the user to a consultation; the order only decides which
// reason is reported.
func DefaultConsultationRules() []ConsultationRule {
	return []ConsultationRule{
		LowScoreRule{},
		HighImpactGapsRule{},
		CriticalGapRule{},
	}
}

// RunConsultationRules returns the name of the first rule that fires, or ""
// if none do.
func RunConsultationRules(rules []ConsultationRule, r *Result) string {
	for _, rule := range rules {
		if rule.Triggered(r) {
			return rule.Name()
		}
	}
	return ""
}

// LowScoreRule fires when the overall score is below 70.
type LowScoreRule struct{}

func (LowScoreRule) Name() string { return "low-score" }

func (LowScoreRule) Triggered(r *Result) bool {
	return r.OverallScore < consultationScoreThreshold
}

// HighImpactGapsRule fires when three or more gaps are classified Alto.
type HighImpactGapsRule struct{}

func (HighImpactGapsRule) Name() string { return "high-impact-gaps" }

func (HighImpactGapsRule) Triggered(r *Result) bool {
	return r.CountByImpact(ImpactHigh) >= consultationHighGapCount
}

// CriticalGapRule fires when any gap has probability above 0.8.
type CriticalGapRule struct{}

func (CriticalGapRule) Name() string { return "critical-gap" }

func (CriticalGapRule) Triggered(r *Result) bool {
	for _, g := range r.Gaps {
		if g.Probability > criticalProbability {
			return true
		}
	}
	return false
}
