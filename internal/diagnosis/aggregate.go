package diagnosis

import "github.com/abhisek/gapcheck/internal/questionbank"

// Aggregate folds the answer map into per-gap-type statistics. Every gap
// tag on a chosen option counts once for that answer. Options without tags
// and answers that do not resolve against the bank contribute nothing.
func Aggregate(bank *questionbank.Bank, answers *AnswerMap) map[questionbank.GapType]*Accumulator {
	accs := make(map[questionbank.GapType]*Accumulator)
	answers.Each(func(questionID, optionID string) {
		opt, ok := bank.Option(questionID, optionID)
		if !ok {
			return
		}
		for _, t := range opt.GapTypes {
			acc := accs[t]
			if acc == nil {
				acc = &Accumulator{Type: t}
				accs[t] = acc
			}
			acc.Count++
			acc.WeightSum += opt.Weight
			acc.ImpactSum += 1 - opt.Weight
		}
	})
	return accs
}
