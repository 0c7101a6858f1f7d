package questionbank

import (
	"fmt"
	"math"
	"strings"
)

// validateQuestions performs all structural checks on the given question set.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	idSet := make(map[string]bool, len(questions))
	for qi, q := range questions {
		prefix := fmt.Sprintf("question %d", qi)
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("%s: empty ID", prefix))
		} else {
			prefix = fmt.Sprintf("question %q", q.ID)
			if idSet[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
			}
			idSet[q.ID] = true
		}

		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no options", prefix))
		}

		optSet := make(map[string]bool, len(q.Options))
		for oi, o := range q.Options {
			oprefix := fmt.Sprintf("%s option %d", prefix, oi)
			if o.ID == "" {
				errs = append(errs, fmt.Sprintf("%s: empty ID", oprefix))
			} else {
				oprefix = fmt.Sprintf("%s option %q", prefix, o.ID)
				if optSet[o.ID] {
					errs = append(errs, fmt.Sprintf("%s: duplicate option ID", oprefix))
				}
				optSet[o.ID] = true
			}

			if math.IsNaN(o.Weight) || o.Weight < 0 || o.Weight > 1 {
				errs = append(errs, fmt.Sprintf("%s: weight must be in [0, 1], got %g", oprefix, o.Weight))
			}

			tagSet := make(map[GapType]bool, len(o.GapTypes))
			for _, t := range o.GapTypes {
				if strings.TrimSpace(string(t)) == "" {
					errs = append(errs, fmt.Sprintf("%s: empty gap type", oprefix))
					continue
				}
				if tagSet[t] {
					errs = append(errs, fmt.Sprintf("%s: duplicate gap type %q", oprefix, t))
				}
				tagSet[t] = true
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
