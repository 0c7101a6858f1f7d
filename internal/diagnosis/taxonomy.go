package diagnosis

import (
	"slices"

	"github.com/abhisek/gapcheck/internal/questionbank"
)

// GapInfo is the display text attached to a gap type.
type GapInfo struct {
	Type            questionbank.GapType
	Label           string
	Description     string
	Recommendations []string
}

// registry is the package-level gap taxonomy, keyed by type.
var registry map[questionbank.GapType]*GapInfo

func init() {
	registry = make(map[questionbank.GapType]*GapInfo, len(seedGapInfo))
	for i := range seedGapInfo {
		info := &seedGapInfo[i]
		registry[info.Type] = info
	}
}

// Describe returns the display text for a gap type. Unknown types get the
// generic description; this never fails.
func Describe(t questionbank.GapType) GapInfo {
	info, ok := registry[t]
	if !ok {
		return GapInfo{
			Type:            t,
			Label:           string(t),
			Description:     genericGapInfo.Description,
			Recommendations: slices.Clone(genericGapInfo.Recommendations),
		}
	}
	out := *info
	out.Recommendations = slices.Clone(info.Recommendations)
	return out
}

// IsKnownGap reports whether the taxonomy has specific text for t.
func IsKnownGap(t questionbank.GapType) bool {
	_, ok := registry[t]
	return ok
}
