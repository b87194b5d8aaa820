package stringutil

import (
	"slices"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// scoredCandidate pairs a candidate string with its edit distance from the input.
type scoredCandidate struct {
	value    string
	distance int
}

// BestMatch returns the candidate closest to value by Levenshtein distance,
// for use in "Did you mean ...?" suggestions.
//
// Non-string candidates are skipped. When the original candidate list has
// exactly one entry, the best string candidate is returned unconditionally.
// Otherwise the best candidate is only returned when its distance is strictly
// less than its own rune length; a match that differs in nearly every
// character would be noise, not a suggestion. Ties keep candidate order.
func BestMatch(value string, candidates []any) (string, bool) {
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		s, ok := c.(string)
		if !ok {
			continue
		}
		scored = append(scored, scoredCandidate{
			value:    s,
			distance: levenshtein.ComputeDistance(value, s),
		})
	}
	if len(scored) == 0 {
		return "", false
	}

	slices.SortStableFunc(scored, func(a, b scoredCandidate) int {
		return a.distance - b.distance
	})
	best := scored[0]

	// The single-candidate rule counts the full candidate list, including
	// any non-string entries that were skipped above.
	if len(candidates) == 1 {
		return best.value, true
	}
	if best.distance < utf8.RuneCountInString(best.value) {
		return best.value, true
	}
	return "", false
}
