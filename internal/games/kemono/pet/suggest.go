package pet

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to name, or "" when nothing is
// close enough to be a plausible typo. Comparison ignores case.
func Suggest(name string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return ""
	}

	best := ""
	bestDist := -1
	for _, cand := range candidates {
		c := strings.ToLower(cand)
		if c == needle {
			return cand
		}
		dist := levenshtein.ComputeDistance(needle, c)
		if dist > distanceLimit(len(c)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && cand < best) {
			best = cand
			bestDist = dist
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
