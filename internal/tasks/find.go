package tasks

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxFindDistance is the largest normalised edit distance still treated as
// a match.
const maxFindDistance = 0.5

// Closest returns the index in list of the task whose name best matches
// query. A case-insensitive substring match wins; the earliest one is
// taken. Otherwise the task with the smallest normalised Levenshtein
// distance below maxFindDistance is chosen.
func Closest(list []Task, query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1, false
	}
	for i, t := range list {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return i, true
		}
	}
	best, bestScore := -1, maxFindDistance
	for i, t := range list {
		if score := distance(strings.ToLower(strings.TrimSpace(t.Name)), q); score < bestScore {
			best, bestScore = i, score
		}
	}
	return best, best >= 0
}

func distance(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
