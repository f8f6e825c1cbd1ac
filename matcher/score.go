package matcher

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Scorer rates how alike two strings are on a 0..1 scale, 1 being
// identical. Swapping the scorer changes the matching strategy without
// touching the orchestration in Match.
type Scorer interface {
	Score(query, candidate string) float64
}

// LevenshteinScorer scores by edit distance relative to the longer
// string, case-insensitively.
type LevenshteinScorer struct{}

func (LevenshteinScorer) Score(query, candidate string) float64 {
	query = strings.ToLower(query)
	candidate = strings.ToLower(candidate)
	if query == "" || candidate == "" {
		return 0
	}

	longest := len([]rune(query))
	if l := len([]rune(candidate)); l > longest {
		longest = l
	}

	d := fuzzy.LevenshteinDistance(query, candidate)
	return 1 - float64(d)/float64(longest)
}
