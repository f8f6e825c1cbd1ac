// Package matcher maps freeform location text from the schedule tables
// to entries in the season's facility registry.
package matcher

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/aweist/leaguecal/models"
)

var (
	// Trailing qualifiers the schedule appends to facility names but the
	// registry doesn't carry ("Highland Park School", "Renfrew North").
	trailingQualifier = regexp.MustCompile(`(?i)\s+(north|south|east|west|school|calgary)$`)
	// A trailing "- Court 2" style clause.
	trailingClause = regexp.MustCompile(`\s*-[^-]*$`)
	nonWord        = regexp.MustCompile(`\W+`)
)

// Matcher finds the registry facility best matching a location string.
// It is a pure function of its inputs: no state is kept between calls.
type Matcher struct {
	scorer   Scorer
	minScore float64
}

func NewMatcher(scorer Scorer) *Matcher {
	if scorer == nil {
		scorer = LevenshteinScorer{}
	}
	return &Matcher{
		scorer:   scorer,
		minScore: 0.5,
	}
}

// Match returns a copy of the best-matching facility, or nil when
// neither pass produces a plausible match.
//
// Two passes run: the simplified location text against each facility
// name, then the uppercase-letter acronyms of both (for facilities the
// league knows by initials, like "WCHS"). The full-text pass wins ties.
func (m *Matcher) Match(location string, facilities []models.Facility) *models.Facility {
	query := Simplify(location)
	if query == "" {
		return nil
	}

	type candidate struct {
		index int
		score float64
	}
	var candidates []candidate

	for i, f := range facilities {
		if s := m.scorer.Score(query, f.Name); s >= m.minScore {
			candidates = append(candidates, candidate{i, s})
		}
	}

	if qa := acronym(query); len(qa) >= 2 {
		for i, f := range facilities {
			fa := acronym(f.Name)
			if len(fa) < 2 {
				continue
			}
			if s := m.scorer.Score(qa, fa); s >= m.minScore {
				candidates = append(candidates, candidate{i, s})
			}
		}
	}

	best := -1
	bestScore := 0.0
	for _, c := range candidates {
		if c.score > bestScore {
			best = c.index
			bestScore = c.score
		}
	}
	if best < 0 {
		return nil
	}

	f := facilities[best]
	return &f
}

// Simplify strips the qualifiers locations carry but registry names
// don't, and collapses whatever punctuation remains to single spaces.
func Simplify(location string) string {
	s := strings.TrimSpace(location)
	s = trailingClause.ReplaceAllString(s, "")
	for {
		t := trailingQualifier.ReplaceAllString(s, "")
		if t == s {
			break
		}
		s = t
	}
	return strings.TrimSpace(nonWord.ReplaceAllString(s, " "))
}

// acronym keeps only the uppercase letters of s.
func acronym(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
