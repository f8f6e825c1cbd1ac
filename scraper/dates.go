package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/aweist/leaguecal/models"
)

// DateLayout is the date format used by the schedule page's day headers.
const DateLayout = "Monday, January 2, 2006"

// placeholderToken marks a future round whose date hasn't been published
// yet ("Date to be determined").
const placeholderToken = "to be determined"

func isPlaceholderDate(s string) bool {
	return strings.Contains(strings.ToLower(s), placeholderToken)
}

// inferDates fills concrete dates into placeholder day groups by
// extrapolating one week per group past the last concretely dated group.
// Games in an inferred group keep only their opponents and the date:
// whatever time, location or detail the cascade carried in belongs to an
// earlier round, not to a game that hasn't been scheduled yet.
//
// A placeholder appearing before any concrete date leaves nothing to
// extrapolate from and fails the whole extraction.
func inferDates(groups []dayGroup, resolved [][]models.Game) error {
	finalWeek := -1
	var finalDate time.Time

	for i, g := range groups {
		if !isPlaceholderDate(g.Date) {
			d, err := time.Parse(DateLayout, g.Date)
			if err != nil {
				// Concrete-looking but unparseable headers pass through
				// untouched; the schedule builder skips rows it cannot
				// date rather than aborting the season.
				continue
			}
			finalWeek = i
			finalDate = d
			continue
		}

		if finalWeek < 0 {
			return fmt.Errorf("placeholder date %q in group %d has no earlier concrete date to extrapolate from", g.Date, i)
		}

		date := finalDate.AddDate(0, 0, 7*(i-finalWeek)).Format(DateLayout)
		for j := range resolved[i] {
			resolved[i][j].Date = date
			resolved[i][j].Time = ""
			resolved[i][j].Location = ""
			resolved[i][j].Detail = ""
		}
	}

	return nil
}
