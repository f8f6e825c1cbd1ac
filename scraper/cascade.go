package scraper

import (
	"github.com/aweist/leaguecal/models"
)

// resolveGroup replays the merged-cell layout of one day group: each row
// inherits any field it is missing from the last resolved game, chaining
// through consecutive merged cells. A detail note sticks for the rest of
// the group once seen, whether it appears on a game row or a separator.
// Separator rows never become games and never clear location or time.
func resolveGroup(g dayGroup) []models.Game {
	games := make([]models.Game, 0, len(g.Rows))
	var last rawGameRow
	detail := ""

	for _, row := range g.Rows {
		if detail == "" && row.Detail != "" {
			detail = row.Detail
		}

		if len(row.Teams) == 0 {
			continue
		}

		merged := row
		if merged.Location == "" {
			merged.Location = last.Location
		}
		if merged.Time == "" {
			merged.Time = last.Time
		}
		merged.Detail = detail
		last = merged

		games = append(games, models.Game{
			Date:     g.Date,
			Time:     merged.Time,
			Location: merged.Location,
			Detail:   merged.Detail,
			Teams:    merged.Teams,
		})
	}

	return games
}
