// Package schedule derives one team's schedule from a scraped season.
package schedule

import (
	"crypto/md5"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aweist/leaguecal/matcher"
	"github.com/aweist/leaguecal/models"
	"github.com/aweist/leaguecal/scraper"
)

// datetimeLayout combines a game's 12-hour time with its day header.
const datetimeLayout = "3:04 PM, " + scraper.DateLayout

type Builder struct {
	matcher     *matcher.Matcher
	loc         *time.Location
	defaultTime string
}

func NewBuilder(m *matcher.Matcher, loc *time.Location, defaultTime string) *Builder {
	if m == nil {
		m = matcher.NewMatcher(nil)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Builder{
		matcher:     m,
		loc:         loc,
		defaultTime: defaultTime,
	}
}

// Build filters the season down to team's games and folds them into one
// entry per calendar day. A game with no time is an inferred future
// round, relevant to every team, and is included unconditionally at the
// default game time. The viewed team never appears in an entry's
// opponent list. The season itself is never modified.
func (b *Builder) Build(season *models.Season, team string) []models.ScheduleEntry {
	var entries []models.ScheduleEntry

	for _, game := range season.Games {
		if game.Time != "" && !containsTeam(game.Teams, team) {
			continue
		}

		gameTime := game.Time
		if gameTime == "" {
			gameTime = b.defaultTime
		}
		start, err := time.ParseInLocation(datetimeLayout, gameTime+", "+game.Date, b.loc)
		if err != nil {
			// One undateable row must not sink the season.
			log.Printf("Skipping game on %q: %v", game.Date, err)
			continue
		}

		opponents := withoutTeam(game.Teams, team)

		if i := findSameDay(entries, start); i >= 0 {
			// Second game of the evening: fold the opponents into the
			// existing entry instead of duplicating the day.
			entries[i].Teams = append(entries[i].Teams, opponents...)
			continue
		}

		entry := models.ScheduleEntry{
			Start:    start,
			Teams:    opponents,
			Location: game.Location,
			Detail:   game.Detail,
		}
		if game.Location != "" {
			entry.Facility = b.matcher.Match(game.Location, season.Facilities)
		}
		entries = append(entries, entry)
	}

	for i := range entries {
		entries[i].ID = entryID(team, entries[i])
	}
	return entries
}

func findSameDay(entries []models.ScheduleEntry, start time.Time) int {
	for i, e := range entries {
		if sameDay(e.Start, start) {
			return i
		}
	}
	return -1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func containsTeam(teams []string, team string) bool {
	for _, t := range teams {
		if t == team {
			return true
		}
	}
	return false
}

// withoutTeam copies teams minus the viewed team. Source cells list all
// participants, the viewed team included, so "opponents" means every
// listed name that isn't the queried one.
func withoutTeam(teams []string, team string) []string {
	opponents := make([]string, 0, len(teams))
	for _, t := range teams {
		if t != team {
			opponents = append(opponents, t)
		}
	}
	return opponents
}

func entryID(team string, e models.ScheduleEntry) string {
	data := fmt.Sprintf("%s-%s-%s", team, e.Start.Format("2006-01-02"), strings.Join(e.Teams, "|"))
	hash := md5.Sum([]byte(data))
	return fmt.Sprintf("%x", hash)[:12]
}
