// Package scraper recovers a normalized season schedule from the club's
// merged-cell HTML table layout.
package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aweist/leaguecal/models"
)

var dashTrim = regexp.MustCompile(`^[\s-]+|[\s-]+$`)

// ExtractSeason pulls the facility registry, team list and full game
// schedule out of one division's schedule page. The page's first table
// lists facilities, the second lists teams, and every following table is
// one day group of games. Any of those regions missing means the page
// layout has changed and extraction fails outright; no partial season is
// returned.
func ExtractSeason(doc *goquery.Document) (*models.Season, error) {
	sched := doc.Find(".sscSchedule").First()
	if sched.Length() == 0 {
		return nil, fmt.Errorf("extracting season: schedule region not found")
	}

	tables := sched.Find("table")
	if tables.Length() < 1 {
		return nil, fmt.Errorf("extracting season: facility table not found")
	}
	if tables.Length() < 2 {
		return nil, fmt.Errorf("extracting season: team table not found")
	}
	if tables.Length() < 3 {
		return nil, fmt.Errorf("extracting season: no game tables found")
	}

	facilities := extractFacilities(tables.Eq(0))
	teams := extractTeams(tables.Eq(1))

	groups := extractDayGroups(tables.Slice(2, tables.Length()))
	resolved := make([][]models.Game, len(groups))
	for i, g := range groups {
		resolved[i] = resolveGroup(g)
	}
	if err := inferDates(groups, resolved); err != nil {
		return nil, fmt.Errorf("extracting season: %w", err)
	}

	var games []models.Game
	for _, rg := range resolved {
		games = append(games, rg...)
	}

	return &models.Season{
		Facilities: facilities,
		Teams:      teams,
		Games:      games,
	}, nil
}

func extractFacilities(table *goquery.Selection) []models.Facility {
	var facilities []models.Facility
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() < 2 {
			return
		}
		f := models.Facility{
			Name:    cleanText(tds.Eq(0).Text()),
			Address: cleanText(tds.Eq(1).Text()),
		}
		if f.Name == "" {
			return
		}
		if href, ok := tds.Eq(2).Find("a[href]").First().Attr("href"); ok {
			f.Link = href
		}
		facilities = append(facilities, f)
	})
	return facilities
}

// extractTeams reads the two-column team roster. Each cell holds the
// captain's name in bold followed by "- <team name>".
func extractTeams(table *goquery.Selection) []models.Team {
	var teams []models.Team
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		for i := 1; i < tds.Length(); i += 2 {
			td := tds.Eq(i)
			b := td.Find("b").First()
			if b.Length() == 0 {
				continue
			}
			captain := dashTrim.ReplaceAllString(cleanText(b.Text()), "")
			name := dashTrim.ReplaceAllString(
				strings.Replace(cleanText(td.Text()), cleanText(b.Text()), "", 1), "")
			if name == "" {
				continue
			}
			teams = append(teams, models.Team{Name: name, Captain: captain})
		}
	})
	return teams
}
