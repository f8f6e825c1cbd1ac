package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// teamSeparator is the literal opponent separator used in the schedule
// tables, as in "Falcons vs. Hawks".
const teamSeparator = " vs. "

var (
	timePattern = regexp.MustCompile(`(?i)\d{1,2}:\d{2} [AP]M`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// rawGameRow holds one physical table row's cells as they literally
// appear. Blank fields are legal: the source table merges cells
// vertically instead of repeating values, and the cascade fills them in.
type rawGameRow struct {
	Time     string
	Location string
	Detail   string
	Teams    []string
}

// dayGroup is one game table: the header date token (or the "date to be
// determined" placeholder) and the raw rows that share it.
type dayGroup struct {
	Date string
	Rows []rawGameRow
}

func extractDayGroups(tables *goquery.Selection) []dayGroup {
	var groups []dayGroup
	tables.Each(func(_ int, table *goquery.Selection) {
		g := dayGroup{
			Date: cleanText(table.Find("thead tr th b").First().Text()),
		}
		table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
			g.Rows = append(g.Rows, extractRows(tr)...)
		})
		groups = append(groups, g)
	})
	return groups
}

// extractRows reads one physical row. It normally yields a single raw
// row, but a teams cell spanning two concurrent games yields two rows
// sharing the same time, location and detail.
func extractRows(tr *goquery.Selection) []rawGameRow {
	cells := tr.Find("td")
	if cells.Length() == 0 {
		return nil
	}

	var row rawGameRow

	if span := tr.Find("td[rowspan]").First(); span.Length() > 0 {
		// A cell spanning the whole group carries the shared location
		// (in bold) and time for every game below it.
		row.Location = cleanText(span.Find("b").First().Text())
		row.Time = normalizeTime(timePattern.FindString(span.Text()))
	} else {
		if timeCell := tr.Find(`td[align="center"]`).First(); timeCell.Length() > 0 {
			row.Time = normalizeTime(timePattern.FindString(timeCell.Text()))
		}
		loc := cleanText(tr.Find("td:not([colspan]):first-child").First().Text())
		// A bare separator word (or the opponents text itself, on rows
		// whose location cell is merged away) is not a location.
		if strings.Contains(loc, "vs.") || timePattern.MatchString(loc) {
			loc = ""
		}
		row.Location = loc
	}

	if detail := tr.Find("td[colspan]").First(); detail.Length() > 0 {
		row.Detail = cleanText(detail.Text())
	}

	pairs := splitOpponents(cells.Last().Text())
	if len(pairs) == 0 {
		// Separator row: no opponent pairing, only cross-cutting metadata.
		return []rawGameRow{row}
	}

	rows := make([]rawGameRow, 0, len(pairs))
	for _, p := range pairs {
		r := row
		r.Teams = p
		rows = append(rows, r)
	}
	return rows
}

// splitOpponents parses an opponents cell. Two fragments are one game;
// four fragments are two concurrent games sharing the cell; any other
// count above one is a single multi-team game (some divisions list three
// teams per match).
func splitOpponents(text string) [][]string {
	text = cleanText(text)
	if text == "" {
		return nil
	}

	var parts []string
	for _, p := range strings.Split(text, teamSeparator) {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}

	switch {
	case len(parts) < 2:
		return nil
	case len(parts) == 4:
		return [][]string{{parts[0], parts[1]}, {parts[2], parts[3]}}
	default:
		return [][]string{parts}
	}
}

func normalizeTime(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// cleanText collapses runs of whitespace to single spaces and trims.
func cleanText(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
