// Package calendar renders a team schedule as an iCalendar document.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/aweist/leaguecal/models"
)

// eventDuration is the block reserved per game; the schedule only
// publishes start times.
const eventDuration = time.Hour

// Generate builds an ICS document with one event per schedule entry.
// name becomes both the calendar name and each event's summary; url
// points back at the division's schedule page.
func Generate(name string, entries []models.ScheduleEntry, url string) string {
	var ics strings.Builder
	dtStamp := time.Now().UTC().Format("20060102T150405Z")

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//leaguecal//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(name)))

	for _, entry := range entries {
		dtStart := entry.Start.UTC().Format("20060102T150405Z")
		dtEnd := entry.Start.Add(eventDuration).UTC().Format("20060102T150405Z")

		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s@leaguecal\r\n", entry.ID))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", dtStamp))
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", dtStart))
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", dtEnd))
		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(name)))

		description := strings.TrimSpace(fmt.Sprintf("%s vs. %s", entry.Detail, strings.Join(entry.Teams, ", ")))
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

		if location := eventLocation(entry); location != "" {
			ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(location)))
		}
		if url != "" {
			ics.WriteString(fmt.Sprintf("URL:%s\r\n", url))
		}

		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// eventLocation prefers the matched facility's registered name and
// address over the raw location text.
func eventLocation(entry models.ScheduleEntry) string {
	if entry.Facility != nil {
		if entry.Facility.Address != "" {
			return fmt.Sprintf("%s, %s", entry.Facility.Name, entry.Facility.Address)
		}
		return entry.Facility.Name
	}
	return entry.Location
}

// escapeICS escapes special characters for ICS format
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	return s
}
