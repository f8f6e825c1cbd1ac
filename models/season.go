package models

import (
	"time"
)

// League is one league entry from the club's navigation menu.
type League struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Division is one division schedule page within a league, grouped by play day.
type Division struct {
	Day  string `json:"day"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Facility is one venue from the schedule page's facility table.
type Facility struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Link    string `json:"link"`
}

type Team struct {
	Name    string `json:"name"`
	Captain string `json:"captain"`
}

// Game is one fully resolved game row. Fields left blank in the source
// table (merged cells) have already been filled in from the preceding
// row of the same day group; empty strings mean the value is genuinely
// unknown, such as the time of a not-yet-scheduled playoff round.
type Game struct {
	Date     string   `json:"date"`
	Time     string   `json:"time,omitempty"`
	Location string   `json:"location,omitempty"`
	Detail   string   `json:"detail,omitempty"`
	Teams    []string `json:"teams"`
}

// Season is one division's full schedule. Built once per scrape and
// treated as read-only afterwards.
type Season struct {
	Facilities []Facility `json:"facilities"`
	Teams      []Team     `json:"teams"`
	Games      []Game     `json:"games"`
}

// ScheduleEntry is one calendar day of a single team's schedule. Teams
// holds the opponents only; games against multiple opponents on the same
// evening share one entry.
type ScheduleEntry struct {
	ID       string    `json:"id"`
	Start    time.Time `json:"start"`
	Teams    []string  `json:"teams"`
	Location string    `json:"location,omitempty"`
	Facility *Facility `json:"facility,omitempty"`
	Detail   string    `json:"detail,omitempty"`
}

// CachedPage is one fetched HTML document kept in storage so repeated
// runs don't hammer the club's site.
type CachedPage struct {
	URL       string    `json:"url"`
	Body      []byte    `json:"body"`
	FetchedAt time.Time `json:"fetched_at"`
}

type NotifiedEntry struct {
	EntryID    string    `json:"entry_id"`
	NotifiedAt time.Time `json:"notified_at"`
	Team       string    `json:"team"`
	Start      time.Time `json:"start"`
	Opponents  []string  `json:"opponents"`
	Location   string    `json:"location"`
}

type EmailRecipient struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
	AddedAt  time.Time `json:"added_at"`
}
