package scraper

import (
	"testing"

	"github.com/aweist/leaguecal/models"
)

func TestInferDates(t *testing.T) {
	groups := []dayGroup{
		{Date: "Monday, January 1, 2024"},
		{Date: "Monday, January 8, 2024"},
		{Date: "Monday, January 15, 2024"},
		{Date: "Date to be determined"},
		{Date: "Date to be determined"},
	}
	resolved := [][]models.Game{
		{{Date: groups[0].Date, Time: "7:00 PM", Teams: []string{"Falcons", "Hawks"}}},
		{{Date: groups[1].Date, Time: "7:00 PM", Teams: []string{"Falcons", "Owls"}}},
		{{Date: groups[2].Date, Time: "7:00 PM", Teams: []string{"Falcons", "Bears"}}},
		{{Date: groups[3].Date, Time: "7:00 PM", Location: "Renfrew North", Detail: "Playoffs", Teams: []string{"Falcons", "Eagles"}}},
		{{Date: groups[4].Date, Teams: []string{"1st place", "2nd place"}}},
	}

	if err := inferDates(groups, resolved); err != nil {
		t.Fatalf("inferDates returned error: %v", err)
	}

	if got := resolved[3][0].Date; got != "Monday, January 22, 2024" {
		t.Errorf("First placeholder date = %q, want 'Monday, January 22, 2024'", got)
	}
	if got := resolved[4][0].Date; got != "Monday, January 29, 2024" {
		t.Errorf("Second placeholder date = %q, want 'Monday, January 29, 2024'", got)
	}

	// An unscheduled round has a projected date but nothing else.
	g := resolved[3][0]
	if g.Time != "" || g.Location != "" || g.Detail != "" {
		t.Errorf("Inferred game kept stale fields: time %q location %q detail %q", g.Time, g.Location, g.Detail)
	}
	if len(g.Teams) != 2 || g.Teams[0] != "Falcons" {
		t.Errorf("Inferred game lost its teams: %v", g.Teams)
	}

	// Concrete groups are left alone.
	if resolved[2][0].Date != "Monday, January 15, 2024" || resolved[2][0].Time != "7:00 PM" {
		t.Errorf("Concrete group was modified: %+v", resolved[2][0])
	}
}

func TestInferDatesPlaceholderGap(t *testing.T) {
	// The offset counts groups, so a placeholder further from the last
	// concrete date lands further out even without placeholders between.
	groups := []dayGroup{
		{Date: "Wednesday, September 12, 2018"},
		{Date: "not a date"},
		{Date: "Date to be determined"},
	}
	resolved := [][]models.Game{
		{{Teams: []string{"Falcons", "Hawks"}}},
		{{Teams: []string{"Falcons", "Owls"}}},
		{{Teams: []string{"Falcons", "Bears"}}},
	}

	if err := inferDates(groups, resolved); err != nil {
		t.Fatalf("inferDates returned error: %v", err)
	}

	if got := resolved[2][0].Date; got != "Wednesday, September 26, 2018" {
		t.Errorf("Placeholder two groups out = %q, want 'Wednesday, September 26, 2018'", got)
	}

	// The unparseable header is neither a placeholder nor an anchor.
	if resolved[1][0].Date != "" {
		t.Errorf("Unparseable group should pass through untouched, got date %q", resolved[1][0].Date)
	}
}

func TestInferDatesPlaceholderFirst(t *testing.T) {
	groups := []dayGroup{
		{Date: "Date to be determined"},
		{Date: "Monday, January 8, 2024"},
	}
	resolved := [][]models.Game{
		{{Teams: []string{"Falcons", "Hawks"}}},
		{{Teams: []string{"Falcons", "Owls"}}},
	}

	if err := inferDates(groups, resolved); err == nil {
		t.Error("Expected error for a placeholder before any concrete date")
	}
}

func TestIsPlaceholderDate(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Date to be determined", true},
		{"Date To Be Determined", true},
		{"date and time to be determined", true},
		{"Monday, January 8, 2024", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isPlaceholderDate(tt.input); got != tt.expected {
			t.Errorf("isPlaceholderDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
