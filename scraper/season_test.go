package scraper

import (
	"strings"
	"testing"
)

const schedulePage = `<html><body>
<div class="sscSchedule">
<table>
  <tbody>
    <tr>
      <td>Highland Park</td>
      <td>3716 2 St NW</td>
      <td><a href="https://maps.example.com/highland-park">Map</a></td>
    </tr>
    <tr>
      <td>Renfrew North</td>
      <td>810 13 Ave NE</td>
      <td></td>
    </tr>
  </tbody>
</table>
<table>
  <tbody>
    <tr>
      <td>1</td>
      <td><b>Sam T</b> - Falcons</td>
      <td>2</td>
      <td><b>Jordan K</b> - Hawks</td>
    </tr>
    <tr>
      <td>3</td>
      <td><b>Alex P</b> - Owls</td>
      <td>4</td>
      <td><b>Casey R</b> - Bears</td>
    </tr>
  </tbody>
</table>
<table>
  <thead><tr><th><b>Wednesday, September 12, 2018</b></th></tr></thead>
  <tbody>
    <tr>
      <td rowspan="2"><b>Renfrew North</b> 7:00 PM</td>
      <td>Falcons vs. Hawks</td>
    </tr>
    <tr><td>Owls vs. Bears</td></tr>
  </tbody>
</table>
<table>
  <thead><tr><th><b>Date to be determined</b></th></tr></thead>
  <tbody>
    <tr>
      <td rowspan="2"><b>Highland Park</b> 6:30 PM</td>
      <td>Falcons vs. Owls</td>
    </tr>
    <tr><td>Hawks vs. Bears</td></tr>
  </tbody>
</table>
</div>
</body></html>`

func TestExtractSeason(t *testing.T) {
	doc := docFromHTML(t, schedulePage)

	season, err := ExtractSeason(doc)
	if err != nil {
		t.Fatalf("ExtractSeason returned error: %v", err)
	}

	if len(season.Facilities) != 2 {
		t.Fatalf("Expected 2 facilities, got %d", len(season.Facilities))
	}
	f := season.Facilities[0]
	if f.Name != "Highland Park" || f.Address != "3716 2 St NW" {
		t.Errorf("Unexpected facility: %+v", f)
	}
	if f.Link != "https://maps.example.com/highland-park" {
		t.Errorf("Facility link = %q", f.Link)
	}
	if season.Facilities[1].Link != "" {
		t.Errorf("Facility without a map should have no link, got %q", season.Facilities[1].Link)
	}

	if len(season.Teams) != 4 {
		t.Fatalf("Expected 4 teams, got %d", len(season.Teams))
	}
	wantTeams := []struct{ name, captain string }{
		{"Falcons", "Sam T"},
		{"Hawks", "Jordan K"},
		{"Owls", "Alex P"},
		{"Bears", "Casey R"},
	}
	for i, want := range wantTeams {
		if season.Teams[i].Name != want.name || season.Teams[i].Captain != want.captain {
			t.Errorf("Team %d = %+v, want %s/%s", i, season.Teams[i], want.name, want.captain)
		}
	}

	if len(season.Games) != 4 {
		t.Fatalf("Expected 4 games, got %d", len(season.Games))
	}

	g0 := season.Games[0]
	if g0.Date != "Wednesday, September 12, 2018" || g0.Time != "7:00 PM" || g0.Location != "Renfrew North" {
		t.Errorf("Unexpected first game: %+v", g0)
	}

	// Second row of the day inherits the merged location and time cell.
	g1 := season.Games[1]
	if g1.Location != "Renfrew North" || g1.Time != "7:00 PM" {
		t.Errorf("Second game did not inherit merged cells: %+v", g1)
	}
	if len(g1.Teams) != 2 || g1.Teams[0] != "Owls" || g1.Teams[1] != "Bears" {
		t.Errorf("Second game teams = %v", g1.Teams)
	}

	// Placeholder day: one week past the last concrete date, with the
	// stale time and location dropped.
	g2 := season.Games[2]
	if g2.Date != "Wednesday, September 19, 2018" {
		t.Errorf("Inferred game date = %q, want 'Wednesday, September 19, 2018'", g2.Date)
	}
	if g2.Time != "" || g2.Location != "" {
		t.Errorf("Inferred game kept stale fields: %+v", g2)
	}
}

func TestExtractSeasonStructuralFailures(t *testing.T) {
	gameTable := `<table><thead><tr><th><b>Wednesday, September 12, 2018</b></th></tr></thead>
<tbody><tr><td>Falcons vs. Hawks</td></tr></tbody></table>`

	tests := []struct {
		name    string
		html    string
		wantErr string
	}{
		{
			name:    "No schedule region",
			html:    `<html><body><p>maintenance</p></body></html>`,
			wantErr: "schedule region not found",
		},
		{
			name:    "Region with no tables",
			html:    `<div class="sscSchedule"></div>`,
			wantErr: "facility table not found",
		},
		{
			name:    "Missing team table",
			html:    `<div class="sscSchedule"><table></table></div>`,
			wantErr: "team table not found",
		},
		{
			name:    "Missing game tables",
			html:    `<div class="sscSchedule"><table></table><table></table></div>`,
			wantErr: "no game tables found",
		},
		{
			name: "Placeholder date with no anchor",
			html: `<div class="sscSchedule"><table></table><table></table>
<table><thead><tr><th><b>Date to be determined</b></th></tr></thead>
<tbody><tr><td>Falcons vs. Hawks</td></tr></tbody></table>` + gameTable + `</div>`,
			wantErr: "no earlier concrete date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromHTML(t, tt.html)
			_, err := ExtractSeason(doc)
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
