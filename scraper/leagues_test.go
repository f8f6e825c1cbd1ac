package scraper

import (
	"strings"
	"testing"
)

func TestExtractLeagues(t *testing.T) {
	html := `<div id="navigation">
<ul>
  <li class="first expanded"><a href="/leagues/">Leagues</a>
    <ul>
      <li class="first leaf"><a href="/dodgeball">Dodgeball</a></li>
      <li class="expanded">Volleyball
        <ul>
          <li><a href="/indoor-volleyball">Indoor Volleyball</a></li>
          <li><a href="/beach-volleyball">Beach Volleyball</a></li>
        </ul>
      </li>
      <li class="leaf menu-mlid-2138"><a href="/corporate">Corporate Events</a></li>
      <li class="leaf menu-mlid-2344"><a href="/tournaments">Tournaments</a></li>
      <li class="last leaf"><a href="/soccer">Soccer</a></li>
    </ul>
  </li>
</ul>
</div>`

	doc := docFromHTML(t, html)
	leagues, err := ExtractLeagues(doc, "https://www.calgarysportsclub.com")
	if err != nil {
		t.Fatalf("ExtractLeagues returned error: %v", err)
	}

	wantNames := []string{
		"Dodgeball",
		"Volleyball - Indoor Volleyball",
		"Volleyball - Beach Volleyball",
		"Soccer",
	}
	if len(leagues) != len(wantNames) {
		t.Fatalf("Expected %d leagues, got %d: %+v", len(wantNames), len(leagues), leagues)
	}
	for i, want := range wantNames {
		if leagues[i].Name != want {
			t.Errorf("League %d = %q, want %q", i, leagues[i].Name, want)
		}
	}

	if got := leagues[0].URL; got != "https://www.calgarysportsclub.com/dodgeball/schedules-standings" {
		t.Errorf("League URL = %q", got)
	}

	for _, l := range leagues {
		if strings.Contains(l.Name, "Corporate") || strings.Contains(l.Name, "Tournaments") {
			t.Errorf("Excluded menu entry leaked through: %q", l.Name)
		}
	}
}

func TestExtractLeaguesMissingMenu(t *testing.T) {
	doc := docFromHTML(t, `<div id="navigation"><a href="/about/">About</a></div>`)
	if _, err := ExtractLeagues(doc, "https://example.com"); err == nil {
		t.Error("Expected an error when the leagues menu is missing")
	}
}

func TestExtractDivisions(t *testing.T) {
	html := `<div id="tabs-0-tabs">
<ul>
  <li><a href="#tabs-0-monday">Monday</a></li>
  <li><a href="#tabs-0-wednesday">Wednesday</a></li>
</ul>
<div id="tabs-0-monday">
  <p><strong>Division 1</strong> <a href="/schedule/monday-div-1">schedule</a></p>
  <p><strong>Division 2</strong> <a href="/schedule/monday-div-2">schedule</a></p>
</div>
<div id="tabs-0-wednesday">
  <p><strong>Division 1</strong> <a href="/schedule/wednesday-div-1">schedule</a></p>
  <p>Standings are updated weekly.</p>
</div>
</div>`

	doc := docFromHTML(t, html)
	divisions, err := ExtractDivisions(doc, "https://www.calgarysportsclub.com")
	if err != nil {
		t.Fatalf("ExtractDivisions returned error: %v", err)
	}

	if len(divisions) != 3 {
		t.Fatalf("Expected 3 divisions, got %d: %+v", len(divisions), divisions)
	}

	d := divisions[0]
	if d.Day != "Monday" || d.Name != "Division 1" {
		t.Errorf("Unexpected first division: %+v", d)
	}
	if d.URL != "https://www.calgarysportsclub.com/schedule/monday-div-1" {
		t.Errorf("Division URL = %q", d.URL)
	}

	if divisions[2].Day != "Wednesday" {
		t.Errorf("Expected third division on Wednesday, got %q", divisions[2].Day)
	}
}

func TestExtractDivisionsMissingTabs(t *testing.T) {
	doc := docFromHTML(t, `<div><p>nothing here</p></div>`)
	if _, err := ExtractDivisions(doc, "https://example.com"); err == nil {
		t.Error("Expected an error when the tabs region is missing")
	}
}
