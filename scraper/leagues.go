package scraper

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/aweist/leaguecal/models"
)

// ExtractLeagues reads the league list from the club's navigation menu
// on the landing page. Leagues nested under an expanded menu group get
// the group name prefixed ("Volleyball - Indoor Volleyball").
func ExtractLeagues(doc *goquery.Document, baseURL string) ([]models.League, error) {
	menu := doc.Find(`#navigation a[href="/leagues/"]`).First()
	if menu.Length() == 0 {
		return nil, fmt.Errorf("extracting leagues: leagues menu not found")
	}
	list := menu.Next()
	if !list.Is("ul") {
		return nil, fmt.Errorf("extracting leagues: leagues menu has no submenu")
	}

	var leagues []models.League
	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		// Non-league menu entries (corporate events, tournaments).
		if li.HasClass("menu-mlid-2138") || li.HasClass("menu-mlid-2344") {
			return
		}
		li.Find("a").Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok {
				return
			}
			name := cleanText(a.Text())
			if name == "" {
				return
			}

			group := a.Parent().Parent().Parent()
			if group.Is("li") && group.HasClass("expanded") && !group.HasClass("first") {
				if label := cleanText(group.Contents().First().Text()); label != "" {
					name = label + " - " + name
				}
			}

			leagues = append(leagues, models.League{
				Name: name,
				URL:  resolveRef(baseURL, href+"/schedules-standings"),
			})
		})
	})

	if len(leagues) == 0 {
		return nil, fmt.Errorf("extracting leagues: no leagues in menu")
	}
	return leagues, nil
}

// ExtractDivisions reads the per-day division tabs from a league's
// schedules page. Each tab header names a play day; the tab body lists
// that day's divisions with links to their schedule pages.
func ExtractDivisions(doc *goquery.Document, baseURL string) ([]models.Division, error) {
	tabs := doc.Find("#tabs-0-tabs").First()
	if tabs.Length() == 0 {
		return nil, fmt.Errorf("extracting divisions: tabs region not found")
	}

	dayByTab := make(map[string]string)
	tabs.Find("li a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			dayByTab[href] = cleanText(a.Text())
		}
	})

	var divisions []models.Division
	tabs.ChildrenFiltered("div").Each(func(_ int, div *goquery.Selection) {
		id, _ := div.Attr("id")
		day := dayByTab["#"+id]
		div.Find("p").Each(func(_ int, p *goquery.Selection) {
			name := cleanText(p.Find("strong").First().Text())
			href, ok := p.Find("a").First().Attr("href")
			if name == "" || !ok {
				return
			}
			divisions = append(divisions, models.Division{
				Day:  day,
				Name: name,
				URL:  resolveRef(baseURL, href),
			})
		})
	})

	if len(divisions) == 0 {
		return nil, fmt.Errorf("extracting divisions: no divisions found")
	}
	return divisions, nil
}

func resolveRef(baseURL, href string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
