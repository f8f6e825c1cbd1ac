package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/aweist/leaguecal/calendar"
	"github.com/aweist/leaguecal/client"
	"github.com/aweist/leaguecal/config"
	"github.com/aweist/leaguecal/matcher"
	"github.com/aweist/leaguecal/models"
	"github.com/aweist/leaguecal/schedule"
	"github.com/aweist/leaguecal/scraper"
	"github.com/aweist/leaguecal/storage"
)

type exportCmd struct {
	URL     string `help:"Division schedule page URL. Skips the interactive league/division selection."`
	Team    string `help:"Team name. Skips the interactive team selection."`
	Name    string `help:"Calendar name. Defaults to the league name, or the team name."`
	Output  string `short:"o" help:"Output .ics path. \"-\" writes the schedule as JSON to stdout instead."`
	NoCache bool   `help:"Bypass the page cache."`
}

func (c *exportCmd) Run(cfg *config.Config) error {
	db, err := storage.NewBoltStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer db.Close()

	site := client.NewSiteClient(cfg.Site.BaseURL, db, cfg.GetCacheTTL())

	divisionURL := c.URL
	if divisionURL == "" {
		divisionURL = cfg.Team.DivisionURL
	}
	calendarName := c.Name

	interactive := false
	if divisionURL == "" {
		interactive = true
		league, err := selectLeague(site, cfg.Site.BaseURL)
		if err != nil {
			return err
		}
		division, err := selectDivision(site, league)
		if err != nil {
			return err
		}
		divisionURL = division.URL
		if calendarName == "" {
			calendarName = league.Name
		}
	}

	fetch := site.FetchDocument
	if c.NoCache {
		fetch = site.FetchFreshDocument
	}
	doc, err := fetch(divisionURL)
	if err != nil {
		return fmt.Errorf("fetching schedule page: %w", err)
	}

	season, err := scraper.ExtractSeason(doc)
	if err != nil {
		return err
	}

	team := c.Team
	if team == "" {
		team = cfg.Team.Name
	}
	if team == "" {
		interactive = true
		team, err = selectTeam(season.Teams)
		if err != nil {
			return err
		}
	}
	if calendarName == "" {
		calendarName = team
	}

	builder := schedule.NewBuilder(matcher.NewMatcher(nil), cfg.GameLocation(), cfg.Schedule.DefaultGameTime)
	entries := builder.Build(season, team)
	log.Printf("Found %d schedule entries for %s", len(entries), team)

	if err := db.SaveSchedule(team, entries); err != nil {
		log.Printf("Error saving schedule: %v", err)
	}

	if c.Output == "-" {
		return writeJSON(os.Stdout, entries)
	}

	output := c.Output
	if output == "" {
		if interactive {
			save := true
			if err := survey.AskOne(&survey.Confirm{Message: "Export iCal file?", Default: true}, &save); err != nil {
				return err
			}
			if !save {
				return writeJSON(os.Stdout, entries)
			}
		}
		output = calendarName + ".ics"
	}

	ics := calendar.Generate(calendarName, entries, divisionURL)
	if err := os.WriteFile(output, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	log.Printf("Wrote %s", output)
	return nil
}

func writeJSON(w *os.File, entries []models.ScheduleEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func selectLeague(site *client.SiteClient, baseURL string) (*models.League, error) {
	doc, err := site.FetchDocument(baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetching league list: %w", err)
	}

	leagues, err := scraper.ExtractLeagues(doc, baseURL)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(leagues))
	for i, l := range leagues {
		names[i] = l.Name
	}

	var answer string
	if err := survey.AskOne(&survey.Select{Message: "Which league?", Options: names}, &answer); err != nil {
		return nil, err
	}

	for i := range leagues {
		if leagues[i].Name == answer {
			return &leagues[i], nil
		}
	}
	return nil, fmt.Errorf("league %q not found", answer)
}

func selectDivision(site *client.SiteClient, league *models.League) (*models.Division, error) {
	doc, err := site.FetchDocument(league.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching division list: %w", err)
	}

	divisions, err := scraper.ExtractDivisions(doc, league.URL)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(divisions))
	for i, d := range divisions {
		labels[i] = fmt.Sprintf("%s / %s", d.Day, d.Name)
	}

	var answer string
	if err := survey.AskOne(&survey.Select{Message: "Which division?", Options: labels}, &answer); err != nil {
		return nil, err
	}

	for i := range divisions {
		if labels[i] == answer {
			return &divisions[i], nil
		}
	}
	return nil, fmt.Errorf("division %q not found", answer)
}

func selectTeam(teams []models.Team) (string, error) {
	if len(teams) == 0 {
		return "", fmt.Errorf("no teams found in schedule")
	}

	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}

	var answer string
	if err := survey.AskOne(&survey.Select{Message: "Which team?", Options: names}, &answer); err != nil {
		return "", err
	}
	return answer, nil
}
