package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/aweist/leaguecal/client"
	"github.com/aweist/leaguecal/config"
	"github.com/aweist/leaguecal/models"
	"github.com/aweist/leaguecal/scraper"
	"github.com/aweist/leaguecal/storage"
)

type listLeaguesCmd struct{}

func (c *listLeaguesCmd) Run(cfg *config.Config) error {
	site, closeDB, err := openSite(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	doc, err := site.FetchDocument(cfg.Site.BaseURL)
	if err != nil {
		return fmt.Errorf("fetching league list: %w", err)
	}

	leagues, err := scraper.ExtractLeagues(doc, cfg.Site.BaseURL)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"League", "Schedules URL"})
	for _, l := range leagues {
		t.AppendRow(table.Row{l.Name, l.URL})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

type listFacilitiesCmd struct {
	URL string `help:"Division schedule page URL." required:""`
}

func (c *listFacilitiesCmd) Run(cfg *config.Config) error {
	season, closeDB, err := fetchSeason(cfg, c.URL)
	if err != nil {
		return err
	}
	defer closeDB()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Facility", "Address", "Map"})
	for _, f := range season.Facilities {
		t.AppendRow(table.Row{f.Name, f.Address, f.Link})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

type listTeamsCmd struct {
	URL string `help:"Division schedule page URL." required:""`
}

func (c *listTeamsCmd) Run(cfg *config.Config) error {
	season, closeDB, err := fetchSeason(cfg, c.URL)
	if err != nil {
		return err
	}
	defer closeDB()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Team", "Captain"})
	for _, team := range season.Teams {
		t.AppendRow(table.Row{team.Name, team.Captain})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func openSite(cfg *config.Config) (*client.SiteClient, func(), error) {
	db, err := storage.NewBoltStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing storage: %w", err)
	}
	site := client.NewSiteClient(cfg.Site.BaseURL, db, cfg.GetCacheTTL())
	return site, func() { db.Close() }, nil
}

func fetchSeason(cfg *config.Config, url string) (*models.Season, func(), error) {
	site, closeDB, err := openSite(cfg)
	if err != nil {
		return nil, nil, err
	}

	doc, err := site.FetchDocument(url)
	if err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("fetching schedule page: %w", err)
	}

	season, err := scraper.ExtractSeason(doc)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return season, closeDB, nil
}
