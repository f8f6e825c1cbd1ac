package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aweist/leaguecal/client"
	"github.com/aweist/leaguecal/config"
	"github.com/aweist/leaguecal/matcher"
	"github.com/aweist/leaguecal/notifier"
	"github.com/aweist/leaguecal/schedule"
	"github.com/aweist/leaguecal/scheduler"
	"github.com/aweist/leaguecal/storage"
	"github.com/aweist/leaguecal/web"
)

type watchCmd struct {
	URL  string `help:"Division schedule page URL."`
	Team string `help:"Team name to watch."`
}

func (c *watchCmd) Run(cfg *config.Config) error {
	divisionURL := c.URL
	if divisionURL == "" {
		divisionURL = cfg.Team.DivisionURL
	}
	if divisionURL == "" {
		return fmt.Errorf("a division URL is required (--url or DIVISION_URL)")
	}

	team := c.Team
	if team == "" {
		team = cfg.Team.Name
	}
	if team == "" {
		return fmt.Errorf("a team name is required (--team or TEAM_NAME)")
	}

	db, err := storage.NewBoltStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer db.Close()

	var notifiers []notifier.Notifier

	if cfg.Email.Enabled {
		emailNotifier := notifier.NewEmailNotifier(notifier.EmailConfig{
			SMTPHost: cfg.Email.SMTPHost,
			SMTPPort: cfg.Email.SMTPPort,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			Storage:  db,
		})
		notifiers = append(notifiers, emailNotifier)
		log.Println("Email notifications enabled")
	}

	if len(notifiers) == 0 {
		log.Println("WARNING: No notifiers configured. Games will be tracked but no notifications will be sent.")
	}

	builder := schedule.NewBuilder(matcher.NewMatcher(nil), cfg.GameLocation(), cfg.Schedule.DefaultGameTime)
	poller := scheduler.NewPoller(scheduler.PollerConfig{
		Client:      client.NewSiteClient(cfg.Site.BaseURL, db, cfg.GetCacheTTL()),
		Storage:     db,
		Builder:     builder,
		Notifiers:   notifiers,
		DivisionURL: divisionURL,
		Team:        team,
		Interval:    cfg.GetPollInterval(),
	})

	log.Printf("Watching schedule for team: %s", team)
	log.Printf("Polling interval: %s", cfg.Schedule.PollInterval)
	log.Printf("Database: %s", cfg.Storage.DatabasePath)

	if cfg.Web.Enabled {
		webServer := web.NewServer(db, cfg.Web.Port)
		go webServer.Start(team)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		poller.Start()
	}()

	<-sigChan
	log.Println("Shutting down...")
	return nil
}

type serveCmd struct {
	Team string `help:"Team name whose stored schedule to serve."`
}

func (c *serveCmd) Run(cfg *config.Config) error {
	team := c.Team
	if team == "" {
		team = cfg.Team.Name
	}
	if team == "" {
		return fmt.Errorf("a team name is required (--team or TEAM_NAME)")
	}

	db, err := storage.NewBoltStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer db.Close()

	web.NewServer(db, cfg.Web.Port).Start(team)
	return nil
}
