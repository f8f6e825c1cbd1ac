package main

import (
	"log"

	"github.com/alecthomas/kong"

	"github.com/aweist/leaguecal/config"
)

var cli struct {
	Export exportCmd `cmd:"" default:"withargs" help:"Scrape a division schedule and export one team's games as an iCalendar file."`

	List struct {
		Leagues    listLeaguesCmd    `cmd:"" help:"List the club's leagues."`
		Facilities listFacilitiesCmd `cmd:"" help:"List the facilities for a division."`
		Teams      listTeamsCmd      `cmd:"" help:"List the teams in a division."`
	} `cmd:"" help:"List leagues, facilities or teams."`

	Recipients struct {
		Add addRecipientCmd `cmd:"" help:"Add a notification email recipient."`
		Ls  lsRecipientsCmd `cmd:"" help:"List notification email recipients."`
		Rm  rmRecipientCmd  `cmd:"" help:"Remove a notification email recipient."`
	} `cmd:"" help:"Manage notification email recipients."`

	Watch watchCmd `cmd:"" help:"Poll a division schedule and notify about newly scheduled games."`
	Serve serveCmd `cmd:"" help:"Serve the stored schedule over HTTP."`
}

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := kong.Parse(&cli,
		kong.Name("leaguecal"),
		kong.Description("Scrapes a sports club's league schedules and turns them into per-team calendars."),
	)
	err := ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
}
