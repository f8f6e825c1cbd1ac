package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/aweist/leaguecal/config"
	"github.com/aweist/leaguecal/models"
	"github.com/aweist/leaguecal/storage"
)

type addRecipientCmd struct {
	Email string `arg:"" help:"Email address to notify about new games."`
}

func (c *addRecipientCmd) Run(cfg *config.Config) error {
	db, err := storage.NewBoltStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer db.Close()

	recipient := models.EmailRecipient{
		ID:       c.Email,
		Email:    c.Email,
		IsActive: true,
		AddedAt:  time.Now(),
	}
	if err := db.AddEmailRecipient(recipient); err != nil {
		return fmt.Errorf("adding recipient: %w", err)
	}

	fmt.Printf("Added recipient %s\n", c.Email)
	return nil
}

type lsRecipientsCmd struct{}

func (c *lsRecipientsCmd) Run(cfg *config.Config) error {
	db, err := storage.NewBoltStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer db.Close()

	recipients, err := db.GetAllEmailRecipients()
	if err != nil {
		return fmt.Errorf("listing recipients: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Email", "Active", "Added"})
	for _, r := range recipients {
		t.AppendRow(table.Row{r.Email, r.IsActive, r.AddedAt.Format("2006-01-02")})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

type rmRecipientCmd struct {
	Email string `arg:"" help:"Email address to remove."`
}

func (c *rmRecipientCmd) Run(cfg *config.Config) error {
	db, err := storage.NewBoltStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer db.Close()

	if err := db.DeleteEmailRecipient(c.Email); err != nil {
		return fmt.Errorf("removing recipient: %w", err)
	}

	fmt.Printf("Removed recipient %s\n", c.Email)
	return nil
}
