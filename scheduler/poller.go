package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/aweist/leaguecal/client"
	"github.com/aweist/leaguecal/models"
	"github.com/aweist/leaguecal/notifier"
	"github.com/aweist/leaguecal/schedule"
	"github.com/aweist/leaguecal/scraper"
	"github.com/aweist/leaguecal/storage"
)

// Poller periodically re-scrapes one division's schedule page, rebuilds
// the watched team's schedule and announces entries it hasn't notified
// about before.
type Poller struct {
	client      *client.SiteClient
	storage     *storage.BoltStorage
	builder     *schedule.Builder
	notifiers   []notifier.Notifier
	divisionURL string
	team        string
	interval    time.Duration
}

type PollerConfig struct {
	Client      *client.SiteClient
	Storage     *storage.BoltStorage
	Builder     *schedule.Builder
	Notifiers   []notifier.Notifier
	DivisionURL string
	Team        string
	Interval    time.Duration
}

func NewPoller(config PollerConfig) *Poller {
	return &Poller{
		client:      config.Client,
		storage:     config.Storage,
		builder:     config.Builder,
		notifiers:   config.Notifiers,
		divisionURL: config.DivisionURL,
		team:        config.Team,
		interval:    config.Interval,
	}
}

func (p *Poller) Start() {
	log.Println("Starting schedule poller...")

	p.poll()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for range ticker.C {
		p.poll()
	}
}

func (p *Poller) poll() {
	log.Println("Polling for schedule updates...")

	doc, err := p.client.FetchFreshDocument(p.divisionURL)
	if err != nil {
		log.Printf("Error fetching schedule page: %v", err)
		return
	}

	season, err := scraper.ExtractSeason(doc)
	if err != nil {
		log.Printf("Error extracting season: %v", err)
		return
	}

	entries := p.builder.Build(season, p.team)
	log.Printf("Found %d schedule entries for %s", len(entries), p.team)

	newEntries := 0
	for _, entry := range entries {
		if entry.Start.Before(time.Now().AddDate(0, 0, -1)) {
			continue
		}

		isNew, err := p.processEntry(entry)
		if err != nil {
			log.Printf("Error processing entry %s: %v", entry.ID, err)
			continue
		}

		if isNew {
			newEntries++
		}
	}

	if newEntries > 0 {
		log.Printf("Found %d new entries and sent notifications", newEntries)
	} else {
		log.Println("No new entries found")
	}

	if err := p.storage.SaveSchedule(p.team, entries); err != nil {
		log.Printf("Error saving schedule: %v", err)
	}

	oneMonthAgo := time.Now().AddDate(0, -1, 0)
	if err := p.storage.CleanupOldNotifications(oneMonthAgo); err != nil {
		log.Printf("Error cleaning up old notifications: %v", err)
	}
}

func (p *Poller) processEntry(entry models.ScheduleEntry) (bool, error) {
	notified, err := p.storage.IsEntryNotified(entry.ID)
	if err != nil {
		return false, fmt.Errorf("checking if entry notified: %w", err)
	}

	if notified {
		return false, nil
	}

	for _, n := range p.notifiers {
		if err := n.SendNotification(p.team, entry); err != nil {
			log.Printf("Error sending %s notification for entry %s: %v", n.GetType(), entry.ID, err)
		} else {
			log.Printf("Sent %s notification for game on %s at %s",
				n.GetType(), entry.Start.Format("Jan 2"), entry.Start.Format("3:04 PM"))
		}
	}

	if err := p.storage.MarkEntryNotified(p.team, entry); err != nil {
		return false, fmt.Errorf("marking entry as notified: %w", err)
	}

	return true, nil
}
