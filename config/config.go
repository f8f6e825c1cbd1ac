package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Site     SiteConfig
	Team     TeamConfig
	Email    EmailConfig
	Storage  StorageConfig
	Schedule ScheduleConfig
	Web      WebConfig
}

type SiteConfig struct {
	BaseURL  string
	Timezone string
	CacheTTL string
}

type TeamConfig struct {
	Name        string
	DivisionURL string
}

type EmailConfig struct {
	Enabled  bool
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	From     string
}

type StorageConfig struct {
	DatabasePath string
}

type ScheduleConfig struct {
	PollInterval    string
	DefaultGameTime string
}

type WebConfig struct {
	Enabled bool
	Port    string
}

func LoadFromEnv() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL:  getEnv("SITE_BASE_URL", "https://www.calgarysportsclub.com"),
			Timezone: getEnv("SITE_TIMEZONE", "America/Edmonton"),
			CacheTTL: getEnv("PAGE_CACHE_TTL", "1h"),
		},
		Team: TeamConfig{
			Name:        getEnv("TEAM_NAME", ""),
			DivisionURL: getEnv("DIVISION_URL", ""),
		},
		Email: EmailConfig{
			Enabled:  getEnvBool("EMAIL_ENABLED", false),
			SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort: getEnv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("EMAIL_FROM"),
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("DB_PATH", "./leaguecal.db"),
		},
		Schedule: ScheduleConfig{
			PollInterval: getEnv("POLL_INTERVAL", "6h"),
			// Games without a published time default to the league's
			// usual evening start.
			DefaultGameTime: getEnv("DEFAULT_GAME_TIME", "7:00 PM"),
		},
		Web: WebConfig{
			Enabled: getEnvBool("WEB_ENABLED", true),
			Port:    getEnv("WEB_PORT", "8080"),
		},
	}
}

func (c *Config) Validate() error {
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url is required")
	}

	if _, err := time.LoadLocation(c.Site.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Site.Timezone, err)
	}

	if _, err := time.ParseDuration(c.Site.CacheTTL); err != nil {
		return fmt.Errorf("invalid page_cache_ttl: %w", err)
	}

	if _, err := time.Parse("3:04 PM", c.Schedule.DefaultGameTime); err != nil {
		return fmt.Errorf("invalid default_game_time: %w", err)
	}

	if _, err := time.ParseDuration(c.Schedule.PollInterval); err != nil {
		return fmt.Errorf("invalid poll_interval: %w", err)
	}

	if c.Email.Enabled {
		if c.Email.SMTPHost == "" {
			return fmt.Errorf("email.smtp_host is required when email is enabled")
		}

		if c.Email.From == "" {
			return fmt.Errorf("email.from is required when email is enabled")
		}
	}

	return nil
}

// GameLocation returns the fixed time zone all schedule timestamps are
// interpreted in. Validate guarantees the zone name loads.
func (c *Config) GameLocation() *time.Location {
	loc, err := time.LoadLocation(c.Site.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) GetPollInterval() time.Duration {
	d, _ := time.ParseDuration(c.Schedule.PollInterval)
	return d
}

func (c *Config) GetCacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.Site.CacheTTL)
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}
