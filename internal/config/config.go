package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

type Config struct {
	FootballData FootballData
	Scraper      Scraper
	Broadcast    Broadcast
	Export       Export
	TelegramBot  TelegramBot
}

type FootballData struct {
	APIKey      string `envconfig:"FOOTBALL_DATA_API_KEY" required:"true"`
	Competition string `envconfig:"COMPETITION_CODE" default:"PL"`
}

type Scraper struct {
	// WindowDays is how far ahead scraped broadcast data is expected to
	// exist; daily schedule pages are fetched for each day in the window.
	WindowDays int           `envconfig:"SCRAPE_WINDOW_DAYS" default:"21"`
	RateLimit  time.Duration `envconfig:"SCRAPE_RATE_LIMIT" default:"1500ms"`
	Disabled   bool          `envconfig:"SCRAPE_DISABLED" default:"false"`
}

type Broadcast struct {
	// MarqueeTeamIDs are football-data.org team IDs treated as high-profile
	// clubs by the heuristic estimator. Defaults to the Big Six.
	MarqueeTeamIDs []int `envconfig:"MARQUEE_TEAM_IDS" default:"57,61,64,65,66,73"`
	// ChannelMapFile optionally overrides the built-in Heat channel table.
	ChannelMapFile string `envconfig:"CHANNEL_MAP_FILE"`
}

type Export struct {
	OutputDir string `envconfig:"OUTPUT_DIR" default:"web/data"`
	// Cron controls when the watch command refreshes and re-exports.
	Cron string `envconfig:"EXPORT_CRON" default:"30 6 * * *"`
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	if c.Scraper.WindowDays < 0 {
		return nil, fmt.Errorf("SCRAPE_WINDOW_DAYS must not be negative, got %d", c.Scraper.WindowDays)
	}
	if _, err := cron.ParseStandard(c.Export.Cron); err != nil {
		return nil, fmt.Errorf("invalid EXPORT_CRON %q: %w", c.Export.Cron, err)
	}
	return &c, nil
}
