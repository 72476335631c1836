package main

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/andrewkoo/veesee/internal/api/footballdata"
	"github.com/andrewkoo/veesee/internal/broadcast"
	"github.com/andrewkoo/veesee/internal/channels"
	"github.com/andrewkoo/veesee/internal/config"
	"github.com/andrewkoo/veesee/internal/export"
	"github.com/andrewkoo/veesee/internal/repository/memory"
	"github.com/andrewkoo/veesee/internal/scraper/lstv"
	"github.com/andrewkoo/veesee/internal/service"
)

// commandContext wires the application lazily so commands that never
// touch the API (help, channels with the built-in table) do not demand
// an API key.
type commandContext struct {
	configOnce sync.Once
	config     *config.Config
	configErr  error

	appOnce sync.Once
	app     *app
	appErr  error
}

type app struct {
	cfg       *config.Config
	directory *channels.Directory
	schedule  *service.ScheduleService
	exporter  *export.Exporter
	browser   *lstv.Browser // nil when scraping is disabled
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.New()
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureApp() (*app, error) {
	c.appOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.appErr = err
			return
		}

		directory, err := buildDirectory(cfg)
		if err != nil {
			c.appErr = err
			return
		}

		logger := slog.Default()
		clock := clockwork.NewRealClock()

		client := footballdata.NewClient(cfg.FootballData)
		source := footballdata.NewRetryingSource(client, logger, 0, 0)

		var browser *lstv.Browser
		var scrapeSource service.ScrapeSource
		if !cfg.Scraper.Disabled {
			browser = lstv.NewBrowser(context.Background())
			scrapeSource = lstv.NewScraper(browser, cfg.Scraper.WindowDays, cfg.Scraper.RateLimit, clock, logger)
		}

		estimator := broadcast.NewEstimator(cfg.Broadcast.MarqueeTeamIDs)
		reconciler := broadcast.NewReconciler(directory, estimator, cfg.Scraper.WindowDays, clock, logger)

		repo := memory.NewRepository()
		schedule := service.NewScheduleService(source, scrapeSource, repo, reconciler, clock, logger)
		exporter := export.NewExporter(cfg.Export.OutputDir, clock, logger)

		c.app = &app{
			cfg:       cfg,
			directory: directory,
			schedule:  schedule,
			exporter:  exporter,
			browser:   browser,
		}
	})
	return c.app, c.appErr
}

func (c *commandContext) close() {
	if c.app != nil && c.app.browser != nil {
		c.app.browser.Close()
	}
}

func buildDirectory(cfg *config.Config) (*channels.Directory, error) {
	if cfg.Broadcast.ChannelMapFile != "" {
		return channels.Load(cfg.Broadcast.ChannelMapFile)
	}
	return channels.Default(), nil
}
