// Package scheduler drives the periodic refresh-and-export job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/andrewkoo/veesee/internal/channels"
	"github.com/andrewkoo/veesee/internal/export"
	"github.com/andrewkoo/veesee/internal/service"
)

type Scheduler struct {
	s           gocron.Scheduler
	schedule    *service.ScheduleService
	exporter    *export.Exporter
	directory   *channels.Directory
	cronExpr    string
	sendMessage func(string) error // optional notification hook
	logger      *slog.Logger
}

func NewScheduler(cronExpr string, schedule *service.ScheduleService, exporter *export.Exporter, directory *channels.Directory, sendMessage func(string) error, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		schedule:    schedule,
		exporter:    exporter,
		directory:   directory,
		cronExpr:    cronExpr,
		sendMessage: sendMessage,
		logger:      logger,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.CronJob(s.cronExpr, false),
		gocron.NewTask(s.runExport),
	)
	if err != nil {
		return fmt.Errorf("failed to create export job: %w", err)
	}

	if s.sendMessage != nil {
		// Morning digest of the day's games, UK kickoffs land in the
		// US morning so 11:00 UTC is ahead of everything.
		_, err = s.s.NewJob(
			gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(11, 0, 0))),
			gocron.NewTask(s.sendTodayDigest),
		)
		if err != nil {
			return fmt.Errorf("failed to create digest job: %w", err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) runExport() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	teams, err := s.schedule.Teams(ctx)
	if err != nil {
		s.logger.Error("Scheduled export: failed to fetch teams", "error", err)
		return
	}
	matches, err := s.schedule.AllSeason(ctx)
	if err != nil {
		s.logger.Error("Scheduled export: failed to fetch matches", "error", err)
		return
	}
	if err := s.exporter.Export(teams, matches, s.directory.Channels()); err != nil {
		s.logger.Error("Scheduled export failed", "error", err)
	}
}

func (s *Scheduler) sendTodayDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	matches, err := s.schedule.AllUpcoming(ctx)
	if err != nil {
		s.logger.Error("Failed to build today digest", "error", err)
		return
	}

	today := time.Now().UTC().Format("2006-01-02")
	var todays []string
	for _, m := range matches {
		if m.UTCDate.UTC().Format("2006-01-02") != today {
			continue
		}
		line := fmt.Sprintf("%s — %s", m.UTCDate.UTC().Format("15:04"), m.Title())
		if m.Broadcast != nil && len(m.Broadcast.Channels) > 0 {
			line += fmt.Sprintf(" (Ch. %s)", m.Broadcast.Channels[0].Number)
		}
		todays = append(todays, line)
	}
	if len(todays) == 0 {
		return
	}

	msg := "⚽ *Today's EPL games*\n\n"
	for _, line := range todays {
		msg += line + "\n"
	}
	if err := s.sendMessage(msg); err != nil {
		s.logger.Error("Failed to send today digest", "error", err)
	}
}
