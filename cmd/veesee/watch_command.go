package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andrewkoo/veesee/internal/bot"
	"github.com/andrewkoo/veesee/internal/scheduler"
)

// watch runs the scheduled refresh-and-export loop, optionally with a
// Telegram daily digest when a bot token is configured.
func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the scheduled refresh and export loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defer ctx.close()

			var sendMessage func(string) error
			if app.cfg.TelegramBot.Token != "" {
				telegramBot, err := bot.NewTelegramBot(app.cfg.TelegramBot.Token, app.cfg.TelegramBot.ChatID, app.schedule, app.directory)
				if err != nil {
					return err
				}
				sendMessage = telegramBot.SendMessage
			}

			sched, err := scheduler.NewScheduler(app.cfg.Export.Cron, app.schedule, app.exporter, app.directory, sendMessage, slog.Default())
			if err != nil {
				return err
			}
			if err := sched.Start(); err != nil {
				return err
			}
			defer func() {
				if err := sched.Stop(); err != nil {
					slog.Error("Error stopping scheduler", "error", err)
				}
			}()

			slog.Info("Watching", "cron", app.cfg.Export.Cron)
			<-cmd.Context().Done()
			slog.Info("Shutting down gracefully...")
			return nil
		},
	}
}
