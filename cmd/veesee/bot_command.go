package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewkoo/veesee/internal/bot"
)

func newBotCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defer ctx.close()

			if app.cfg.TelegramBot.Token == "" {
				return fmt.Errorf("TELEGRAM_TOKEN is not set")
			}

			telegramBot, err := bot.NewTelegramBot(app.cfg.TelegramBot.Token, app.cfg.TelegramBot.ChatID, app.schedule, app.directory)
			if err != nil {
				return err
			}
			return telegramBot.Start(cmd.Context())
		},
	}
}
