package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewkoo/veesee/internal/channels"
)

func newTeamsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List all EPL teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defer ctx.close()

			teams, err := app.schedule.Teams(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTeamTable(teams))
			fmt.Fprintf(cmd.OutOrStdout(), "%d teams\n", len(teams))
			return nil
		},
	}
}

func newChannelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List Heat channels carrying EPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			directory := channels.Default()
			if cfg, err := ctx.ensureConfig(); err == nil {
				directory, err = buildDirectory(cfg)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderChannelTable(directory.Channels()))
			return nil
		},
	}
}
