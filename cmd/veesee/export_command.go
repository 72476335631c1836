package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the season schedule to JSON files",
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
			matches, err := app.schedule.AllSeason(cmd.Context())
			if err != nil {
				return err
			}

			if err := app.exporter.Export(teams, matches, app.directory.Channels()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Export complete: %d games, %d teams\n", len(matches), len(teams))
			return nil
		},
	}
}
