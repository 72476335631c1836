package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrewkoo/veesee/internal/service"
)

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [team|all]",
		Short: "Show upcoming EPL matches with Heat channels",
		Long: `Show upcoming EPL matches with their resolved Heat channels.

With a team name, shows only that team's matches. With "all" (or no
argument in a non-interactive context), shows every upcoming match.
With no argument on a terminal, enters an interactive prompt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := ctx.ensureApp()
			if err != nil {
				return err
			}
			defer ctx.close()

			if len(args) == 1 {
				return runScheduleQuery(cmd, app, args[0])
			}
			return runPrompt(cmd, app)
		},
	}
}

func runScheduleQuery(cmd *cobra.Command, app *app, query string) error {
	out := cmd.OutOrStdout()

	if strings.EqualFold(query, "all") {
		matches, err := app.schedule.AllUpcoming(cmd.Context())
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Fprintln(out, "No upcoming EPL games found.")
			return nil
		}
		fmt.Fprintf(out, "Found %d upcoming EPL matches:\n", len(matches))
		fmt.Fprintln(out, renderMatchTable(matches))
		return nil
	}

	team, matches, err := app.schedule.ForTeam(cmd.Context(), query)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintf(out, "No upcoming %s games found.\n", team.Name)
		return nil
	}
	fmt.Fprintf(out, "Found %d upcoming %s matches:\n", len(matches), team.Name)
	fmt.Fprintln(out, renderMatchTable(matches))
	return nil
}

// runPrompt is the interactive loop: team name, "all", or "quit".
// A team-not-found result re-prompts instead of exiting.
func runPrompt(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	printOptions := func() {
		fmt.Fprintln(out, strings.Repeat("-", 60))
		fmt.Fprintln(out, "Options:")
		fmt.Fprintln(out, "  Enter team name to search for their upcoming games")
		fmt.Fprintln(out, "  Enter 'all' to see all upcoming EPL games")
		fmt.Fprintln(out, "  Enter 'quit' to exit")
		fmt.Fprintln(out, strings.Repeat("-", 60))
		fmt.Fprint(out, "Enter your choice: ")
	}

	printOptions()
	for scanner.Scan() {
		if cmd.Context().Err() != nil {
			return cmd.Context().Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			fmt.Fprint(out, "Enter your choice: ")
			continue
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		if err := runScheduleQuery(cmd, app, input); err != nil {
			if nf, ok := service.AsTeamNotFound(err); ok {
				fmt.Fprintf(out, "Team '%s' not found. Try again: ", nf.Query)
				continue
			}
			fmt.Fprintf(out, "Error fetching schedule: %v\n", err)
		}

		fmt.Fprintln(out)
		printOptions()
	}
	fmt.Fprintln(out, "\nGoodbye!")
	return scanner.Err()
}
