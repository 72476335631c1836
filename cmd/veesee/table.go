package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/andrewkoo/veesee/internal/models"
)

func renderMatchTable(matches []models.Match) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Kickoff (UTC)", "Match", "MD", "Channels", "Broadcaster", "Source"})

	for _, m := range matches {
		title := m.Title()
		if m.Status == models.StatusFinished && m.HomeScore != nil && m.AwayScore != nil {
			title += fmt.Sprintf(" [%d-%d]", *m.HomeScore, *m.AwayScore)
		}
		if m.Live() {
			title += " [LIVE]"
		}

		chs := "-"
		broadcaster := "-"
		source := string(models.SourceNone)
		if m.Broadcast != nil {
			source = string(m.Broadcast.Source)
			if m.Broadcast.Broadcaster != "" {
				broadcaster = m.Broadcast.Broadcaster
			}
			var parts []string
			for _, ch := range m.Broadcast.Channels {
				parts = append(parts, "Ch. "+ch.Number+" ("+ch.Name+")")
			}
			if len(parts) > 0 {
				chs = strings.Join(parts, ", ")
			}
		}

		tw.AppendRow(table.Row{
			m.UTCDate.UTC().Format("Mon Jan 02 15:04"),
			title,
			m.Matchday,
			chs,
			broadcaster,
			source,
		})
	}

	return tw.Render()
}

func renderTeamTable(teams []models.Team) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Team", "Short", "TLA"})
	for _, t := range teams {
		tw.AppendRow(table.Row{t.Name, t.ShortName, t.TLA})
	}
	return tw.Render()
}

func renderChannelTable(channels []models.Channel) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Ch.", "Name", "Category", "Playback"})
	for _, ch := range channels {
		playback := ""
		if ch.HasPlayback {
			playback = "yes"
		}
		tw.AppendRow(table.Row{ch.Number, ch.Name, ch.Category, playback})
	}
	return tw.Render()
}
