package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/andrewkoo/veesee/internal/channels"
	"github.com/andrewkoo/veesee/internal/models"
	"github.com/andrewkoo/veesee/internal/service"
)

type Handler struct {
	schedule  *service.ScheduleService
	directory *channels.Directory
}

func NewHandler(schedule *service.ScheduleService, directory *channels.Directory) *Handler {
	return &Handler{schedule: schedule, directory: directory}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/all - Upcoming EPL matches with Heat channels\n/team <name> - Upcoming matches for a team\n/channels - Heat channels carrying EPL"
	case "all":
		h.handleAll(ctx, &msg)
	case "team":
		h.handleTeam(ctx, &msg, args)
	case "channels":
		h.handleChannels(&msg)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleAll(ctx context.Context, msg *tgbotapi.MessageConfig) {
	matches, err := h.schedule.AllUpcoming(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching schedule: %v", err)
		return
	}
	if len(matches) == 0 {
		msg.Text = "No upcoming EPL games found."
		return
	}
	msg.Text = formatMatches("📅 *Upcoming EPL matches*", matches)
}

func (h *Handler) handleTeam(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /team <team name>"
		return
	}

	team, matches, err := h.schedule.ForTeam(ctx, args)
	if err != nil {
		if nf, ok := service.AsTeamNotFound(err); ok {
			msg.Text = fmt.Sprintf("Team '%s' not found. Try again with another name.", nf.Query)
		} else {
			msg.Text = fmt.Sprintf("Error fetching schedule: %v", err)
		}
		return
	}
	if len(matches) == 0 {
		msg.Text = fmt.Sprintf("No upcoming %s games found.", team.Name)
		return
	}
	msg.Text = formatMatches(fmt.Sprintf("📅 *Upcoming %s matches*", team.Name), matches)
}

func (h *Handler) handleChannels(msg *tgbotapi.MessageConfig) {
	var sb strings.Builder
	sb.WriteString("📺 *Heat channels carrying EPL*\n\n")
	for _, ch := range h.directory.Channels() {
		playback := ""
		if ch.HasPlayback {
			playback = " (w/ Playback)"
		}
		sb.WriteString(fmt.Sprintf("Ch. %s: %s%s\n", ch.Number, ch.Name, playback))
	}
	msg.Text = sb.String()
}

func formatMatches(header string, matches []models.Match) string {
	var sb strings.Builder
	sb.WriteString(header + "\n\n")
	for _, m := range matches {
		sb.WriteString(fmt.Sprintf("*%s*\n", m.Title()))
		sb.WriteString(fmt.Sprintf("Matchday %d — %s\n", m.Matchday, m.UTCDate.UTC().Format("Mon Jan 2, 15:04 MST")))
		if m.Broadcast != nil && !m.Broadcast.Empty() {
			if m.Broadcast.Broadcaster != "" {
				sb.WriteString(fmt.Sprintf("Broadcaster: %s\n", m.Broadcast.Broadcaster))
			}
			for _, ch := range m.Broadcast.Channels {
				sb.WriteString(fmt.Sprintf("Ch. %s (%s)\n", ch.Number, ch.Name))
			}
		} else {
			sb.WriteString("Broadcaster: unknown\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
