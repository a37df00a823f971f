package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/metrics"
	"github.com/mauv0809/court-planner/internal/notifier"
	"github.com/mauv0809/court-planner/internal/reservation"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionText(fallbackText(message), false),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendWeekSchedule(date string, reservations []reservation.Reservation, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatWeekSchedule(date, reservations), dryRun)
	return err
}

func (s *Notifier) SendLadder(title string, standings []club.Standing, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatLadder(title, standings), dryRun)
	return err
}

// FormatLadderResponse formats a ladder for a slash command response.
func (s *Notifier) FormatLadderResponse(title string, standings []club.Standing) (any, error) {
	return s.formatLadder(title, standings), nil
}

// FormatPlayerStandingResponse formats one player's ladder position for a slash command response.
func (s *Notifier) FormatPlayerStandingResponse(title string, standing club.Standing, position int) (any, error) {
	return s.formatPlayerStanding(title, standing, position), nil
}

// FormatPlayerNotFoundResponse formats an unknown player reply for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string, suggestions []club.Suggestion) (any, error) {
	return s.formatPlayerNotFound(query, suggestions), nil
}

// formatWeekSchedule lists the matches of one date, grouped per time slot.
func (s *Notifier) formatWeekSchedule(date string, reservations []reservation.Reservation) slack.Message {
	blocks := make([]slack.Block, 0)

	day := date
	if t, err := time.Parse(club.DateLayout, date); err == nil {
		day = t.Format("Monday 02 Jan")
	}
	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🎾 Schedule for %s 🎾", day), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(reservations) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No matches planned for this date.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var slots []string
	bySlot := make(map[string][]reservation.Reservation)
	for _, r := range reservations {
		if _, ok := bySlot[r.TimeSlot]; !ok {
			slots = append(slots, r.TimeSlot)
		}
		bySlot[r.TimeSlot] = append(bySlot[r.TimeSlot], r)
	}

	for _, ts := range slots {
		lines := []string{ts}
		for _, r := range bySlot[ts] {
			lines = append(lines, fmt.Sprintf("• Court %d (%s, %s): %s", r.Court, r.MatchType, r.Category, lineup(r)))
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))
	}

	contextText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("%d matches", len(reservations)), true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatLadder(title string, standings []club.Standing) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %s 🏆", title), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	played := 0
	for _, st := range standings {
		played += st.Matches
	}
	if played == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No results yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, st := range standings {
		playerText := fmt.Sprintf("%d. %s %s\n> Win %%: %d%% (%d/%d)",
			i+1,
			club.Medal(i),
			st.Player,
			st.WinPercentage,
			st.Wins,
			st.Matches,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatPlayerStanding(title string, st club.Standing, position int) slack.Message {
	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("📊 %s: %s", title, st.Player), true, false)
	body := fmt.Sprintf("Position: #%d %s\nPlayed: %d\nWon: %d\nWin %%: %d%%",
		position+1, club.Medal(position), st.Matches, st.Wins, st.WinPercentage)
	return slack.NewBlockMessage(
		slack.NewHeaderBlock(headerText),
		slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", body, true, false), nil, nil),
	)
}

func (s *Notifier) formatPlayerNotFound(query string, suggestions []club.Suggestion) slack.Message {
	text := fmt.Sprintf("No player found matching '%s'.", query)
	if len(suggestions) > 0 {
		names := make([]string, len(suggestions))
		for i, sug := range suggestions {
			names[i] = sug.Player
		}
		text += " Did you mean: " + strings.Join(names, ", ") + "?"
	}
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil),
	)
}

// lineup renders the players of a match, open seats as "?".
func lineup(r reservation.Reservation) string {
	names := make([]string, len(r.Players))
	for i, p := range r.Players {
		if p == "" {
			p = "?"
		}
		names[i] = p
	}
	if r.MatchType == reservation.Double && len(names) == 4 {
		return fmt.Sprintf("%s & %s vs %s & %s", names[0], names[1], names[2], names[3])
	}
	return strings.Join(names, " vs ")
}

// fallbackText is the notification text shown where blocks are not rendered.
func fallbackText(message slack.Message) string {
	for _, b := range message.Blocks.BlockSet {
		if h, ok := b.(*slack.HeaderBlock); ok && h.Text != nil {
			return h.Text.Text
		}
	}
	return ""
}
