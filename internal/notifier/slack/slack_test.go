package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/metrics"
	"github.com/mauv0809/court-planner/internal/reservation"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendWeekSchedule_CallsSender(t *testing.T) {
	calls := 0
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			calls++
			return "C123", "ts123", nil
		},
	}
	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	require.NoError(t, notifier.SendWeekSchedule("2025-09-28", nil, false))
	require.NoError(t, notifier.SendLadder("Ladder enkel", nil, false))
	assert.Equal(t, 2, calls)
}

func TestFormatWeekSchedule(t *testing.T) {
	slot1 := reservation.Slot{Date: "2025-09-28", TimeSlot: "18u30-19u30"}
	slot2 := reservation.Slot{Date: "2025-09-28", TimeSlot: "19u30-20u30"}
	double, err := reservation.NewDouble(slot1, 1, reservation.Training, [2]string{"Ruben", "Brent"}, [2]string{"Tibo", "Gilles"})
	require.NoError(t, err)
	single, err := reservation.NewSingle(slot1, 3, reservation.Competitive, "Aaron", "Seppe")
	require.NoError(t, err)
	open := reservation.NewOpen(slot2, 2, reservation.Single, reservation.Competitive)
	open.Players[0] = "Wout"

	n := &Notifier{channelID: "C123"}
	msg := n.formatWeekSchedule("2025-09-28", []reservation.Reservation{double, single, open})
	require.Len(t, msg.Blocks.BlockSet, 4, "header, two slots, context")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "First block should be a HeaderBlock")
	assert.Equal(t, "🎾 Schedule for Sunday 28 Sep 🎾", header.Text.Text)

	first, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "18u30-19u30\n• Court 1 (double, training): Ruben & Brent vs Tibo & Gilles\n• Court 3 (single, wedstrijd): Aaron vs Seppe", first.Text.Text)

	second, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "19u30-20u30\n• Court 2 (single, wedstrijd): Wout vs ?", second.Text.Text)

	ctxBlock, ok := msg.Blocks.BlockSet[3].(*slackapi.ContextBlock)
	require.True(t, ok)
	require.Len(t, ctxBlock.ContextElements.Elements, 1)
	assert.Equal(t, "3 matches", ctxBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject).Text)
}

func TestFormatWeekSchedule_Empty(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	msg := n.formatWeekSchedule("2025-09-28", nil)
	require.Len(t, msg.Blocks.BlockSet, 2)
}

func TestFormatLadder(t *testing.T) {
	n := &Notifier{channelID: "C123"}
	standings := []club.Standing{
		{Player: "Ruben", Wins: 3, Matches: 4, WinPercentage: 75},
		{Player: "Tibo", Wins: 1, Matches: 4, WinPercentage: 25},
		{Player: "Brent"},
		{Player: "Gilles"},
	}

	msg := n.formatLadder("Ladder enkel", standings)
	require.Len(t, msg.Blocks.BlockSet, 5)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Equal(t, "🏆 Ladder enkel 🏆", header.Text.Text)

	first, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "1. 🥇 Ruben\n> Win %: 75% (3/4)", first.Text.Text)

	fourth, ok := msg.Blocks.BlockSet[4].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "4.  Gilles\n> Win %: 0% (0/0)", fourth.Text.Text)

	empty := n.formatLadder("Ladder dubbel", []club.Standing{{Player: "Ruben"}})
	require.Len(t, empty.Blocks.BlockSet, 2)
}

func TestFormatPlayerResponses(t *testing.T) {
	n := &Notifier{channelID: "C123"}

	resp, err := n.FormatPlayerStandingResponse("Ladder enkel", club.Standing{Player: "Ruben", Wins: 2, Matches: 3, WinPercentage: 67}, 0)
	require.NoError(t, err)
	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	require.Len(t, msg.Blocks.BlockSet, 2)
	body := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "Position: #1 🥇\nPlayed: 3\nWon: 2\nWin %: 67%", body.Text.Text)

	resp, err = n.FormatPlayerNotFoundResponse("Sander", []club.Suggestion{{Player: "SanderB"}, {Player: "SanderD"}})
	require.NoError(t, err)
	msg = resp.(slackapi.Message)
	section := msg.Blocks.BlockSet[0].(*slackapi.SectionBlock)
	assert.Equal(t, "No player found matching 'Sander'. Did you mean: SanderB, SanderD?", section.Text.Text)
}
