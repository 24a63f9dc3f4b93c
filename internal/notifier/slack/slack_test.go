package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
	calls                  int
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	m.calls++
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(context.Background(), message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			assert.Equal(t, "C123", channelID)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "posting should be bounded by a timeout")
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendPairings(context.Background(), []tournament.Pairing{{ID1: 1, Name1: "A", ID2: 2, Name2: "B"}}, false)

	require.NoError(t, err)
	assert.Equal(t, 1, api.calls, "PostMessageContext should have been called")
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

	err := notifier.SendStandings(context.Background(), nil, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func sectionTexts(t *testing.T, msg slackapi.Message) []string {
	t.Helper()
	var texts []string
	for _, block := range msg.Blocks.BlockSet {
		if section, ok := block.(*slackapi.SectionBlock); ok {
			texts = append(texts, section.Text.Text)
		}
	}
	return texts
}

func TestFormatPairings(t *testing.T) {
	msg := formatPairings([]tournament.Pairing{
		{ID1: 1, Name1: "Alice", ID2: 2, Name2: "Bob"},
		{ID1: 3, Name1: "Carol"},
	})

	require.Len(t, msg.Blocks.BlockSet, 3)
	_, isHeader := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	assert.True(t, isHeader)
	assert.Equal(t, []string{"Table 1: Alice vs Bob", "Table 2: Carol has a bye"}, sectionTexts(t, msg))
}

func TestFormatStandings(t *testing.T) {
	t.Run("ranks players with records", func(t *testing.T) {
		msg := formatStandings([]tournament.Standing{
			{ID: 1, Name: "Alice", Wins: 2, Matches: 2},
			{ID: 2, Name: "Bob", Wins: 1, Matches: 2},
		})
		texts := sectionTexts(t, msg)
		require.Len(t, texts, 2)
		assert.Contains(t, texts[0], "1. 🥇 Alice")
		assert.Contains(t, texts[0], "Wins: 2 | Losses: 0 | Matches: 2")
		assert.Contains(t, texts[1], "Losses: 1")
	})

	t.Run("empty standings", func(t *testing.T) {
		texts := sectionTexts(t, formatStandings(nil))
		assert.Equal(t, []string{"No players registered yet."}, texts)
	})
}
