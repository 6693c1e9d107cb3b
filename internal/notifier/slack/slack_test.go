package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/metrics"
	"github.com/mauv0809/x1-ranking/internal/ranking"
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

func intPtr(v int) *int { return &v }

func sectionText(t *testing.T, block slackapi.Block) string {
	t.Helper()
	section, ok := block.(*slackapi.SectionBlock)
	require.True(t, ok, "expected a section block, got %T", block)
	return section.Text.Text
}

func TestSendMessage_DryRun(t *testing.T) {
	m := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", m)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), true)
	require.NoError(t, err)
	assert.Zero(t, m.SlackNotifSent())
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
	m := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", m)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, m.SlackNotifSent())
	assert.Equal(t, 0, m.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}
	m := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", m)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, m.SlackNotifSent())
	assert.Equal(t, 1, m.SlackNotifFailed())
}

func TestSendMatchResult_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}
	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	err := notifier.SendMatchResult(&league.MatchRecord{ID: 1, WinnerName: "Alice", LoserName: "Bob"}, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled)
}

func TestFormatMatchResult(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatMatchResult(&league.MatchRecord{
		ID:             12,
		WinnerName:     "Alice",
		WinnerChampion: "Ahri",
		LoserName:      "Bob",
		LoserChampion:  "Zed",
		MatchDate:      "2024-05-01",
	})
	require.Len(t, msg.Blocks.BlockSet, 3)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "1v1 Result")

	assert.Equal(t, "*Alice* (Ahri) defeated *Bob* (Zed)", sectionText(t, msg.Blocks.BlockSet[1]))

	footer, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	text, ok := footer.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "Match #12 played on 01/05/2024", text.Text)
}

func TestFormatStandings(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	standings := ranking.Rank([]ranking.RankedPlayer{
		{ID: 1, Name: "Alice", MatchesWon: 3, MatchesLost: 1, Winrate: intPtr(75)},
		{ID: 2, Name: "Bob", MatchesWon: 1, MatchesLost: 3, Winrate: intPtr(25)},
		{ID: 3, Name: "Carol"},
	})

	msg := client.formatStandings(standings)
	require.Len(t, msg.Blocks.BlockSet, 4)
	assert.Equal(t, "1. 🥇 Alice\n> Winrate: 75% | Won: 3 | Lost: 1 | Played: 4", sectionText(t, msg.Blocks.BlockSet[1]))
	assert.Equal(t, "2. 🥈 Bob\n> Winrate: 25% | Won: 1 | Lost: 3 | Played: 4", sectionText(t, msg.Blocks.BlockSet[2]))
	// no medal without matches, even on the podium
	assert.Equal(t, "3. Carol\n> Winrate: - | Won: 0 | Lost: 0 | Played: 0", sectionText(t, msg.Blocks.BlockSet[3]))
}

func TestFormatStandings_Empty(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatStandings(nil)
	require.Len(t, msg.Blocks.BlockSet, 2)
	assert.Equal(t, "No players yet.", sectionText(t, msg.Blocks.BlockSet[1]))
}

func TestFormatMatchHistory(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	matches := []league.MatchRecord{
		{WinnerName: "Alice", WinnerChampion: "Ahri", LoserName: "Bob", LoserChampion: "Zed", MatchDate: "2024-05-02"},
		{WinnerName: "Bob", WinnerChampion: "Lux", LoserName: "Alice", LoserChampion: "Yasuo", MatchDate: "legacy"},
		{WinnerName: "Carol", WinnerChampion: "Jinx", LoserName: "Bob", LoserChampion: "Vi", MatchDate: ""},
	}

	msg := client.formatMatchHistory(matches, 2)
	require.Len(t, msg.Blocks.BlockSet, 2)
	assert.Equal(t,
		"02/05/2024: *Alice* (Ahri) beat Bob (Zed)\nlegacy: *Bob* (Lux) beat Alice (Yasuo)",
		sectionText(t, msg.Blocks.BlockSet[1]),
	)

	resp, err := client.FormatMatchHistoryResponse(nil, 5)
	require.NoError(t, err)
	empty, ok := resp.(slackapi.Message)
	require.True(t, ok)
	assert.Len(t, empty.Blocks.BlockSet, 2)
}
