package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/metrics"
	"github.com/mauv0809/x1-ranking/internal/notifier"
	"github.com/mauv0809/x1-ranking/internal/ranking"
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
	return &Notifier{
		api:       slack.New(token),
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
		slack.MsgOptionAsUser(true),
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

func (s *Notifier) SendMatchResult(match *league.MatchRecord, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatMatchResult(match), dryRun)
	return err
}

func (s *Notifier) SendStandings(standings []ranking.Standing, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatStandings(standings), dryRun)
	return err
}

// FormatStandingsResponse formats the ranking table for a slash command response.
func (s *Notifier) FormatStandingsResponse(standings []ranking.Standing) (any, error) {
	return s.formatStandings(standings), nil
}

// FormatMatchHistoryResponse formats the most recent matches for a slash command response.
func (s *Notifier) FormatMatchHistoryResponse(matches []league.MatchRecord, limit int) (any, error) {
	return s.formatMatchHistory(matches, limit), nil
}

func (s *Notifier) formatMatchResult(match *league.MatchRecord) slack.Message {
	headerText := slack.NewTextBlockObject("plain_text", "⚔️ New 1v1 Result ⚔️", true, false)

	resultText := fmt.Sprintf("*%s* (%s) defeated *%s* (%s)",
		match.WinnerName, match.WinnerChampion,
		match.LoserName, match.LoserChampion,
	)
	resultSection := slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", resultText, false, false), nil, nil)

	footer := slack.NewContextBlock("",
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("Match #%d played on %s", match.ID, displayDate(match.MatchDate)), false, false),
	)

	return slack.NewBlockMessage(
		slack.NewHeaderBlock(headerText),
		resultSection,
		footer,
	)
}

// formatStandings creates the Slack message for the ranking table using Block Kit.
func (s *Notifier) formatStandings(standings []ranking.Standing) slack.Message {
	blocks := make([]slack.Block, 0, len(standings)+1)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 X1 Ranking 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, st := range standings {
		winrate := "-"
		if st.Winrate != nil {
			winrate = fmt.Sprintf("%d%%", *st.Winrate)
		}
		playerText := fmt.Sprintf("%d. %s%s\n> Winrate: %s | Won: %d | Lost: %d | Played: %d",
			st.Rank,
			medal(st),
			st.Name,
			winrate,
			st.MatchesWon,
			st.MatchesLost,
			st.TotalMatches,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatMatchHistory(matches []league.MatchRecord, limit int) slack.Message {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "📜 Recent Matches", true, false)),
	}

	if len(matches) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No matches recorded yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, fmt.Sprintf("%s: *%s* (%s) beat %s (%s)",
			displayDate(m.MatchDate), m.WinnerName, m.WinnerChampion, m.LoserName, m.LoserChampion))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))
	return slack.NewBlockMessage(blocks...)
}

func medal(st ranking.Standing) string {
	if !st.Podium() || !st.HasMatches() {
		return ""
	}
	switch st.Rank {
	case 1:
		return "🥇 "
	case 2:
		return "🥈 "
	default:
		return "🥉 "
	}
}

// displayDate renders stored ISO dates as DD/MM/YYYY and leaves anything else untouched.
func displayDate(value string) string {
	t, err := time.Parse(league.DateLayout, value)
	if err != nil {
		if value == "" {
			return "unknown date"
		}
		return value
	}
	return t.Format("02/01/2006")
}
