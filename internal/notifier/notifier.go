package notifier

import (
	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/ranking"
)

// Notifier defines a high-level interface for sending notifications about league events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded matches
	SendMatchResult(match *league.MatchRecord, dryRun bool) error
	SendStandings(standings []ranking.Standing, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(standings []ranking.Standing) (any, error)
	FormatMatchHistoryResponse(matches []league.MatchRecord, limit int) (any, error)
}
