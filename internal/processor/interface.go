package processor

import (
	"context"

	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/notifier"
	"github.com/mauv0809/x1-ranking/internal/ranking"
)

// Store defines the database operations required by the processor.
type Store interface {
	GetMatch(ctx context.Context, matchID int64) (*league.MatchRecord, error)
}

// Standings computes the current ranking table.
type Standings interface {
	Standings(ctx context.Context) ([]ranking.Standing, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
