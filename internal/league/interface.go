package league

import (
	"context"

	"github.com/mauv0809/x1-ranking/internal/ranking"
)

// LeagueStore defines the interface for interacting with the league's data.
type LeagueStore interface {
	GetRankedPlayers(ctx context.Context) ([]ranking.RankedPlayer, error)
	GetMatchHistory(ctx context.Context) ([]MatchRecord, error)
	GetMatch(ctx context.Context, matchID int64) (*MatchRecord, error)
	InsertMatch(ctx context.Context, match NewMatch) (int64, error)
	GetAllPlayers(ctx context.Context) ([]Player, error)
	GetPlayers(ctx context.Context, playerIDs []int64) ([]Player, error)
	AddPlayer(ctx context.Context, name string) (int64, error)
	Ping(ctx context.Context) error
}

// Service is the entry point used by transports. Standings are computed from
// the match ledger on every call.
type Service interface {
	Standings(ctx context.Context) ([]ranking.Standing, error)
	MatchHistory(ctx context.Context) ([]MatchRecord, error)
	SubmitMatch(ctx context.Context, submission Submission) (*MatchRecord, error)
	Players(ctx context.Context) ([]Player, error)
}

// ChampionChecker reports, per name and in order, whether each champion belongs
// to the canonical catalog. The catalog is read once per call.
type ChampionChecker interface {
	AreChampions(ctx context.Context, names ...string) ([]bool, error)
}
