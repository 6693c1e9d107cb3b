package champions

import "context"

// ChampionClient defines the interface for reading the League of Legends
// champion catalog. This allows for mock implementations to be used in tests.
type ChampionClient interface {
	GetChampions(ctx context.Context) ([]Champion, error)
	IsChampion(ctx context.Context, name string) (bool, error)
	AreChampions(ctx context.Context, names ...string) ([]bool, error)
}
