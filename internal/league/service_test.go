package league_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/metrics"
	"github.com/mauv0809/x1-ranking/internal/pubsub"
	"github.com/mauv0809/x1-ranking/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

type championSet map[string]bool

func (c championSet) AreChampions(_ context.Context, names ...string) ([]bool, error) {
	known := make([]bool, len(names))
	for i, name := range names {
		known[i] = c[name]
	}
	return known, nil
}

type failingCatalog struct{ err error }

func (f failingCatalog) AreChampions(context.Context, ...string) ([]bool, error) {
	return nil, f.err
}

func knownPlayers(players ...league.Player) func([]int64) ([]league.Player, error) {
	return func(ids []int64) ([]league.Player, error) {
		var out []league.Player
		for _, id := range ids {
			for _, p := range players {
				if p.ID == id {
					out = append(out, p)
				}
			}
		}
		return out, nil
	}
}

func validSubmission() league.Submission {
	return league.Submission{
		WinnerPlayerID: 1,
		WinnerChampion: "Ahri",
		LoserPlayerID:  2,
		LoserChampion:  "Zed",
		MatchDate:      "2024-05-01",
	}
}

func TestStandings(t *testing.T) {
	store := league.NewMock()
	store.GetRankedPlayersFunc = func() ([]ranking.RankedPlayer, error) {
		return []ranking.RankedPlayer{
			{ID: 1, Name: "A", MatchesWon: 1, MatchesLost: 1, Winrate: intPtr(50)},
			{ID: 2, Name: "B", MatchesWon: 3, MatchesLost: 1, Winrate: intPtr(75)},
			{ID: 3, Name: "C"},
		}, nil
	}
	m := metrics.NewMock()
	svc := league.NewService(store, m)

	standings, err := svc.Standings(context.Background())
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, "B", standings[0].Name)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 4, standings[0].TotalMatches)
	assert.Equal(t, "A", standings[1].Name)
	assert.Equal(t, "C", standings[2].Name)
	assert.Nil(t, standings[2].Winrate)
	assert.Equal(t, 1, m.StandingsComputed())
	assert.Len(t, m.StandingsDurations(), 1)
}

func TestStandings_StoreError(t *testing.T) {
	store := league.NewMock()
	store.GetRankedPlayersFunc = func() ([]ranking.RankedPlayer, error) {
		return nil, league.ErrDatastoreUnavailable
	}
	m := metrics.NewMock()
	svc := league.NewService(store, m)

	_, err := svc.Standings(context.Background())
	assert.ErrorIs(t, err, league.ErrDatastoreUnavailable)
	assert.Zero(t, m.StandingsComputed())
}

func TestSubmitMatch(t *testing.T) {
	store := league.NewMock()
	store.GetPlayersFunc = knownPlayers(league.Player{ID: 1, Name: "Alice"}, league.Player{ID: 2, Name: "Bob"})
	store.InsertMatchFunc = func(league.NewMatch) (int64, error) { return 42, nil }
	m := metrics.NewMock()
	publisher := pubsub.NewMock()
	svc := league.NewService(store, m, league.WithPublisher(publisher, "match-recorded"))

	record, err := svc.SubmitMatch(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, int64(42), record.ID)
	assert.Equal(t, "Alice", record.WinnerName)
	assert.Equal(t, "Bob", record.LoserName)
	assert.Equal(t, "2024-05-01", record.MatchDate)
	assert.True(t, record.Approved)

	require.Len(t, store.InsertMatchCalls, 1)
	assert.Equal(t, "Ahri", store.InsertMatchCalls[0].WinnerChampion)
	assert.Equal(t, 1, m.MatchesRecorded())

	require.Len(t, publisher.SendMessageCalls, 1)
	assert.Equal(t, "match-recorded", publisher.SendMessageCalls[0].Topic)
	assert.Equal(t, record, publisher.SendMessageCalls[0].Data)
	assert.Equal(t, 1, m.EventsPublished())
}

func TestSubmitMatch_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*league.Submission)
		field  string
	}{
		{"same player", func(s *league.Submission) { s.LoserPlayerID = s.WinnerPlayerID }, "loserPlayerId"},
		{"missing winner", func(s *league.Submission) { s.WinnerPlayerID = 0 }, "winnerPlayerId"},
		{"negative loser", func(s *league.Submission) { s.LoserPlayerID = -3 }, "loserPlayerId"},
		{"blank champion", func(s *league.Submission) { s.WinnerChampion = "   " }, "winnerChampion"},
		{"missing loser champion", func(s *league.Submission) { s.LoserChampion = "" }, "loserChampion"},
		{"missing date", func(s *league.Submission) { s.MatchDate = "" }, "matchDate"},
		{"bad date", func(s *league.Submission) { s.MatchDate = "yesterday" }, "matchDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := league.NewMock()
			m := metrics.NewMock()
			svc := league.NewService(store, m)

			sub := validSubmission()
			tt.mutate(&sub)
			_, err := svc.SubmitMatch(context.Background(), sub)

			var verr *league.ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, store.InsertMatchCalls)
			assert.Equal(t, 1, m.SubmissionsRejected("validation"))
		})
	}
}

func TestSubmitMatch_UnknownPlayer(t *testing.T) {
	store := league.NewMock()
	store.GetPlayersFunc = knownPlayers(league.Player{ID: 1, Name: "Alice"})
	m := metrics.NewMock()
	publisher := pubsub.NewMock()
	svc := league.NewService(store, m, league.WithPublisher(publisher, "match-recorded"))

	_, err := svc.SubmitMatch(context.Background(), validSubmission())
	assert.ErrorIs(t, err, league.ErrPlayerNotFound)
	assert.Empty(t, store.InsertMatchCalls)
	assert.Empty(t, publisher.SendMessageCalls)
	assert.Equal(t, 1, m.SubmissionsRejected("unknown_player"))
}

func TestSubmitMatch_PlayerDeletedBeforeInsert(t *testing.T) {
	store := league.NewMock()
	store.GetPlayersFunc = knownPlayers(league.Player{ID: 1, Name: "Alice"}, league.Player{ID: 2, Name: "Bob"})
	store.InsertMatchFunc = func(league.NewMatch) (int64, error) { return 0, league.ErrPlayerNotFound }
	m := metrics.NewMock()
	svc := league.NewService(store, m)

	_, err := svc.SubmitMatch(context.Background(), validSubmission())
	assert.ErrorIs(t, err, league.ErrPlayerNotFound)
	assert.Equal(t, 1, m.SubmissionsRejected("unknown_player"))
	assert.Zero(t, m.MatchesRecorded())
}

func TestSubmitMatch_PublishFailureDoesNotFail(t *testing.T) {
	store := league.NewMock()
	store.GetPlayersFunc = knownPlayers(league.Player{ID: 1, Name: "Alice"}, league.Player{ID: 2, Name: "Bob"})
	m := metrics.NewMock()
	publisher := pubsub.NewMock()
	publisher.SendMessageFunc = func(string, any) error { return errors.New("broker down") }
	svc := league.NewService(store, m, league.WithPublisher(publisher, "match-recorded"))

	record, err := svc.SubmitMatch(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, 1, m.EventsPublishFailed())
	assert.Zero(t, m.EventsPublished())
}

func TestSubmitMatch_ChampionValidation(t *testing.T) {
	store := league.NewMock()
	store.GetPlayersFunc = knownPlayers(league.Player{ID: 1, Name: "Alice"}, league.Player{ID: 2, Name: "Bob"})
	m := metrics.NewMock()
	svc := league.NewService(store, m, league.WithChampionValidation(championSet{"Ahri": true}))

	_, err := svc.SubmitMatch(context.Background(), validSubmission())
	var verr *league.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "loserChampion", verr.Field)
	assert.Equal(t, 1, m.SubmissionsRejected("unknown_champion"))
	assert.Empty(t, store.InsertMatchCalls)

	sub := validSubmission()
	sub.LoserChampion = "Ahri"
	_, err = svc.SubmitMatch(context.Background(), sub)
	require.NoError(t, err)
}

func TestSubmitMatch_CatalogUnavailable(t *testing.T) {
	store := league.NewMock()
	store.GetPlayersFunc = knownPlayers(league.Player{ID: 1, Name: "Alice"}, league.Player{ID: 2, Name: "Bob"})
	m := metrics.NewMock()
	svc := league.NewService(store, m, league.WithChampionValidation(failingCatalog{err: errors.New("connection refused")}))

	_, err := svc.SubmitMatch(context.Background(), validSubmission())
	require.ErrorIs(t, err, league.ErrCatalogUnavailable)
	assert.NotErrorIs(t, err, league.ErrDatastoreUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, store.InsertMatchCalls)
	assert.Zero(t, m.SubmissionsRejected("unknown_champion"))
}

func TestSubmitMatch_DatastoreError(t *testing.T) {
	store := league.NewMock()
	store.GetPlayersFunc = func([]int64) ([]league.Player, error) {
		return nil, league.ErrDatastoreUnavailable
	}
	svc := league.NewService(store, metrics.NewMock())

	_, err := svc.SubmitMatch(context.Background(), validSubmission())
	assert.ErrorIs(t, err, league.ErrDatastoreUnavailable)
}
