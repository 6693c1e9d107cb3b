package league

import (
	"context"
	"sync"

	"github.com/mauv0809/x1-ranking/internal/ranking"
)

var (
	_ LeagueStore = (*MockStore)(nil)
	_ Service     = (*MockService)(nil)
)

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetRankedPlayersFunc func() ([]ranking.RankedPlayer, error)
	GetMatchHistoryFunc  func() ([]MatchRecord, error)
	GetMatchFunc         func(matchID int64) (*MatchRecord, error)
	InsertMatchFunc      func(match NewMatch) (int64, error)
	GetAllPlayersFunc    func() ([]Player, error)
	GetPlayersFunc       func(playerIDs []int64) ([]Player, error)
	AddPlayerFunc        func(name string) (int64, error)
	PingFunc             func() error

	// Call records
	InsertMatchCalls []NewMatch
	GetPlayersCalls  [][]int64
	AddPlayerCalls   []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertMatchCalls = nil
	m.GetPlayersCalls = nil
	m.AddPlayerCalls = nil
}

func (m *MockStore) GetRankedPlayers(ctx context.Context) ([]ranking.RankedPlayer, error) {
	if m.GetRankedPlayersFunc != nil {
		return m.GetRankedPlayersFunc()
	}
	return []ranking.RankedPlayer{}, nil
}

func (m *MockStore) GetMatchHistory(ctx context.Context) ([]MatchRecord, error) {
	if m.GetMatchHistoryFunc != nil {
		return m.GetMatchHistoryFunc()
	}
	return []MatchRecord{}, nil
}

func (m *MockStore) GetMatch(ctx context.Context, matchID int64) (*MatchRecord, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return nil, ErrMatchNotFound
}

func (m *MockStore) InsertMatch(ctx context.Context, match NewMatch) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertMatchCalls = append(m.InsertMatchCalls, match)
	if m.InsertMatchFunc != nil {
		return m.InsertMatchFunc(match)
	}
	return int64(len(m.InsertMatchCalls)), nil
}

func (m *MockStore) GetAllPlayers(ctx context.Context) ([]Player, error) {
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return []Player{}, nil
}

func (m *MockStore) GetPlayers(ctx context.Context, playerIDs []int64) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayersCalls = append(m.GetPlayersCalls, playerIDs)
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(playerIDs)
	}
	return []Player{}, nil
}

func (m *MockStore) AddPlayer(ctx context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, name)
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(name)
	}
	return int64(len(m.AddPlayerCalls)), nil
}

func (m *MockStore) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc()
	}
	return nil
}

// MockService is a mock implementation of the Service interface for testing.
type MockService struct {
	mu sync.Mutex

	StandingsFunc    func() ([]ranking.Standing, error)
	MatchHistoryFunc func() ([]MatchRecord, error)
	SubmitMatchFunc  func(submission Submission) (*MatchRecord, error)
	PlayersFunc      func() ([]Player, error)

	SubmitMatchCalls []Submission
}

// NewMockService creates a new mock service.
func NewMockService() *MockService {
	return &MockService{}
}

func (m *MockService) Standings(ctx context.Context) ([]ranking.Standing, error) {
	if m.StandingsFunc != nil {
		return m.StandingsFunc()
	}
	return []ranking.Standing{}, nil
}

func (m *MockService) MatchHistory(ctx context.Context) ([]MatchRecord, error) {
	if m.MatchHistoryFunc != nil {
		return m.MatchHistoryFunc()
	}
	return []MatchRecord{}, nil
}

func (m *MockService) SubmitMatch(ctx context.Context, submission Submission) (*MatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubmitMatchCalls = append(m.SubmitMatchCalls, submission)
	if m.SubmitMatchFunc != nil {
		return m.SubmitMatchFunc(submission)
	}
	return &MatchRecord{ID: int64(len(m.SubmitMatchCalls)), Approved: true}, nil
}

func (m *MockService) Players(ctx context.Context) ([]Player, error) {
	if m.PlayersFunc != nil {
		return m.PlayersFunc()
	}
	return []Player{}, nil
}
