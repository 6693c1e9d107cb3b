package notifier

import (
	"sync"

	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/ranking"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendMatchResultFunc            func(match *league.MatchRecord, dryRun bool) error
	SendStandingsFunc              func(standings []ranking.Standing, dryRun bool) error
	FormatStandingsResponseFunc    func(standings []ranking.Standing) (any, error)
	FormatMatchHistoryResponseFunc func(matches []league.MatchRecord, limit int) (any, error)

	// Call records
	SendMatchResultCalls []struct {
		Match  *league.MatchRecord
		DryRun bool
	}
	SendStandingsCalls [][]ranking.Standing

	// Call records for format functions
	LastStandingsResponse    any
	LastMatchHistoryResponse any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = nil
	m.SendStandingsCalls = nil
	m.LastStandingsResponse = nil
	m.LastMatchHistoryResponse = nil
}

func (m *Mock) SendMatchResult(match *league.MatchRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, struct {
		Match  *league.MatchRecord
		DryRun bool
	}{match, dryRun})
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(match, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(standings []ranking.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, standings)
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(standings, dryRun)
	}
	return nil
}

func (m *Mock) FormatStandingsResponse(standings []ranking.Standing) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatStandingsResponseFunc != nil {
		resp, err := m.FormatStandingsResponseFunc(standings)
		m.LastStandingsResponse = resp
		return resp, err
	}
	resp := map[string]any{"text": "standings", "count": len(standings)}
	m.LastStandingsResponse = resp
	return resp, nil
}

func (m *Mock) FormatMatchHistoryResponse(matches []league.MatchRecord, limit int) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatMatchHistoryResponseFunc != nil {
		resp, err := m.FormatMatchHistoryResponseFunc(matches, limit)
		m.LastMatchHistoryResponse = resp
		return resp, err
	}
	resp := map[string]any{"text": "matches", "count": len(matches)}
	m.LastMatchHistoryResponse = resp
	return resp, nil
}
