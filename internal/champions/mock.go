package champions

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the ChampionClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetChampionsFunc func() ([]Champion, error)
	IsChampionFunc   func(name string) (bool, error)
	AreChampionsFunc func(names []string) ([]bool, error)

	// Call records
	IsChampionCalls   []string
	AreChampionsCalls [][]string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GetChampions(ctx context.Context) ([]Champion, error) {
	if m.GetChampionsFunc != nil {
		return m.GetChampionsFunc()
	}
	return []Champion{}, nil
}

func (m *MockClient) IsChampion(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	m.IsChampionCalls = append(m.IsChampionCalls, name)
	m.mu.Unlock()
	if m.IsChampionFunc != nil {
		return m.IsChampionFunc(name)
	}
	if m.GetChampionsFunc != nil {
		champs, err := m.GetChampionsFunc()
		if err != nil {
			return false, err
		}
		return contains(champs, name), nil
	}
	return true, nil
}

func (m *MockClient) AreChampions(ctx context.Context, names ...string) ([]bool, error) {
	m.mu.Lock()
	m.AreChampionsCalls = append(m.AreChampionsCalls, names)
	m.mu.Unlock()
	if m.AreChampionsFunc != nil {
		return m.AreChampionsFunc(names)
	}
	known := make([]bool, len(names))
	for i, name := range names {
		if m.IsChampionFunc != nil {
			ok, err := m.IsChampionFunc(name)
			if err != nil {
				return nil, err
			}
			known[i] = ok
			continue
		}
		if m.GetChampionsFunc != nil {
			champs, err := m.GetChampionsFunc()
			if err != nil {
				return nil, err
			}
			known[i] = contains(champs, name)
			continue
		}
		known[i] = true
	}
	return known, nil
}
