package tournament

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the TournamentStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	DeleteMatchesFunc   func(ctx context.Context) error
	DeletePlayersFunc   func(ctx context.Context) error
	CountPlayersFunc    func(ctx context.Context) (int, error)
	RegisterPlayerFunc  func(ctx context.Context, name string) (int64, error)
	ListPlayersFunc     func(ctx context.Context) ([]Player, error)
	PlayerStandingsFunc func(ctx context.Context) ([]Standing, error)
	ReportMatchFunc     func(ctx context.Context, winner, loser int64) error
	ListMatchesFunc     func(ctx context.Context) ([]Match, error)
	SwissPairingsFunc   func(ctx context.Context) ([]Pairing, error)

	// Call records
	RegisterPlayerCalls []string
	ReportMatchCalls    []struct {
		Winner int64
		Loser  int64
	}
	DeleteMatchesCalls int
	DeletePlayersCalls int
	SwissPairingsCalls int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegisterPlayerCalls = nil
	m.ReportMatchCalls = nil
	m.DeleteMatchesCalls = 0
	m.DeletePlayersCalls = 0
	m.SwissPairingsCalls = 0
}

func (m *MockStore) DeleteMatches(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteMatchesCalls++
	if m.DeleteMatchesFunc != nil {
		return m.DeleteMatchesFunc(ctx)
	}
	return nil
}

func (m *MockStore) DeletePlayers(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayersCalls++
	if m.DeletePlayersFunc != nil {
		return m.DeletePlayersFunc(ctx)
	}
	return nil
}

func (m *MockStore) CountPlayers(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountPlayersFunc != nil {
		return m.CountPlayersFunc(ctx)
	}
	return 0, nil
}

func (m *MockStore) RegisterPlayer(ctx context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegisterPlayerCalls = append(m.RegisterPlayerCalls, name)
	if m.RegisterPlayerFunc != nil {
		return m.RegisterPlayerFunc(ctx, name)
	}
	return int64(len(m.RegisterPlayerCalls)), nil
}

func (m *MockStore) ListPlayers(ctx context.Context) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) PlayerStandings(ctx context.Context) ([]Standing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PlayerStandingsFunc != nil {
		return m.PlayerStandingsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) ReportMatch(ctx context.Context, winner, loser int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReportMatchCalls = append(m.ReportMatchCalls, struct {
		Winner int64
		Loser  int64
	}{winner, loser})
	if m.ReportMatchFunc != nil {
		return m.ReportMatchFunc(ctx, winner, loser)
	}
	return nil
}

func (m *MockStore) ListMatches(ctx context.Context) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) SwissPairings(ctx context.Context) ([]Pairing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SwissPairingsCalls++
	if m.SwissPairingsFunc != nil {
		return m.SwissPairingsFunc(ctx)
	}
	return nil, nil
}
