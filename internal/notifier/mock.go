package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendPairingsFunc  func(pairings []tournament.Pairing, dryRun bool) error
	SendStandingsFunc func(standings []tournament.Standing, dryRun bool) error

	// Call records
	SendPairingsCalls []struct {
		Pairings []tournament.Pairing
		DryRun   bool
	}
	SendStandingsCalls []struct {
		Standings []tournament.Standing
		DryRun    bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPairingsCalls = nil
	m.SendStandingsCalls = nil
}

func (m *Mock) SendPairings(ctx context.Context, pairings []tournament.Pairing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPairingsCalls = append(m.SendPairingsCalls, struct {
		Pairings []tournament.Pairing
		DryRun   bool
	}{pairings, dryRun})
	if m.SendPairingsFunc != nil {
		return m.SendPairingsFunc(pairings, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(ctx context.Context, standings []tournament.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, struct {
		Standings []tournament.Standing
		DryRun    bool
	}{standings, dryRun})
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(standings, dryRun)
	}
	return nil
}
