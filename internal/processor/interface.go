package processor

import (
	"context"

	"github.com/mauv0809/swiss-tournament/internal/notifier"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// Store defines the tournament operations required by the processor.
type Store interface {
	RegisterPlayer(ctx context.Context, name string) (int64, error)
	ReportMatch(ctx context.Context, winner, loser int64) error
	PlayerStandings(ctx context.Context) ([]tournament.Standing, error)
	SwissPairings(ctx context.Context) ([]tournament.Pairing, error)
	DeleteMatches(ctx context.Context) error
	DeletePlayers(ctx context.Context) error
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
