package notifier

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// Notifier defines a high-level interface for announcing tournament state.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	SendPairings(ctx context.Context, pairings []tournament.Pairing, dryRun bool) error
	SendStandings(ctx context.Context, standings []tournament.Standing, dryRun bool) error
}

// LogNotifier writes announcements to the log. It is used when no Slack
// workspace is configured.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

func (LogNotifier) SendPairings(ctx context.Context, pairings []tournament.Pairing, dryRun bool) error {
	for i, p := range pairings {
		if p.IsBye() {
			log.Info("Round pairing", "table", i+1, "player", p.Name1, "bye", true)
			continue
		}
		log.Info("Round pairing", "table", i+1, "player1", p.Name1, "player2", p.Name2)
	}
	return nil
}

func (LogNotifier) SendStandings(ctx context.Context, standings []tournament.Standing, dryRun bool) error {
	for i, s := range standings {
		log.Info("Standing", "rank", i+1, "player", s.Name, "wins", s.Wins, "matches", s.Matches)
	}
	return nil
}
