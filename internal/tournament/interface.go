package tournament

import "context"

// TournamentStore defines the operations available on the tournament's data.
// Every call is its own transaction; nothing is cached between calls.
type TournamentStore interface {
	// DeleteMatches removes every match record.
	DeleteMatches(ctx context.Context) error
	// DeletePlayers removes every player, and with them their matches.
	DeletePlayers(ctx context.Context) error
	// CountPlayers returns the number of registered players.
	CountPlayers(ctx context.Context) (int, error)
	// RegisterPlayer adds a player and returns the id the store assigned.
	// Names need not be unique and are not validated.
	RegisterPlayer(ctx context.Context, name string) (int64, error)
	// ListPlayers returns all players in registration order.
	ListPlayers(ctx context.Context) ([]Player, error)
	// PlayerStandings returns every player's record, most wins first.
	PlayerStandings(ctx context.Context) ([]Standing, error)
	// ReportMatch records the outcome of a single match.
	ReportMatch(ctx context.Context, winner, loser int64) error
	// ListMatches returns the match log, oldest first.
	ListMatches(ctx context.Context) ([]Match, error)
	// SwissPairings pairs adjacent players in the current standings.
	SwissPairings(ctx context.Context) ([]Pairing, error)
}
