package tournament

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/pairing"
)

// New creates a new TournamentStore. oddPolicy decides how SwissPairings
// treats an odd number of players.
func New(db *sql.DB, oddPolicy pairing.OddPolicy) TournamentStore {
	return &store{
		db:        db,
		oddPolicy: oddPolicy,
	}
}

// inTx runs fn inside its own transaction and commits it. fn must only use tx;
// in-memory databases have a single connection.
func (s *store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteMatches removes every match record.
func (s *store) DeleteMatches(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM matches")
		return err
	})
	if err != nil {
		log.Error("Failed to clear matches table", "error", err)
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	log.Info("Cleared all matches")
	return nil
}

// DeletePlayers removes every player. Their matches go with them through the
// ON DELETE CASCADE on the matches table.
func (s *store) DeletePlayers(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM players")
		return err
	})
	if err != nil {
		log.Error("Failed to clear players table", "error", err)
		return fmt.Errorf("failed to delete players: %w", err)
	}
	log.Info("Cleared all players")
	return nil
}

func (s *store) CountPlayers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, "SELECT COUNT(*) AS num FROM players").Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (s *store) RegisterPlayer(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, "INSERT INTO players (name) VALUES (?) RETURNING player_id", name).Scan(&id)
	})
	if err != nil {
		log.Error("Failed to register player", "error", err, "name", name)
		return 0, fmt.Errorf("failed to register player: %w", err)
	}
	log.Info("Registered player", "playerID", id, "name", name)
	return id, nil
}

func (s *store) ListPlayers(ctx context.Context) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var players []Player
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, "SELECT player_id, name FROM players ORDER BY player_id")
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p Player
			if err := rows.Scan(&p.ID, &p.Name); err != nil {
				return err
			}
			players = append(players, p)
		}
		return rows.Err()
	})
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// PlayerStandings reads the standings view. Ties on wins keep registration
// order.
func (s *store) PlayerStandings(ctx context.Context) ([]Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var standings []Standing
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT player_id, name, wins, matches
			FROM standings
			ORDER BY wins DESC, player_id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var st Standing
			if err := rows.Scan(&st.ID, &st.Name, &st.Wins, &st.Matches); err != nil {
				return err
			}
			standings = append(standings, st)
		}
		return rows.Err()
	})
	if err != nil {
		log.Error("Failed to query standings", "error", err)
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	log.Debug("Loaded standings", "players", len(standings))
	return standings, nil
}

// ReportMatch records a result. Player ids are checked by the store's foreign
// keys only, so an unknown id surfaces as a constraint error.
func (s *store) ReportMatch(ctx context.Context, winner, loser int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO matches (winner, loser, recorded_at) VALUES (?, ?, ?)",
			winner, loser, time.Now().Unix(),
		)
		return err
	})
	if err != nil {
		log.Error("Failed to record match", "error", err, "winner", winner, "loser", loser)
		return fmt.Errorf("failed to report match: %w", err)
	}
	log.Info("Recorded match", "winner", winner, "loser", loser)
	return nil
}

func (s *store) ListMatches(ctx context.Context) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Match
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, "SELECT match_id, winner, loser, recorded_at FROM matches ORDER BY match_id")
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m Match
			var recordedAt int64
			if err := rows.Scan(&m.ID, &m.Winner, &m.Loser, &recordedAt); err != nil {
				return err
			}
			m.RecordedAt = time.Unix(recordedAt, 0)
			matches = append(matches, m)
		}
		return rows.Err()
	})
	if err != nil {
		log.Error("Failed to query all matches", "error", err)
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// SwissPairings pairs each player with the one next to them in the standings.
func (s *store) SwissPairings(ctx context.Context) ([]Pairing, error) {
	standings, err := s.PlayerStandings(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]pairing.Standing, len(standings))
	for i, st := range standings {
		ranked[i] = pairing.Standing{ID: st.ID, Name: st.Name, Wins: st.Wins}
	}

	pairings, err := pairing.Generate(ranked, s.oddPolicy)
	if err != nil {
		log.Warn("Could not pair players", "error", err, "players", len(ranked), "policy", s.oddPolicy)
		return nil, err
	}
	log.Info("Generated pairings", "pairs", len(pairings), "players", len(ranked))
	return pairings, nil
}
