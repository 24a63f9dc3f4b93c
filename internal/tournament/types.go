package tournament

import (
	"database/sql"
	"sync"
	"time"

	"github.com/mauv0809/swiss-tournament/internal/pairing"
)

// store handles all database operations for the tournament.
type store struct {
	db        *sql.DB
	mu        sync.RWMutex
	oddPolicy pairing.OddPolicy
}

// Player represents a registered player.
type Player struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Match is one recorded result.
type Match struct {
	ID         int64     `json:"id"`
	Winner     int64     `json:"winner"`
	Loser      int64     `json:"loser"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Standing is a player's record derived from the match log.
type Standing struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	Matches int    `json:"matches"`
}

// Losses is the number of matches the player did not win.
func (s Standing) Losses() int {
	return s.Matches - s.Wins
}

// Pairing is a matchup for the next round.
type Pairing = pairing.Pairing
