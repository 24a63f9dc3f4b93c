package pairing

import "errors"

// ErrOddPlayerCount is returned by the Reject policy when the standings hold
// an odd number of players.
var ErrOddPlayerCount = errors.New("odd number of players cannot be fully paired")

// OddPolicy decides what happens to the last-ranked player when the number of
// players is odd.
type OddPolicy string

const (
	// Reject refuses to pair an odd field.
	Reject OddPolicy = "reject"
	// Bye pairs the last-ranked player against nobody.
	Bye OddPolicy = "bye"
	// Drop leaves the last-ranked player out of the round.
	Drop OddPolicy = "drop"
)

// Standing is one ranked player as seen by the pairing generator.
type Standing struct {
	ID   int64
	Name string
	Wins int
}

// Pairing is a matchup for the next round. A bye has ID2 == 0.
type Pairing struct {
	ID1   int64  `json:"id1"`
	Name1 string `json:"name1"`
	ID2   int64  `json:"id2"`
	Name2 string `json:"name2"`
}

// IsBye reports whether the first player sits out the round.
func (p Pairing) IsBye() bool {
	return p.ID2 == 0
}
