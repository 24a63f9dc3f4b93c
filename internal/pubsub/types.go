package pubsub

import (
	"sync"

	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/pairing"
)

type client struct {
	client      *pubsub.Client
	topicPrefix string

	mu     sync.Mutex
	topics map[string]*pubsub.Topic
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventPlayerRegistered EventType = "player-registered"
	EventMatchReported    EventType = "match-reported"
	EventRoundPaired      EventType = "round-paired"
	EventTournamentReset  EventType = "tournament-reset"
)

// PlayerRegistered is published after a player joins the tournament.
type PlayerRegistered struct {
	EventID      string `msgpack:"event_id"`
	PlayerID     int64  `msgpack:"player_id"`
	Name         string `msgpack:"name"`
	RegisteredAt int64  `msgpack:"registered_at"`
}

// MatchReported is published after a result has been stored.
type MatchReported struct {
	EventID    string `msgpack:"event_id"`
	Winner     int64  `msgpack:"winner"`
	Loser      int64  `msgpack:"loser"`
	ReportedAt int64  `msgpack:"reported_at"`
}

// RoundPaired is published when the pairings for a round are announced.
type RoundPaired struct {
	EventID  string            `msgpack:"event_id"`
	Pairings []pairing.Pairing `msgpack:"pairings"`
	PairedAt int64             `msgpack:"paired_at"`
}

// TournamentReset is published when matches or players are wiped.
type TournamentReset struct {
	EventID string `msgpack:"event_id"`
	Scope   string `msgpack:"scope"`
	ResetAt int64  `msgpack:"reset_at"`
}
