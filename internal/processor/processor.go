package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// New creates a new Processor.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
		now:      time.Now,
	}
}

// RegisterPlayer adds a player and publishes a player-registered event.
func (p *Processor) RegisterPlayer(ctx context.Context, name string, dryRun bool) (int64, error) {
	var id int64
	err := p.timed("register_player", func() (err error) {
		id, err = p.store.RegisterPlayer(ctx, name)
		return err
	})
	if err != nil {
		return 0, err
	}
	p.metrics.IncPlayersRegistered()

	p.publish(ctx, pubsub.EventPlayerRegistered, pubsub.PlayerRegistered{
		EventID:      uuid.NewString(),
		PlayerID:     id,
		Name:         name,
		RegisteredAt: p.now().Unix(),
	}, dryRun)
	return id, nil
}

// ReportResult stores a match result and publishes a match-reported event.
// A failed publish is logged; the stored result stands.
func (p *Processor) ReportResult(ctx context.Context, winner, loser int64, dryRun bool) error {
	err := p.timed("report_match", func() error {
		return p.store.ReportMatch(ctx, winner, loser)
	})
	if err != nil {
		return err
	}
	p.metrics.IncMatchesReported()

	p.publish(ctx, pubsub.EventMatchReported, pubsub.MatchReported{
		EventID:    uuid.NewString(),
		Winner:     winner,
		Loser:      loser,
		ReportedAt: p.now().Unix(),
	}, dryRun)
	return nil
}

// Pairings generates the next round's pairings without announcing them.
func (p *Processor) Pairings(ctx context.Context) ([]tournament.Pairing, error) {
	var pairings []tournament.Pairing
	err := p.timed("swiss_pairings", func() (err error) {
		pairings, err = p.store.SwissPairings(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	p.metrics.IncRoundsPaired()
	return pairings, nil
}

// Standings returns the current standings. An empty field yields an empty,
// non-nil slice.
func (p *Processor) Standings(ctx context.Context) ([]tournament.Standing, error) {
	var standings []tournament.Standing
	err := p.timed("player_standings", func() (err error) {
		standings, err = p.store.PlayerStandings(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if standings == nil {
		standings = []tournament.Standing{}
	}
	return standings, nil
}

// AnnounceRound generates pairings, publishes them and posts them to the
// configured channel.
func (p *Processor) AnnounceRound(ctx context.Context, dryRun bool) ([]tournament.Pairing, error) {
	log.Info("Announcing next round", "dry_run", dryRun)
	pairings, err := p.Pairings(ctx)
	if err != nil {
		return nil, err
	}

	p.publish(ctx, pubsub.EventRoundPaired, pubsub.RoundPaired{
		EventID:  uuid.NewString(),
		Pairings: pairings,
		PairedAt: p.now().Unix(),
	}, dryRun)

	if err := p.notifier.SendPairings(ctx, pairings, dryRun); err != nil {
		return pairings, fmt.Errorf("failed to announce pairings: %w", err)
	}
	return pairings, nil
}

// AnnounceStandings posts the current standings to the configured channel.
func (p *Processor) AnnounceStandings(ctx context.Context, dryRun bool) ([]tournament.Standing, error) {
	standings, err := p.Standings(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.notifier.SendStandings(ctx, standings, dryRun); err != nil {
		return standings, fmt.Errorf("failed to announce standings: %w", err)
	}
	return standings, nil
}

// ResetMatches deletes every match.
func (p *Processor) ResetMatches(ctx context.Context, dryRun bool) error {
	if err := p.timed("delete_matches", func() error { return p.store.DeleteMatches(ctx) }); err != nil {
		return err
	}
	p.publishReset(ctx, "matches", dryRun)
	return nil
}

// ResetPlayers deletes every player and, through the cascade, every match.
func (p *Processor) ResetPlayers(ctx context.Context, dryRun bool) error {
	if err := p.timed("delete_players", func() error { return p.store.DeletePlayers(ctx) }); err != nil {
		return err
	}
	p.publishReset(ctx, "players", dryRun)
	return nil
}

func (p *Processor) publishReset(ctx context.Context, scope string, dryRun bool) {
	p.publish(ctx, pubsub.EventTournamentReset, pubsub.TournamentReset{
		EventID: uuid.NewString(),
		Scope:   scope,
		ResetAt: p.now().Unix(),
	}, dryRun)
}

func (p *Processor) publish(ctx context.Context, event pubsub.EventType, data any, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would publish event", "event", event)
		return
	}
	if err := p.pubsub.SendMessage(ctx, event, data); err != nil {
		p.metrics.IncEventsFailed()
		log.Error("Failed to publish event", "error", err, "event", event)
		return
	}
	p.metrics.IncEventsPublished()
}

func (p *Processor) timed(operation string, fn func() error) error {
	startTime := time.Now()
	err := fn()
	p.metrics.ObserveStoreDuration(operation, time.Since(startTime).Seconds())
	return err
}
