package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/notifier"
	"github.com/mauv0809/swiss-tournament/internal/pairing"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *tournament.MockStore
	notifier *notifier.Mock
	metrics  *metrics.Mock
	pubsub   *pubsub.MockPubSubClient
	p        *Processor
}

func newFixture() fixture {
	f := fixture{
		store:    tournament.NewMock(),
		notifier: notifier.NewMock(),
		metrics:  metrics.NewMock(),
		pubsub:   pubsub.NewMock(),
	}
	f.p = New(f.store, f.notifier, f.metrics, f.pubsub)
	return f
}

func TestProcessor_RegisterPlayer(t *testing.T) {
	f := newFixture()
	f.store.RegisterPlayerFunc = func(ctx context.Context, name string) (int64, error) {
		return 42, nil
	}

	id, err := f.p.RegisterPlayer(context.Background(), "Bruno Walton", false)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, []string{"Bruno Walton"}, f.store.RegisterPlayerCalls)
	assert.Equal(t, 1, f.metrics.PlayersRegistered())

	require.Len(t, f.pubsub.SendMessageCalls, 1)
	assert.Equal(t, pubsub.EventPlayerRegistered, f.pubsub.SendMessageCalls[0].Topic)
	event, ok := f.pubsub.SendMessageCalls[0].Data.(pubsub.PlayerRegistered)
	require.True(t, ok)
	assert.Equal(t, int64(42), event.PlayerID)
	assert.NotEmpty(t, event.EventID)
}

func TestProcessor_ReportResult(t *testing.T) {
	t.Run("stores the result and publishes an event", func(t *testing.T) {
		f := newFixture()

		err := f.p.ReportResult(context.Background(), 1, 2, false)
		require.NoError(t, err)

		require.Len(t, f.store.ReportMatchCalls, 1)
		assert.Equal(t, int64(1), f.store.ReportMatchCalls[0].Winner)
		assert.Equal(t, int64(2), f.store.ReportMatchCalls[0].Loser)
		assert.Equal(t, 1, f.metrics.MatchesReported())
		assert.Equal(t, 1, f.metrics.StoreObservations("report_match"))
		assert.Equal(t, 1, f.metrics.EventsPublished())

		require.Len(t, f.pubsub.SendMessageCalls, 1)
		event, ok := f.pubsub.SendMessageCalls[0].Data.(pubsub.MatchReported)
		require.True(t, ok)
		assert.Equal(t, int64(1), event.Winner)
		assert.Equal(t, int64(2), event.Loser)
	})

	t.Run("store errors are returned and nothing is published", func(t *testing.T) {
		f := newFixture()
		storeErr := errors.New("FOREIGN KEY constraint failed")
		f.store.ReportMatchFunc = func(ctx context.Context, winner, loser int64) error {
			return storeErr
		}

		err := f.p.ReportResult(context.Background(), 1, 99, false)
		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, 0, f.metrics.MatchesReported())
		assert.Empty(t, f.pubsub.SendMessageCalls)
	})

	t.Run("publish failure does not fail the report", func(t *testing.T) {
		f := newFixture()
		f.pubsub.SendMessageFunc = func(topic pubsub.EventType, data any) error {
			return errors.New("pubsub unavailable")
		}

		err := f.p.ReportResult(context.Background(), 1, 2, false)
		require.NoError(t, err)
		assert.Equal(t, 1, f.metrics.EventsFailed())
	})

	t.Run("dry run skips publishing", func(t *testing.T) {
		f := newFixture()

		require.NoError(t, f.p.ReportResult(context.Background(), 1, 2, true))
		assert.Len(t, f.store.ReportMatchCalls, 1)
		assert.Empty(t, f.pubsub.SendMessageCalls)
	})
}

func TestProcessor_AnnounceRound(t *testing.T) {
	pairings := []tournament.Pairing{
		{ID1: 1, Name1: "A", ID2: 3, Name2: "C"},
		{ID1: 2, Name1: "B", ID2: 4, Name2: "D"},
	}

	t.Run("publishes and notifies the pairings", func(t *testing.T) {
		f := newFixture()
		f.store.SwissPairingsFunc = func(ctx context.Context) ([]tournament.Pairing, error) {
			return pairings, nil
		}

		got, err := f.p.AnnounceRound(context.Background(), false)
		require.NoError(t, err)
		assert.Equal(t, pairings, got)
		assert.Equal(t, 1, f.metrics.RoundsPaired())

		require.Len(t, f.notifier.SendPairingsCalls, 1)
		assert.Equal(t, pairings, f.notifier.SendPairingsCalls[0].Pairings)
		assert.False(t, f.notifier.SendPairingsCalls[0].DryRun)

		require.Len(t, f.pubsub.SendMessageCalls, 1)
		assert.Equal(t, pubsub.EventRoundPaired, f.pubsub.SendMessageCalls[0].Topic)
	})

	t.Run("odd field is not announced", func(t *testing.T) {
		f := newFixture()
		f.store.SwissPairingsFunc = func(ctx context.Context) ([]tournament.Pairing, error) {
			return nil, pairing.ErrOddPlayerCount
		}

		_, err := f.p.AnnounceRound(context.Background(), false)
		assert.ErrorIs(t, err, pairing.ErrOddPlayerCount)
		assert.Empty(t, f.notifier.SendPairingsCalls)
		assert.Empty(t, f.pubsub.SendMessageCalls)
		assert.Equal(t, 0, f.metrics.RoundsPaired())
	})

	t.Run("notification failure is reported", func(t *testing.T) {
		f := newFixture()
		f.store.SwissPairingsFunc = func(ctx context.Context) ([]tournament.Pairing, error) {
			return pairings, nil
		}
		notifyErr := errors.New("slack down")
		f.notifier.SendPairingsFunc = func(p []tournament.Pairing, dryRun bool) error {
			return notifyErr
		}

		got, err := f.p.AnnounceRound(context.Background(), false)
		assert.ErrorIs(t, err, notifyErr)
		assert.Equal(t, pairings, got)
	})

	t.Run("dry run is passed to the notifier", func(t *testing.T) {
		f := newFixture()
		_, err := f.p.AnnounceRound(context.Background(), true)
		require.NoError(t, err)
		require.Len(t, f.notifier.SendPairingsCalls, 1)
		assert.True(t, f.notifier.SendPairingsCalls[0].DryRun)
		assert.Empty(t, f.pubsub.SendMessageCalls)
	})
}

func TestProcessor_AnnounceStandings(t *testing.T) {
	f := newFixture()
	standings := []tournament.Standing{{ID: 1, Name: "A", Wins: 1, Matches: 1}}
	f.store.PlayerStandingsFunc = func(ctx context.Context) ([]tournament.Standing, error) {
		return standings, nil
	}

	got, err := f.p.AnnounceStandings(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, standings, got)
	require.Len(t, f.notifier.SendStandingsCalls, 1)
	assert.Equal(t, standings, f.notifier.SendStandingsCalls[0].Standings)
	assert.Equal(t, 1, f.metrics.StoreObservations("player_standings"))
}

func TestProcessor_AnnounceStandings_EmptyField(t *testing.T) {
	t.Run("announces an empty, non-nil table", func(t *testing.T) {
		f := newFixture()

		got, err := f.p.AnnounceStandings(context.Background(), true)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		require.Len(t, f.notifier.SendStandingsCalls, 1)
	})

	t.Run("notifier failure still returns the standings", func(t *testing.T) {
		f := newFixture()
		f.notifier.SendStandingsFunc = func(standings []tournament.Standing, dryRun bool) error {
			return errors.New("slack down")
		}

		got, err := f.p.AnnounceStandings(context.Background(), false)
		assert.ErrorContains(t, err, "slack down")
		assert.NotNil(t, got)
	})

	t.Run("store errors return no standings", func(t *testing.T) {
		f := newFixture()
		f.store.PlayerStandingsFunc = func(ctx context.Context) ([]tournament.Standing, error) {
			return nil, errors.New("database is locked")
		}

		got, err := f.p.AnnounceStandings(context.Background(), false)
		assert.Error(t, err)
		assert.Nil(t, got)
		assert.Empty(t, f.notifier.SendStandingsCalls)
	})
}

func TestProcessor_Reset(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.p.ResetMatches(context.Background(), false))
	require.NoError(t, f.p.ResetPlayers(context.Background(), false))

	assert.Equal(t, 1, f.store.DeleteMatchesCalls)
	assert.Equal(t, 1, f.store.DeletePlayersCalls)
	require.Len(t, f.pubsub.SendMessageCalls, 2)
	assert.Equal(t, "matches", f.pubsub.SendMessageCalls[0].Data.(pubsub.TournamentReset).Scope)
	assert.Equal(t, "players", f.pubsub.SendMessageCalls[1].Data.(pubsub.TournamentReset).Scope)
}
