package pubsub

import (
	"context"
	"testing"

	"github.com/mauv0809/swiss-tournament/internal/pairing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestTopicName(t *testing.T) {
	assert.Equal(t, "tournament-match-reported", TopicName("tournament", EventMatchReported))
	assert.Equal(t, "round-paired", TopicName("", EventRoundPaired))
}

func TestNew_WithoutProjectLogsOnly(t *testing.T) {
	c, err := New(context.Background(), "", "tournament")
	require.NoError(t, err)
	defer c.Close()

	err = c.SendMessage(context.Background(), EventMatchReported, MatchReported{EventID: "e1", Winner: 1, Loser: 2})
	assert.NoError(t, err)
}

func TestProcessMessage_DecodesRoundPaired(t *testing.T) {
	c := &logClient{}
	sent := RoundPaired{
		EventID: "e2",
		Pairings: []pairing.Pairing{
			{ID1: 1, Name1: "A", ID2: 2, Name2: "B"},
			{ID1: 3, Name1: "C"},
		},
		PairedAt: 1700000000,
	}
	data, err := msgpack.Marshal(sent)
	require.NoError(t, err)

	var got RoundPaired
	require.NoError(t, c.ProcessMessage(data, &got))
	assert.Equal(t, sent, got)
	assert.True(t, got.Pairings[1].IsBye())
}

func TestProcessMessage_RejectsGarbage(t *testing.T) {
	c := &logClient{}
	var got MatchReported
	assert.Error(t, c.ProcessMessage([]byte{0xc1}, &got))
}
