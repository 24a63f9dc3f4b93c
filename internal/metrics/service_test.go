package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncPlayersRegistered()
	svc.IncPlayersRegistered()
	svc.IncMatchesReported()
	svc.IncRoundsPaired()
	svc.IncEventsFailed()
	svc.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.PlayersRegistered))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.MatchesReported))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.RoundsPaired))
	assert.Equal(t, 0.0, testutil.ToFloat64(svc.EventsPublished))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.EventsFailed))
	assert.Equal(t, 1.5, testutil.ToFloat64(svc.StartupTimeSeconds))
}

func TestService_StoreDurationIsLabelled(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.ObserveStoreDuration("player_standings", 0.002)
	svc.ObserveStoreDuration("report_match", 0.004)

	assert.Equal(t, 2, testutil.CollectAndCount(svc.StoreDuration))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.IncMatchesReported()

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "swiss_matches_reported_total 1")
}
