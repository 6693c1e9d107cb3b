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

	svc.IncMatchesRecorded()
	svc.IncMatchesRecorded()
	svc.IncSubmissionsRejected("validation")
	svc.IncSubmissionsRejected("unknown_player")
	svc.IncSubmissionsRejected("validation")
	svc.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.MatchesRecorded))
	assert.Equal(t, 2.0, testutil.ToFloat64(svc.SubmissionsRejected.WithLabelValues("validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.SubmissionsRejected.WithLabelValues("unknown_player")))
	assert.Equal(t, 1.5, testutil.ToFloat64(svc.StartupTimeSeconds))
}

func TestMetricsHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.IncStandingsComputed()
	svc.ObserveStandingsDuration(0.002)

	srv := httptest.NewServer(NewMetricsHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "x1_standings_computed_total 1")
	assert.Contains(t, string(body), "x1_standings_duration_seconds_count 1")
}
