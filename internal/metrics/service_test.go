package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncPlanRuns("season")
	s.IncPlanRuns("week")
	s.IncPlanRuns("week")
	s.AddMatchesPlanned(6)
	s.AddCourtsSkipped(1)
	s.ObservePlanningDuration(0.02)
	s.IncSlackNotifSent()
	s.SetStartupTime(1.5)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 7)

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `court_plan_runs_total{scope="season"} 1`)
	assert.Contains(t, body, `court_plan_runs_total{scope="week"} 2`)
	assert.Contains(t, body, "court_matches_planned_total 6")
	assert.Contains(t, body, "court_courts_skipped_total 1")
	assert.Contains(t, body, "court_planning_duration_seconds_count 1")
	assert.Contains(t, body, "court_slack_notifications_sent_total 1")
	assert.Contains(t, body, "court_startup_duration_seconds 1.5")
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.IncPlanRuns("week")
	m.AddMatchesPlanned(3)
	m.AddMatchesPlanned(2)
	m.IncSlackNotifFailed()

	assert.Equal(t, 1, m.PlanRuns("week"))
	assert.Equal(t, 0, m.PlanRuns("season"))
	assert.Equal(t, 5, m.MatchesPlanned())
	assert.Equal(t, 1, m.SlackNotifFailed())
}
