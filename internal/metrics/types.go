package metrics

import (
	"database/sql"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Service holds all the Prometheus metrics for the application.
type Service struct {
	PlanRuns           *prometheus.CounterVec
	MatchesPlanned     prometheus.Counter
	CourtsSkipped      prometheus.Counter
	PlanningDuration   prometheus.Histogram
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

// store handles metric-related database operations.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// Keys of the persistent counters shown on /stats.
const (
	KeySeasonPlans    = "season_plans"
	KeyWeekPlans      = "week_plans"
	KeyMatchesPlanned = "matches_planned"
	KeyJoins          = "court_joins"
	KeyResults        = "results_recorded"
	KeyInboxMessages  = "inbox_messages"
)
