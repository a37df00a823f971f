package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncPlanRuns(scope string)
	AddMatchesPlanned(n int)
	AddCourtsSkipped(n int)
	ObservePlanningDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore keeps counters that survive restarts.
type MetricsStore interface {
	Increment(key string)
	IncrementBy(key string, n int)
	GetAll() (map[string]int, error)
}
