package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlanRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "court_plan_runs_total",
			Help: "The total number of planning runs, by scope.",
		}, []string{"scope"}),
		MatchesPlanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "court_matches_planned_total",
			Help: "The total number of matches produced by the planner.",
		}),
		CourtsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "court_courts_skipped_total",
			Help: "The total number of courts left empty for lack of players.",
		}),
		PlanningDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "court_planning_duration_seconds",
			Help:    "The duration of a planning run including the store write.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "court_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "court_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "court_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlanRuns,
		s.MatchesPlanned,
		s.CourtsSkipped,
		s.PlanningDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPlanRuns(scope string) {
	s.PlanRuns.WithLabelValues(scope).Inc()
}

func (s *Service) AddMatchesPlanned(n int) {
	s.MatchesPlanned.Add(float64(n))
}

func (s *Service) AddCourtsSkipped(n int) {
	s.CourtsSkipped.Add(float64(n))
}

func (s *Service) ObservePlanningDuration(duration float64) {
	s.PlanningDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
