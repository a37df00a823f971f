package http

import (
	"net/http"

	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/config"
	"github.com/mauv0809/court-planner/internal/inbox"
	"github.com/mauv0809/court-planner/internal/inngest"
	"github.com/mauv0809/court-planner/internal/metrics"
	"github.com/mauv0809/court-planner/internal/notifier"
	"github.com/mauv0809/court-planner/internal/processor"
	"github.com/mauv0809/court-planner/internal/pubsub"
	"github.com/mauv0809/court-planner/internal/reservation"
)

// NewServer wires the handlers. inngestClient may be nil when no Inngest app
// is configured.
func NewServer(store reservation.Store, players club.Store, messages inbox.Inbox, clubCfg *config.Club, metricsSvc metrics.Metrics, counters metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient, inngestClient inngest.InngestClient) *Server {
	server := &Server{
		Store:          store,
		Players:        players,
		Inbox:          messages,
		Roster:         clubCfg.Roster,
		Season:         clubCfg.Season,
		Metrics:        metricsSvc,
		Counters:       counters,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
		inngest:        inngestClient,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, s.adminMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("GET /season", Chain(s.SeasonHandler(), paramsMiddleware))

	s.Router.Handle("GET /reservations", Chain(s.ListReservationsHandler(), paramsMiddleware))
	s.Router.Handle("POST /reservations/join", Chain(s.JoinHandler(), paramsMiddleware))
	s.Router.Handle("POST /reservations/leave", Chain(s.LeaveHandler(), paramsMiddleware))
	s.Router.Handle("POST /reservations/result", Chain(s.ResultHandler(), paramsMiddleware))
	s.Router.Handle("POST /reservations/remove", Chain(s.RemoveHandler(), paramsMiddleware, s.adminMiddleware))
	s.Router.Handle("POST /reservations/clear", Chain(s.ClearHandler(), paramsMiddleware, s.adminMiddleware))
	s.Router.Handle("POST /availability/toggle", Chain(s.ToggleAvailabilityHandler(), paramsMiddleware))

	s.Router.Handle("POST /plan/season", Chain(s.PlanSeasonHandler(), paramsMiddleware, s.adminMiddleware))
	s.Router.Handle("POST /plan/week", Chain(s.PlanWeekHandler(), paramsMiddleware, s.adminMiddleware))

	s.Router.Handle("GET /ladder/singles", Chain(s.LadderHandler(reservation.Single), paramsMiddleware))
	s.Router.Handle("GET /ladder/doubles", Chain(s.LadderHandler(reservation.Double), paramsMiddleware))
	s.Router.Handle("POST /ladder/singles/post", Chain(s.PostLadderHandler(reservation.Single), paramsMiddleware, s.adminMiddleware))
	s.Router.Handle("POST /ladder/doubles/post", Chain(s.PostLadderHandler(reservation.Double), paramsMiddleware, s.adminMiddleware))

	s.Router.Handle("GET /messages", Chain(s.ListMessagesHandler(), paramsMiddleware))
	s.Router.Handle("POST /messages/read", Chain(s.MarkMessagesReadHandler(), paramsMiddleware))
	s.Router.Handle("POST /messages/clear", Chain(s.ClearMessagesHandler(), paramsMiddleware))

	s.Router.Handle("GET /export", Chain(s.ExportHandler(), paramsMiddleware))

	s.Router.Handle("POST /pubsub/schedule-replaced", Chain(s.ScheduleReplacedHandler(), paramsMiddleware))
	s.Router.Handle("POST /slack/command/ladder", Chain(s.LadderCommandHandler(), paramsMiddleware, s.slackVerifyMiddleware))

	if s.inngest != nil {
		s.Router.Handle("/api/inngest", s.inngest.Serve())
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
