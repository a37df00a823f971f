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

type Server struct {
	Store          reservation.Store
	Players        club.Store
	Inbox          inbox.Inbox
	Roster         *club.Roster
	Season         *club.Season
	Metrics        metrics.Metrics
	Counters       metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
	inngest        inngest.InngestClient
}

// courtRequest addresses one court in one slot.
type courtRequest struct {
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	Court    int    `json:"court"`
}

type joinRequest struct {
	courtRequest
	Player    string                `json:"player"`
	MatchType reservation.MatchType `json:"match_type"`
	Category  reservation.Category  `json:"category"`
}

type leaveRequest struct {
	courtRequest
	Player string `json:"player"`
}

type resultRequest struct {
	courtRequest
	Winners []string `json:"winners"`
}

type availabilityRequest struct {
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	Player   string `json:"player"`
}

type playerRequest struct {
	Player string `json:"player"`
}

type availabilityResponse struct {
	Player    string `json:"player"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	Available bool   `json:"available"`
}

type seasonResponse struct {
	Dates     []string `json:"dates"`
	TimeSlots []string `json:"time_slots"`
	Courts    int      `json:"courts"`
}

type messagesResponse struct {
	Player   string          `json:"player"`
	Unread   int             `json:"unread"`
	Messages []inbox.Message `json:"messages"`
}

type errorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}
