package processor

import (
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/court-planner/internal/matchmaking"
	"github.com/mauv0809/court-planner/internal/metrics"
	"github.com/mauv0809/court-planner/internal/pubsub"
)

var ErrDateOutsideSeason = errors.New("date is not a play date of the season")

// Processor runs planning passes and the side effects of schedule changes.
type Processor struct {
	store    Store
	planner  matchmaking.Planner
	season   Season
	inbox    Inbox
	notifier Notifier
	metrics  metrics.Metrics
	counters metrics.MetricsStore
	pubsub   pubsub.PubSubClient

	// mu serializes snapshot-plan-replace so concurrent runs cannot interleave.
	mu  sync.Mutex
	now func() time.Time
}

// ScheduleReplaced is published after a plan has been written.
type ScheduleReplaced struct {
	Scope     string   `msgpack:"scope" json:"scope"`
	Dates     []string `msgpack:"dates" json:"dates"`
	Matches   int      `msgpack:"matches" json:"matches"`
	PlannedAt int64    `msgpack:"planned_at" json:"planned_at"`
}
