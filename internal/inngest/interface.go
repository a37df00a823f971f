package inngest

import (
	"context"
	"net/http"

	"github.com/mauv0809/court-planner/internal/matchmaking"
)

type InngestClient interface {
	Serve() http.Handler
	SendPlanWeek(ctx context.Context, date string, dryRun bool) error
}

// Planner is the part of the processor the durable functions drive.
type Planner interface {
	PlanWeek(date string, dryRun bool) (matchmaking.Plan, error)
}
