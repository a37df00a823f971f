package inngest

import (
	"github.com/inngest/inngestgo"
)

const (
	EventPlanWeek    = "schedule/plan-week"
	planWeekFunction = "plan-week"
)

type client struct {
	inngestClient inngestgo.Client
	planner       Planner
}

// PlanWeekData is the payload of a plan-week event.
type PlanWeekData struct {
	Date   string `json:"date"`
	DryRun bool   `json:"dry_run"`
}

// PlanWeekResult is what the plan-week function reports back.
type PlanWeekResult struct {
	Date          string `json:"date"`
	Matches       int    `json:"matches"`
	SkippedCourts int    `json:"skipped_courts"`
	DryRun        bool   `json:"dry_run"`
}
