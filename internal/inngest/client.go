package inngest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/inngest/inngestgo"
	"github.com/inngest/inngestgo/step"
)

// New registers the durable functions on the given client.
func New(inngestClient inngestgo.Client, planner Planner) (InngestClient, error) {
	c := &client{
		inngestClient: inngestClient,
		planner:       planner,
	}
	if _, err := c.createPlanWeekFunction(); err != nil {
		return nil, err
	}
	return c, nil
}

func (i *client) createPlanWeekFunction() (inngestgo.ServableFunction, error) {
	config := inngestgo.FunctionOpts{
		ID:   planWeekFunction,
		Name: "Plan week",
	}
	f, err := inngestgo.CreateFunction(
		i.inngestClient,
		config,
		inngestgo.EventTrigger(EventPlanWeek, nil),
		func(ctx context.Context, input inngestgo.Input[PlanWeekData]) (any, error) {
			data := input.Event.Data
			result, err := step.Run(ctx, "plan-week", func(ctx context.Context) (PlanWeekResult, error) {
				return planWeek(i.planner, data)
			})
			if err != nil {
				return nil, err
			}
			log.Info("Plan week function finished", "date", result.Date, "matches", result.Matches)
			return result, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan-week function: %w", err)
	}
	return f, nil
}

// planWeek is the body of the plan-week step.
func planWeek(planner Planner, data PlanWeekData) (PlanWeekResult, error) {
	if data.Date == "" {
		return PlanWeekResult{}, errors.New("plan-week event has no date")
	}
	plan, err := planner.PlanWeek(data.Date, data.DryRun)
	if err != nil {
		return PlanWeekResult{}, fmt.Errorf("failed to plan week %s: %w", data.Date, err)
	}
	return PlanWeekResult{
		Date:          data.Date,
		Matches:       len(plan.Reservations),
		SkippedCourts: plan.SkippedCourts,
		DryRun:        data.DryRun,
	}, nil
}

func (i *client) Serve() http.Handler {
	return i.inngestClient.Serve()
}

func (i *client) SendPlanWeek(ctx context.Context, date string, dryRun bool) error {
	id, err := i.inngestClient.Send(ctx, inngestgo.Event{
		Name: EventPlanWeek,
		Data: map[string]any{"date": date, "dry_run": dryRun},
	})
	if err != nil {
		return fmt.Errorf("failed to send %s event: %w", EventPlanWeek, err)
	}
	log.Info("Sent plan-week event", "id", id, "date", date, "dry_run", dryRun)
	return nil
}
