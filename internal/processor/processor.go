package processor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-planner/internal/inbox"
	"github.com/mauv0809/court-planner/internal/matchmaking"
	"github.com/mauv0809/court-planner/internal/metrics"
	"github.com/mauv0809/court-planner/internal/pubsub"
	"github.com/mauv0809/court-planner/internal/reservation"
)

// New creates a new Processor. pubsub may be nil when no topic is configured.
func New(store Store, planner matchmaking.Planner, season Season, inbox Inbox, notifier Notifier, metrics metrics.Metrics, counters metrics.MetricsStore, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		store:    store,
		planner:  planner,
		season:   season,
		inbox:    inbox,
		notifier: notifier,
		metrics:  metrics,
		counters: counters,
		pubsub:   pubsub,
		now:      time.Now,
	}
}

// PlanSeason replaces every stored match with a freshly planned season.
func (p *Processor) PlanSeason(dryRun bool) (matchmaking.Plan, error) {
	return p.plan(matchmaking.ScopeSeason, "", dryRun)
}

// PlanWeek replaces the matches of one play date. Other dates are untouched.
func (p *Processor) PlanWeek(date string, dryRun bool) (matchmaking.Plan, error) {
	if !p.season.Contains(date) {
		return matchmaking.Plan{}, fmt.Errorf("%w: %s", ErrDateOutsideSeason, date)
	}
	return p.plan(matchmaking.ScopeWeek, date, dryRun)
}

func (p *Processor) plan(scope matchmaking.Scope, date string, dryRun bool) (matchmaking.Plan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	log.Info("Starting planning run", "scope", scope, "date", date, "dry_run", dryRun)

	snap, err := p.snapshot()
	if err != nil {
		return matchmaking.Plan{}, err
	}

	var plan matchmaking.Plan
	if scope == matchmaking.ScopeSeason {
		plan = p.planner.PlanAll(snap)
	} else {
		plan = p.planner.PlanWeek(snap, date)
	}

	if dryRun {
		log.Info("[Dry Run] Would replace schedule", "scope", scope, "date", date, "matches", len(plan.Reservations))
		return plan, nil
	}

	if scope == matchmaking.ScopeSeason {
		err = p.store.ReplaceAll(plan.Reservations)
	} else {
		err = p.store.ReplaceDate(date, plan.Reservations)
	}
	if err != nil {
		return matchmaking.Plan{}, fmt.Errorf("failed to store %s plan: %w", scope, err)
	}

	p.metrics.IncPlanRuns(string(scope))
	p.metrics.AddMatchesPlanned(len(plan.Reservations))
	p.metrics.AddCourtsSkipped(plan.SkippedCourts)
	p.metrics.ObservePlanningDuration(time.Since(start).Seconds())
	if scope == matchmaking.ScopeSeason {
		p.counters.Increment(metrics.KeySeasonPlans)
	} else {
		p.counters.Increment(metrics.KeyWeekPlans)
	}
	p.counters.IncrementBy(metrics.KeyMatchesPlanned, len(plan.Reservations))

	for _, r := range plan.Reservations {
		p.notifyMatchFull(r)
	}

	dates := plan.Dates()
	if scope == matchmaking.ScopeWeek {
		dates = []string{date}
	}
	p.publish(ScheduleReplaced{
		Scope:     string(scope),
		Dates:     dates,
		Matches:   len(plan.Reservations),
		PlannedAt: p.now().Unix(),
	})

	log.Info("Planning run finished", "scope", scope, "date", date, "matches", len(plan.Reservations), "skipped_courts", plan.SkippedCourts, "duration", time.Since(start))
	return plan, nil
}

func (p *Processor) snapshot() (matchmaking.Snapshot, error) {
	all, err := p.store.GetAll()
	if err != nil {
		return matchmaking.Snapshot{}, fmt.Errorf("failed to read reservations: %w", err)
	}
	availability, err := p.store.GetAvailability()
	if err != nil {
		return matchmaking.Snapshot{}, fmt.Errorf("failed to read availability: %w", err)
	}
	return matchmaking.Snapshot{Reservations: all, Availability: availability}, nil
}

// Join seats player on a court and sends the full-match messages when the
// court fills up for the first time.
func (p *Processor) Join(slot reservation.Slot, court int, matchType reservation.MatchType, category reservation.Category, player string) (*reservation.Reservation, error) {
	r, firstFull, err := p.store.Join(slot, court, matchType, category, player)
	if err != nil {
		return nil, err
	}
	p.counters.Increment(metrics.KeyJoins)
	if firstFull {
		p.notifyMatchFull(*r)
	}
	return r, nil
}

// RecordResult stores the winners of a competitive match.
func (p *Processor) RecordResult(slot reservation.Slot, court int, winners []string) (*reservation.Reservation, error) {
	r, err := p.store.MarkWinner(slot, court, winners)
	if err != nil {
		return nil, err
	}
	p.counters.Increment(metrics.KeyResults)
	log.Info("Recorded result", "slot", slot, "court", court, "winners", winners)
	return r, nil
}

// HandleScheduleReplaced posts the schedule of every replaced date to Slack.
func (p *Processor) HandleScheduleReplaced(event ScheduleReplaced, dryRun bool) error {
	log.Info("Handling schedule-replaced event", "scope", event.Scope, "dates", len(event.Dates))
	var firstErr error
	for _, date := range event.Dates {
		reservations, err := p.store.GetByDate(date)
		if err != nil {
			log.Error("Failed to load schedule", "date", date, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to load schedule for %s: %w", date, err)
			}
			continue
		}
		if err := p.notifier.SendWeekSchedule(date, reservations, dryRun); err != nil {
			log.Error("Failed to send week schedule", "date", date, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// notifyMatchFull pushes one inbox message to every seated player.
func (p *Processor) notifyMatchFull(r reservation.Reservation) {
	text := inbox.MatchFullText(r.Date, r.TimeSlot, r.Court)
	for _, player := range r.Seated() {
		if _, err := p.inbox.Push(player, text); err != nil {
			log.Error("Failed to push match full message", "player", player, "slot", r.Slot(), "court", r.Court, "error", err)
			continue
		}
		p.counters.Increment(metrics.KeyInboxMessages)
	}
}

func (p *Processor) publish(event ScheduleReplaced) {
	if p.pubsub == nil {
		return
	}
	if err := p.pubsub.SendMessage(pubsub.EventScheduleReplaced, event); err != nil {
		log.Error("Failed to publish schedule-replaced event", "error", err, "scope", event.Scope)
	}
}
