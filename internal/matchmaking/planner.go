package matchmaking

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-planner/internal/reservation"
)

type planner struct {
	roster Roster
	season Season
	jitter Jitter
	groups GroupPattern
}

// NewPlanner creates a Planner over an immutable roster and season. By
// default it uses a time-seeded jitter and AlternatingGroups.
func NewPlanner(roster Roster, season Season, opts ...Option) Planner {
	p := &planner{
		roster: roster,
		season: season,
		jitter: RandomJitter(rand.New(rand.NewSource(time.Now().UnixNano()))),
		groups: AlternatingGroups,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *planner) PlanAll(snap Snapshot) Plan {
	history := BuildHistory(snap.Reservations, "")
	plan := p.run(p.season.Slots(), history, snap.Availability)
	plan.Scope = ScopeSeason
	log.Info("Planned season", "matches", len(plan.Reservations), "skipped_courts", plan.SkippedCourts, "history_pairs", history.Len())
	return plan
}

func (p *planner) PlanWeek(snap Snapshot, date string) Plan {
	history := BuildHistory(snap.Reservations, date)
	plan := p.run(p.season.SlotsOn(date), history, snap.Availability)
	plan.Scope = ScopeWeek
	plan.Date = date
	log.Info("Planned week", "date", date, "matches", len(plan.Reservations), "skipped_courts", plan.SkippedCourts, "history_pairs", history.Len())
	return plan
}

// run plans slots in order. The slot index drives the group pattern and
// counts from zero within the run.
func (p *planner) run(slots []reservation.Slot, history History, availability reservation.Availability) Plan {
	engine := &slotEngine{roster: p.roster, history: history, jitter: p.jitter}
	plan := Plan{Reservations: []reservation.Reservation{}, Slots: len(slots)}

	for i, slot := range slots {
		available := AvailablePlayers(p.roster, availability, slot)
		matches, skipped := engine.assign(slot, p.groups(i), available)
		plan.Reservations = append(plan.Reservations, matches...)
		plan.SkippedCourts += skipped
	}
	return plan
}
