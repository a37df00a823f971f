package matchmaking

import "github.com/mauv0809/court-planner/internal/reservation"

// Planner turns a snapshot of the club's state into a replacement set of
// matches for a planning scope. It performs no I/O and never fails: courts
// that cannot be filled are skipped.
type Planner interface {
	// PlanAll plans every slot of the season using the full match history.
	PlanAll(snap Snapshot) Plan
	// PlanWeek plans the slots of one date. Matches already stored on that
	// date are left out of the history since they are about to be replaced.
	PlanWeek(snap Snapshot, date string) Plan
}

// Roster is the score table the planner balances on.
type Roster interface {
	Names() []string
	Score(name string) int
}

// Season provides the slots a plan covers.
type Season interface {
	Slots() []reservation.Slot
	SlotsOn(date string) []reservation.Slot
}
