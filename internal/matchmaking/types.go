package matchmaking

import "github.com/mauv0809/court-planner/internal/reservation"

// Scope names the part of the schedule a plan replaces.
type Scope string

const (
	ScopeSeason Scope = "season"
	ScopeWeek   Scope = "week"
)

// Cost weights. A point of skill difference weighs far more in singles, and
// a repeated singles opponent costs as much as five points of difference.
const (
	SinglesScoreWeight   = 12
	SinglesHistoryWeight = 60
	DoublesScoreWeight   = 15
	DoublesHistoryWeight = 1
	MaxJitter            = 0.5
)

// Snapshot is the state a planning run reads. It is not modified.
type Snapshot struct {
	Reservations []reservation.Reservation
	Availability reservation.Availability
}

// Plan is the replacement set for a scope. Date is set for week plans only.
type Plan struct {
	Scope         Scope                     `json:"scope"`
	Date          string                    `json:"date,omitempty"`
	Reservations  []reservation.Reservation `json:"reservations"`
	SkippedCourts int                       `json:"skipped_courts"`
	Slots         int                       `json:"slots"`
}

// Dates returns the distinct dates covered by the plan's matches, in order.
func (p Plan) Dates() []string {
	var dates []string
	seen := make(map[string]bool)
	for _, r := range p.Reservations {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	return dates
}

// Jitter returns a small random tie-breaker added to every candidate cost.
type Jitter func() float64

// GroupPattern returns the court group sizes for the slot at slotIndex. A 4
// is a doubles court, a 2 a singles court.
type GroupPattern func(slotIndex int) []int

// Split is one way of dividing four players into two teams.
type Split struct {
	A [2]string
	B [2]string
}
