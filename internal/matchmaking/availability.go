package matchmaking

import (
	"github.com/mauv0809/court-planner/internal/reservation"
	"github.com/samber/lo"
)

// AvailablePlayers returns the roster players that did not opt out of slot,
// in roster order.
func AvailablePlayers(roster Roster, availability reservation.Availability, slot reservation.Slot) []string {
	return lo.Filter(roster.Names(), func(name string, _ int) bool {
		return availability.IsAvailable(slot, name)
	})
}
