package processor

import (
	"github.com/mauv0809/court-planner/internal/inbox"
	"github.com/mauv0809/court-planner/internal/notifier"
	"github.com/mauv0809/court-planner/internal/reservation"
)

// Store defines the reservation operations required by the processor.
type Store interface {
	GetAll() ([]reservation.Reservation, error)
	GetByDate(date string) ([]reservation.Reservation, error)
	GetAvailability() (reservation.Availability, error)
	ReplaceAll(reservations []reservation.Reservation) error
	ReplaceDate(date string, reservations []reservation.Reservation) error
	Join(slot reservation.Slot, court int, matchType reservation.MatchType, category reservation.Category, player string) (*reservation.Reservation, bool, error)
	MarkWinner(slot reservation.Slot, court int, winners []string) (*reservation.Reservation, error)
}

// Inbox defines the inbox operations required by the processor.
type Inbox interface {
	Push(recipient, text string) (inbox.Message, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}

// Season tells which dates can be planned.
type Season interface {
	Contains(date string) bool
}
