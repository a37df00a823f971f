package notifier

import (
	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/reservation"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For a freshly planned or replanned date
	SendWeekSchedule(date string, reservations []reservation.Reservation, dryRun bool) error
	// For ladders posted to the channel
	SendLadder(title string, standings []club.Standing, dryRun bool) error

	// For formatting responses for slash commands
	FormatLadderResponse(title string, standings []club.Standing) (any, error)
	FormatPlayerStandingResponse(title string, standing club.Standing, position int) (any, error)
	FormatPlayerNotFoundResponse(query string, suggestions []club.Suggestion) (any, error)
}
