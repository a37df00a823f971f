package notifier

import (
	"sync"

	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/reservation"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendWeekScheduleFunc func(date string, reservations []reservation.Reservation, dryRun bool) error

	// Call records
	SendWeekScheduleCalls []SendWeekScheduleCall
	SendLadderCalls       []struct {
		Title     string
		Standings []club.Standing
	}
	LastLadderResponse         any
	LastPlayerStandingResponse any
	LastPlayerNotFoundResponse any
}

// SendWeekScheduleCall holds the arguments for a call to SendWeekSchedule.
type SendWeekScheduleCall struct {
	Date         string
	Reservations []reservation.Reservation
	DryRun       bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWeekScheduleCalls = nil
	m.SendLadderCalls = nil
	m.LastLadderResponse = nil
	m.LastPlayerStandingResponse = nil
	m.LastPlayerNotFoundResponse = nil
}

func (m *Mock) SendWeekSchedule(date string, reservations []reservation.Reservation, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWeekScheduleCalls = append(m.SendWeekScheduleCalls, SendWeekScheduleCall{date, reservations, dryRun})
	if m.SendWeekScheduleFunc != nil {
		return m.SendWeekScheduleFunc(date, reservations, dryRun)
	}
	return nil
}

func (m *Mock) SendLadder(title string, standings []club.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLadderCalls = append(m.SendLadderCalls, struct {
		Title     string
		Standings []club.Standing
	}{title, standings})
	return nil
}

func (m *Mock) FormatLadderResponse(title string, standings []club.Standing) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	resp := map[string]any{"title": title, "standings": standings}
	m.LastLadderResponse = resp
	return resp, nil
}

func (m *Mock) FormatPlayerStandingResponse(title string, standing club.Standing, position int) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	resp := map[string]any{"title": title, "standing": standing, "position": position}
	m.LastPlayerStandingResponse = resp
	return resp, nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string, suggestions []club.Suggestion) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	resp := map[string]any{"query": query, "suggestions": suggestions}
	m.LastPlayerNotFoundResponse = resp
	return resp, nil
}
