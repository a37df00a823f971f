package club

import (
	"errors"
	"fmt"
	"time"

	"github.com/mauv0809/court-planner/internal/reservation"
)

const (
	DateLayout    = "2006-01-02"
	DefaultCourts = 3
)

// NewSeason returns a season of weeks weekly dates starting at start. The
// club plays exactly two time slots per date.
func NewSeason(start time.Time, weeks int, timeSlots []string, courts int) (*Season, error) {
	if weeks <= 0 {
		return nil, fmt.Errorf("season needs at least one week, got %d", weeks)
	}
	if len(timeSlots) != 2 {
		return nil, fmt.Errorf("season needs exactly two time slots, got %d", len(timeSlots))
	}
	if timeSlots[0] == "" || timeSlots[1] == "" || timeSlots[0] == timeSlots[1] {
		return nil, errors.New("time slots must be distinct and non-empty")
	}
	if courts <= 0 {
		courts = DefaultCourts
	}
	y, m, d := start.Date()
	return &Season{
		start:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		weeks:     weeks,
		timeSlots: append([]string(nil), timeSlots...),
		courts:    courts,
	}, nil
}

// Dates returns the play dates formatted YYYY-MM-DD.
func (s *Season) Dates() []string {
	dates := make([]string, s.weeks)
	for i := range dates {
		dates[i] = s.start.AddDate(0, 0, 7*i).Format(DateLayout)
	}
	return dates
}

func (s *Season) TimeSlots() []string {
	return append([]string(nil), s.timeSlots...)
}

func (s *Season) Courts() int {
	return s.courts
}

// Slots returns every (date, time slot) of the season, date by date.
func (s *Season) Slots() []reservation.Slot {
	slots := make([]reservation.Slot, 0, s.weeks*len(s.timeSlots))
	for _, date := range s.Dates() {
		slots = append(slots, s.SlotsOn(date)...)
	}
	return slots
}

// SlotsOn returns the slots of a single date in time slot order.
func (s *Season) SlotsOn(date string) []reservation.Slot {
	slots := make([]reservation.Slot, len(s.timeSlots))
	for i, ts := range s.timeSlots {
		slots[i] = reservation.Slot{Date: date, TimeSlot: ts}
	}
	return slots
}

// Contains reports whether date is one of the season's play dates.
func (s *Season) Contains(date string) bool {
	for _, d := range s.Dates() {
		if d == date {
			return true
		}
	}
	return false
}

// HasTimeSlot reports whether ts is one of the season's time slots.
func (s *Season) HasTimeSlot(ts string) bool {
	return ts == s.timeSlots[0] || ts == s.timeSlots[1]
}

// HasCourt reports whether court is a valid court number.
func (s *Season) HasCourt(court int) bool {
	return court >= 1 && court <= s.courts
}
