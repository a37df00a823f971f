package reservation

import (
	"errors"
	"fmt"
)

// MatchType tells how many players a court holds.
type MatchType string

const (
	Single MatchType = "single"
	Double MatchType = "double"
)

// Seats returns the number of players a match of this type holds.
func (t MatchType) Seats() int {
	if t == Double {
		return 4
	}
	return 2
}

// Valid reports whether t is a known match type.
func (t MatchType) Valid() bool {
	return t == Single || t == Double
}

// Category separates practice matches from competitive ones. Only
// competitive matches carry a result and count for the ladders.
type Category string

const (
	Training    Category = "training"
	Competitive Category = "wedstrijd"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == Training || c == Competitive
}

// Slot is a (date, time slot) pair. Dates are formatted YYYY-MM-DD.
type Slot struct {
	Date     string `json:"date" msgpack:"date"`
	TimeSlot string `json:"time_slot" msgpack:"time_slot"`
}

func (s Slot) String() string {
	return s.Date + " " + s.TimeSlot
}

// Result of a competitive match. Singles fill Winner/Loser, doubles fill
// Winners/Losers.
type Result struct {
	Winner  string   `json:"winner,omitempty"`
	Loser   string   `json:"loser,omitempty"`
	Winners []string `json:"winners,omitempty"`
	Losers  []string `json:"losers,omitempty"`
}

// Reservation is one match on one court in one slot. Players has exactly
// MatchType.Seats() entries; an empty string is an open seat. For doubles the
// first two players form side A and the last two side B.
type Reservation struct {
	Date         string    `json:"date"`
	TimeSlot     string    `json:"time_slot"`
	Court        int       `json:"court"`
	MatchType    MatchType `json:"match_type"`
	Category     Category  `json:"category"`
	Players      []string  `json:"players"`
	Result       *Result   `json:"result,omitempty"`
	NotifiedFull bool      `json:"notified_full"`
}

var ErrInvalidArity = errors.New("invalid number of players for match type")

// NewSingle builds a fully seated singles match.
func NewSingle(slot Slot, court int, category Category, a, b string) (Reservation, error) {
	r := Reservation{
		Date:      slot.Date,
		TimeSlot:  slot.TimeSlot,
		Court:     court,
		MatchType: Single,
		Category:  category,
		Players:   []string{a, b},
	}
	if err := r.validateFull(); err != nil {
		return Reservation{}, err
	}
	return r, nil
}

// NewDouble builds a fully seated doubles match of side A against side B.
func NewDouble(slot Slot, court int, category Category, sideA, sideB [2]string) (Reservation, error) {
	r := Reservation{
		Date:      slot.Date,
		TimeSlot:  slot.TimeSlot,
		Court:     court,
		MatchType: Double,
		Category:  category,
		Players:   []string{sideA[0], sideA[1], sideB[0], sideB[1]},
	}
	if err := r.validateFull(); err != nil {
		return Reservation{}, err
	}
	return r, nil
}

// NewOpen builds a reservation with every seat still open.
func NewOpen(slot Slot, court int, matchType MatchType, category Category) Reservation {
	return Reservation{
		Date:      slot.Date,
		TimeSlot:  slot.TimeSlot,
		Court:     court,
		MatchType: matchType,
		Category:  category,
		Players:   make([]string, matchType.Seats()),
	}
}

// Slot returns the slot the reservation belongs to.
func (r Reservation) Slot() Slot {
	return Slot{Date: r.Date, TimeSlot: r.TimeSlot}
}

// Seated returns the players on the court, skipping open seats.
func (r Reservation) Seated() []string {
	seated := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		if p != "" {
			seated = append(seated, p)
		}
	}
	return seated
}

// Has reports whether player holds a seat.
func (r Reservation) Has(player string) bool {
	for _, p := range r.Players {
		if p != "" && p == player {
			return true
		}
	}
	return false
}

// IsFull reports whether every seat is taken.
func (r Reservation) IsFull() bool {
	if len(r.Players) != r.MatchType.Seats() {
		return false
	}
	for _, p := range r.Players {
		if p == "" {
			return false
		}
	}
	return true
}

// Sides splits a doubles lineup into its two teams. Singles have one player
// per side.
func (r Reservation) Sides() ([]string, []string) {
	half := len(r.Players) / 2
	return r.Players[:half], r.Players[half:]
}

// Validate checks arity, known enums and that no player holds two seats.
func (r Reservation) Validate() error {
	if !r.MatchType.Valid() {
		return fmt.Errorf("unknown match type %q", r.MatchType)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("unknown category %q", r.Category)
	}
	if r.Court < 1 {
		return fmt.Errorf("invalid court %d", r.Court)
	}
	if len(r.Players) != r.MatchType.Seats() {
		return fmt.Errorf("%w: %s needs %d, got %d", ErrInvalidArity, r.MatchType, r.MatchType.Seats(), len(r.Players))
	}
	seen := make(map[string]bool, len(r.Players))
	for _, p := range r.Players {
		if p == "" {
			continue
		}
		if seen[p] {
			return fmt.Errorf("player %s holds more than one seat", p)
		}
		seen[p] = true
	}
	return nil
}

func (r Reservation) validateFull() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !r.IsFull() {
		return fmt.Errorf("%w: open seat in %s match", ErrInvalidArity, r.MatchType)
	}
	return nil
}
