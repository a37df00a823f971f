package reservation

// Store persists reservations and availability. ReplaceAll and ReplaceDate
// swap a whole planning scope in one transaction.
type Store interface {
	GetAll() ([]Reservation, error)
	GetByDate(date string) ([]Reservation, error)
	Get(date, timeSlot string, court int) (*Reservation, error)
	ReplaceAll(reservations []Reservation) error
	ReplaceDate(date string, reservations []Reservation) error
	ClearAll() error

	GetAvailability() (Availability, error)
	SetAvailability(slot Slot, player string, available bool) error
	ToggleAvailability(slot Slot, player string) (bool, error)

	// Join seats player on a court, creating the reservation with the given
	// type and category when the court is still empty. It reports whether the
	// match became full for the first time.
	Join(slot Slot, court int, matchType MatchType, category Category, player string) (*Reservation, bool, error)
	Leave(slot Slot, court int, player string) (*Reservation, error)
	Remove(slot Slot, court int) error
	MarkWinner(slot Slot, court int, winners []string) (*Reservation, error)
}
