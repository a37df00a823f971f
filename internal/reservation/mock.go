package reservation

import (
	"sort"
	"sync"
)

type courtKey struct {
	Slot  Slot
	Court int
}

// MockStore is an in-memory Store for tests. Spies override the default
// behaviour when set. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	reservations map[courtKey]Reservation
	availability Availability

	// Spies for method calls
	ReplaceAllFunc  func(reservations []Reservation) error
	ReplaceDateFunc func(date string, reservations []Reservation) error
	GetAllFunc      func() ([]Reservation, error)

	// Call records
	ReplaceAllCalls  [][]Reservation
	ReplaceDateCalls []struct {
		Date         string
		Reservations []Reservation
	}
	ClearAllCalls int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{
		reservations: make(map[courtKey]Reservation),
		availability: make(Availability),
	}
}

// Seed stores reservations without recording a call.
func (m *MockStore) Seed(reservations ...Reservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range reservations {
		m.reservations[courtKey{r.Slot(), r.Court}] = clone(r)
	}
}

func (m *MockStore) GetAll() ([]Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return m.sorted(func(Reservation) bool { return true }), nil
}

func (m *MockStore) GetByDate(date string) ([]Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(r Reservation) bool { return r.Date == date }), nil
}

func (m *MockStore) Get(date, timeSlot string, court int) (*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reservations[courtKey{Slot{date, timeSlot}, court}]
	if !ok {
		return nil, ErrNotFound
	}
	r = clone(r)
	return &r, nil
}

func (m *MockStore) ReplaceAll(reservations []Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceAllCalls = append(m.ReplaceAllCalls, reservations)
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(reservations)
	}
	m.reservations = make(map[courtKey]Reservation)
	for _, r := range reservations {
		m.reservations[courtKey{r.Slot(), r.Court}] = clone(r)
	}
	return nil
}

func (m *MockStore) ReplaceDate(date string, reservations []Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceDateCalls = append(m.ReplaceDateCalls, struct {
		Date         string
		Reservations []Reservation
	}{date, reservations})
	if m.ReplaceDateFunc != nil {
		return m.ReplaceDateFunc(date, reservations)
	}
	for k := range m.reservations {
		if k.Slot.Date == date {
			delete(m.reservations, k)
		}
	}
	for _, r := range reservations {
		m.reservations[courtKey{r.Slot(), r.Court}] = clone(r)
	}
	return nil
}

func (m *MockStore) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearAllCalls++
	m.reservations = make(map[courtKey]Reservation)
	return nil
}

func (m *MockStore) GetAvailability() (Availability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(Availability)
	for slot, players := range m.availability {
		for p, v := range players {
			out.Set(slot, p, v)
		}
	}
	return out, nil
}

func (m *MockStore) SetAvailability(slot Slot, player string, available bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.availability.Set(slot, player, available)
	return nil
}

func (m *MockStore) ToggleAvailability(slot Slot, player string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.availability.Toggle(slot, player), nil
}

func (m *MockStore) Join(slot Slot, court int, matchType MatchType, category Category, player string) (*Reservation, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.availability.IsAvailable(slot, player) {
		return nil, false, ErrNotAvailable
	}
	for k, r := range m.reservations {
		if k.Slot == slot && k.Court != court && r.Has(player) {
			return nil, false, ErrAlreadyInSlot
		}
	}
	key := courtKey{slot, court}
	r, ok := m.reservations[key]
	if !ok {
		r = NewOpen(slot, court, matchType, category)
	}
	r = clone(r)
	firstFull, err := r.Join(player)
	if err != nil {
		return nil, false, err
	}
	m.reservations[key] = r
	out := clone(r)
	return &out, firstFull, nil
}

func (m *MockStore) Leave(slot Slot, court int, player string) (*Reservation, error) {
	return m.update(slot, court, func(r *Reservation) error { return r.Leave(player) })
}

func (m *MockStore) MarkWinner(slot Slot, court int, winners []string) (*Reservation, error) {
	return m.update(slot, court, func(r *Reservation) error { return r.MarkWinner(winners...) })
}

func (m *MockStore) update(slot Slot, court int, apply func(r *Reservation) error) (*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := courtKey{slot, court}
	r, ok := m.reservations[key]
	if !ok {
		return nil, ErrNotFound
	}
	r = clone(r)
	if err := apply(&r); err != nil {
		return nil, err
	}
	m.reservations[key] = r
	out := clone(r)
	return &out, nil
}

func (m *MockStore) Remove(slot Slot, court int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := courtKey{slot, court}
	if _, ok := m.reservations[key]; !ok {
		return ErrNotFound
	}
	delete(m.reservations, key)
	return nil
}

func (m *MockStore) sorted(keep func(Reservation) bool) []Reservation {
	var out []Reservation
	for _, r := range m.reservations {
		if keep(r) {
			out = append(out, clone(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].TimeSlot != out[j].TimeSlot {
			return out[i].TimeSlot < out[j].TimeSlot
		}
		return out[i].Court < out[j].Court
	})
	return out
}

func clone(r Reservation) Reservation {
	r.Players = append([]string(nil), r.Players...)
	if r.Result != nil {
		res := *r.Result
		res.Winners = append([]string(nil), res.Winners...)
		res.Losers = append([]string(nil), res.Losers...)
		r.Result = &res
	}
	return r
}
