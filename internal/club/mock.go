package club

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SyncRosterFunc    func(roster *Roster) error
	GetAllPlayersFunc func() ([]Player, error)
	IsKnownPlayerFunc func(name string) bool

	// Call records
	SyncRosterCalls []*Roster
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) SyncRoster(roster *Roster) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SyncRosterCalls = append(m.SyncRosterCalls, roster)
	if m.SyncRosterFunc != nil {
		return m.SyncRosterFunc(roster)
	}
	return nil
}

func (m *MockStore) GetAllPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	if n := len(m.SyncRosterCalls); n > 0 {
		return m.SyncRosterCalls[n-1].Players(), nil
	}
	return nil, nil
}

func (m *MockStore) IsKnownPlayer(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.IsKnownPlayerFunc != nil {
		return m.IsKnownPlayerFunc(name)
	}
	if n := len(m.SyncRosterCalls); n > 0 {
		return m.SyncRosterCalls[n-1].Has(name)
	}
	return false
}
