package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	planRuns          map[string]int
	matchesPlanned    int
	courtsSkipped     int
	planningDurations []float64
	slackNotifSent    int
	slackNotifFailed  int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		planRuns:          make(map[string]int),
		planningDurations: make([]float64, 0),
	}
}

func (m *Mock) IncPlanRuns(scope string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planRuns[scope]++
}

func (m *Mock) AddMatchesPlanned(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesPlanned += n
}

func (m *Mock) AddCourtsSkipped(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courtsSkipped += n
}

func (m *Mock) ObservePlanningDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planningDurations = append(m.planningDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PlanRuns returns the number of times IncPlanRuns was called for scope.
func (m *Mock) PlanRuns(scope string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.planRuns[scope]
}

// MatchesPlanned returns the sum passed to AddMatchesPlanned.
func (m *Mock) MatchesPlanned() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesPlanned
}

// CourtsSkipped returns the sum passed to AddCourtsSkipped.
func (m *Mock) CourtsSkipped() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.courtsSkipped
}

// PlanningDurations returns the observed planning durations.
func (m *Mock) PlanningDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.planningDurations...)
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}

// MockStore is an in-memory MetricsStore.
type MockStore struct {
	mu     sync.Mutex
	values map[string]int
}

func NewMockStore() *MockStore {
	return &MockStore{values: make(map[string]int)}
}

func (m *MockStore) Increment(key string) {
	m.IncrementBy(key, 1)
}

func (m *MockStore) IncrementBy(key string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] += n
}

func (m *MockStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}
