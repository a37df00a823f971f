package inngest

import (
	"context"
	"net/http"
	"sync"
)

// MockClient records plan-week events instead of sending them.
type MockClient struct {
	mu             sync.Mutex
	SendPlanWeekFn func(date string, dryRun bool) error
	Sent           []PlanWeekData
}

func NewMock() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Serve() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func (m *MockClient) SendPlanWeek(ctx context.Context, date string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, PlanWeekData{Date: date, DryRun: dryRun})
	if m.SendPlanWeekFn != nil {
		return m.SendPlanWeekFn(date, dryRun)
	}
	return nil
}
