package inbox

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockInbox is an in-memory Inbox for tests. It is safe for concurrent use.
type MockInbox struct {
	mu sync.Mutex

	// Spies for method calls
	PushFunc func(recipient, text string) (Message, error)

	messages []Message

	// Call records
	PushCalls []PushCall
}

// PushCall holds the arguments for a call to Push.
type PushCall struct {
	Recipient string
	Text      string
}

// NewMock creates a new mock instance.
func NewMock() *MockInbox {
	return &MockInbox{}
}

func (m *MockInbox) Push(recipient, text string) (Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PushCalls = append(m.PushCalls, PushCall{Recipient: recipient, Text: text})
	if m.PushFunc != nil {
		return m.PushFunc(recipient, text)
	}
	msg := Message{ID: uuid.New().String(), Recipient: recipient, Text: text, CreatedAt: time.Now()}
	m.messages = append(m.messages, msg)
	return msg, nil
}

func (m *MockInbox) ListFor(recipient string) ([]Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Message{}
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Recipient == recipient {
			out = append(out, m.messages[i])
		}
	}
	return out, nil
}

func (m *MockInbox) UnreadCount(recipient string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.messages {
		if msg.Recipient == recipient && !msg.Read {
			n++
		}
	}
	return n, nil
}

func (m *MockInbox) MarkAllRead(recipient string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.messages {
		if m.messages[i].Recipient == recipient {
			m.messages[i].Read = true
		}
	}
	return nil
}

func (m *MockInbox) ClearFor(recipient string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.messages[:0]
	for _, msg := range m.messages {
		if msg.Recipient != recipient {
			kept = append(kept, msg)
		}
	}
	m.messages = kept
	return nil
}
