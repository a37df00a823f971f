package inbox

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new SQL backed Inbox.
func New(db *sql.DB) Inbox {
	return &store{
		db:  db,
		now: time.Now,
	}
}

func (s *store) Push(recipient, text string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:        uuid.New().String(),
		Recipient: recipient,
		Text:      text,
		CreatedAt: s.now(),
	}
	_, err := s.db.Exec(`INSERT INTO messages (id, recipient, text, created_at, read) VALUES (?, ?, ?, ?, 0)`,
		msg.ID, msg.Recipient, msg.Text, msg.CreatedAt.UnixNano())
	if err != nil {
		return Message{}, fmt.Errorf("failed to insert message for %s: %w", recipient, err)
	}
	log.Debug("Pushed inbox message", "recipient", recipient, "id", msg.ID)
	return msg, nil
}

func (s *store) ListFor(recipient string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, recipient, text, created_at, read
		FROM messages
		WHERE recipient = ?
		ORDER BY created_at DESC, rowid DESC
	`, recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.Recipient, &m.Text, &createdAt, &m.Read); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.CreatedAt = time.Unix(0, createdAt)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *store) UnreadCount(recipient string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM messages WHERE recipient = ? AND read = 0`, recipient).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return n, nil
}

func (s *store) MarkAllRead(recipient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`UPDATE messages SET read = 1 WHERE recipient = ?`, recipient); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}

func (s *store) ClearFor(recipient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM messages WHERE recipient = ?`, recipient); err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}
	log.Info("Cleared inbox", "recipient", recipient)
	return nil
}
