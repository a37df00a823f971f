package inbox

import (
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// store handles inbox database operations.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Message is one inbox entry.
type Message struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// MatchFullText is the message a player receives when a match they are in
// fills up. Dates are YYYY-MM-DD and rendered dd/MM.
func MatchFullText(date, timeSlot string, court int) string {
	day := date
	if t, err := time.Parse("2006-01-02", date); err == nil {
		day = t.Format("02/01")
	}
	return fmt.Sprintf("Match is volledig: %s %s (Terrein %d).", day, timeSlot, court)
}
