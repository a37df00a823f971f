package club

import (
	"database/sql"
	"sync"
	"time"
)

// store handles all database operations for the club's players.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a roster member with a fixed skill score.
type Player struct {
	Name    string `json:"name" yaml:"name"`
	Score   int    `json:"score" yaml:"score"`
	IsAdmin bool   `json:"is_admin,omitempty" yaml:"-"`
}

// Roster is the closed, immutable set of players known to the club.
type Roster struct {
	players []Player
	index   map[string]int
	admin   string
}

// Season is the list of weekly play dates with their evening time slots.
type Season struct {
	start     time.Time
	weeks     int
	timeSlots []string
	courts    int
}

// Standing is one row of a ladder.
type Standing struct {
	Player        string `json:"player"`
	Wins          int    `json:"wins"`
	Matches       int    `json:"matches"`
	WinPercentage int    `json:"win_percentage"`
}

// Suggestion is a roster player that resembles an unresolved name.
type Suggestion struct {
	Player     string
	Confidence float64
}
