package club

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new club Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// SyncRoster makes the players table mirror roster: players are upserted with
// their current score and admin flag, players no longer on the roster are
// removed.
func (s *store) SyncRoster(roster *Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, score, is_admin)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			score = excluded.score,
			is_admin = excluded.is_admin;
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare player upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range roster.Players() {
		if _, err := stmt.Exec(p.Name, p.Score, p.IsAdmin); err != nil {
			return fmt.Errorf("failed to upsert player %s: %w", p.Name, err)
		}
	}

	rows, err := tx.Query(`SELECT id FROM players`)
	if err != nil {
		return fmt.Errorf("failed to list players: %w", err)
	}
	var stale []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan player id: %w", err)
		}
		if !roster.Has(id) {
			stale = append(stale, id)
		}
	}
	rows.Close()

	for _, id := range stale {
		if _, err := tx.Exec(`DELETE FROM players WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete player %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roster: %w", err)
	}
	log.Info("Synced roster", "players", roster.Len(), "removed", len(stale))
	return nil
}

// GetAllPlayers returns the stored players, highest score first.
func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, score, is_admin FROM players ORDER BY score DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.Name, &p.Score, &p.IsAdmin); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *store) IsKnownPlayer(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists int
	err := s.db.QueryRow(`SELECT 1 FROM players WHERE id = ?`, name).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		log.Error("Failed to look up player", "player", name, "error", err)
	}
	return err == nil
}
