package reservation

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// store handles database operations for reservations and availability.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new reservation Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

const selectReservation = `
	SELECT date, time_slot, court, match_type, category, players_json, result_json, notified_full
	FROM reservations
`

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *store) GetAll() ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return queryReservations(s.db, selectReservation+` ORDER BY date, time_slot, court`)
}

func (s *store) GetByDate(date string) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return queryReservations(s.db, selectReservation+` WHERE date = ? ORDER BY time_slot, court`, date)
}

func (s *store) Get(date, timeSlot string, court int) (*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getReservation(s.db, Slot{Date: date, TimeSlot: timeSlot}, court)
}

// ReplaceAll deletes every stored reservation and inserts the given set.
func (s *store) ReplaceAll(reservations []Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replace(`DELETE FROM reservations`, nil, reservations)
}

// ReplaceDate deletes the reservations of one date and inserts the given set.
// Reservations of other dates are left untouched.
func (s *store) ReplaceDate(date string, reservations []Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range reservations {
		if r.Date != date {
			return fmt.Errorf("reservation for %s does not belong to date %s", r.Date, date)
		}
	}
	return s.replace(`DELETE FROM reservations WHERE date = ?`, []any{date}, reservations)
}

func (s *store) replace(deleteQuery string, deleteArgs []any, reservations []Reservation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(deleteQuery, deleteArgs...)
	if err != nil {
		return fmt.Errorf("failed to delete reservations in scope: %w", err)
	}
	for _, r := range reservations {
		if err := upsertReservation(tx, r); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replacement: %w", err)
	}

	deleted, _ := res.RowsAffected()
	log.Info("Replaced reservations", "deleted", deleted, "inserted", len(reservations))
	return nil
}

func (s *store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM reservations`); err != nil {
		return fmt.Errorf("failed to clear reservations: %w", err)
	}
	log.Info("Cleared all reservations")
	return nil
}

func (s *store) GetAvailability() (Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT date, time_slot, player, available FROM availability`)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	availability := make(Availability)
	for rows.Next() {
		var slot Slot
		var player string
		var available bool
		if err := rows.Scan(&slot.Date, &slot.TimeSlot, &player, &available); err != nil {
			return nil, fmt.Errorf("failed to scan availability row: %w", err)
		}
		availability.Set(slot, player, available)
	}
	return availability, rows.Err()
}

func (s *store) SetAvailability(slot Slot, player string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return setAvailability(s.db, slot, player, available)
}

func (s *store) ToggleAvailability(slot Slot, player string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := isAvailable(tx, slot, player)
	if err != nil {
		return false, err
	}
	if err := setAvailability(tx, slot, player, !current); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit availability: %w", err)
	}
	log.Info("Toggled availability", "player", player, "slot", slot, "available", !current)
	return !current, nil
}

func (s *store) Join(slot Slot, court int, matchType MatchType, category Category, player string) (*Reservation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	available, err := isAvailable(tx, slot, player)
	if err != nil {
		return nil, false, err
	}
	if !available {
		return nil, false, ErrNotAvailable
	}

	inSlot, err := queryReservations(tx, selectReservation+` WHERE date = ? AND time_slot = ?`, slot.Date, slot.TimeSlot)
	if err != nil {
		return nil, false, err
	}
	var current *Reservation
	for i := range inSlot {
		if inSlot[i].Court == court {
			current = &inSlot[i]
			continue
		}
		if inSlot[i].Has(player) {
			return nil, false, ErrAlreadyInSlot
		}
	}
	if current == nil {
		if !matchType.Valid() || !category.Valid() {
			return nil, false, fmt.Errorf("invalid match type %q or category %q", matchType, category)
		}
		open := NewOpen(slot, court, matchType, category)
		current = &open
	}

	firstFull, err := current.Join(player)
	if err != nil {
		return nil, false, err
	}
	if err := upsertReservation(tx, *current); err != nil {
		return nil, false, err
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit join: %w", err)
	}
	log.Info("Player joined court", "player", player, "slot", slot, "court", court, "full", current.IsFull())
	return current, firstFull, nil
}

func (s *store) Leave(slot Slot, court int, player string) (*Reservation, error) {
	return s.update(slot, court, func(r *Reservation) error {
		return r.Leave(player)
	})
}

func (s *store) MarkWinner(slot Slot, court int, winners []string) (*Reservation, error) {
	return s.update(slot, court, func(r *Reservation) error {
		return r.MarkWinner(winners...)
	})
}

func (s *store) update(slot Slot, court int, apply func(r *Reservation) error) (*Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	r, err := getReservation(tx, slot, court)
	if err != nil {
		return nil, err
	}
	if err := apply(r); err != nil {
		return nil, err
	}
	if err := upsertReservation(tx, *r); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation update: %w", err)
	}
	return r, nil
}

func (s *store) Remove(slot Slot, court int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM reservations WHERE date = ? AND time_slot = ? AND court = ?`, slot.Date, slot.TimeSlot, court)
	if err != nil {
		return fmt.Errorf("failed to remove reservation: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	log.Info("Removed reservation", "slot", slot, "court", court)
	return nil
}

func getReservation(q queryer, slot Slot, court int) (*Reservation, error) {
	row := q.QueryRow(selectReservation+` WHERE date = ? AND time_slot = ? AND court = ?`, slot.Date, slot.TimeSlot, court)
	r, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return r, nil
}

func queryReservations(q queryer, query string, args ...any) ([]Reservation, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		reservations = append(reservations, *r)
	}
	return reservations, rows.Err()
}

// scanReservation is a helper function to scan a single reservation row.
func scanReservation(scanner interface{ Scan(...any) error }) (*Reservation, error) {
	var r Reservation
	var playersJSON string
	var resultJSON sql.NullString

	err := scanner.Scan(&r.Date, &r.TimeSlot, &r.Court, &r.MatchType, &r.Category, &playersJSON, &resultJSON, &r.NotifiedFull)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(playersJSON), &r.Players); err != nil {
		log.Error("Failed to unmarshal players_json", "error", err, "slot", r.Slot(), "court", r.Court)
	}
	if resultJSON.Valid && resultJSON.String != "" {
		var result Result
		if err := json.Unmarshal([]byte(resultJSON.String), &result); err != nil {
			log.Error("Failed to unmarshal result_json", "error", err, "slot", r.Slot(), "court", r.Court)
		} else {
			r.Result = &result
		}
	}
	return &r, nil
}

func upsertReservation(q queryer, r Reservation) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid reservation %s court %d: %w", r.Slot(), r.Court, err)
	}
	playersJSON, err := json.Marshal(r.Players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}
	var resultJSON sql.NullString
	if r.Result != nil {
		b, err := json.Marshal(r.Result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		resultJSON = sql.NullString{String: string(b), Valid: true}
	}

	_, err = q.Exec(`
		INSERT INTO reservations (date, time_slot, court, match_type, category, players_json, result_json, notified_full, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, time_slot, court) DO UPDATE SET
			match_type = excluded.match_type,
			category = excluded.category,
			players_json = excluded.players_json,
			result_json = excluded.result_json,
			notified_full = excluded.notified_full,
			updated_at = excluded.updated_at;
	`, r.Date, r.TimeSlot, r.Court, string(r.MatchType), string(r.Category), string(playersJSON), resultJSON, r.NotifiedFull, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert reservation %s court %d: %w", r.Slot(), r.Court, err)
	}
	return nil
}

func isAvailable(q queryer, slot Slot, player string) (bool, error) {
	var available bool
	err := q.QueryRow(`SELECT available FROM availability WHERE date = ? AND time_slot = ? AND player = ?`,
		slot.Date, slot.TimeSlot, player).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read availability: %w", err)
	}
	return available, nil
}

func setAvailability(q queryer, slot Slot, player string, available bool) error {
	_, err := q.Exec(`
		INSERT INTO availability (date, time_slot, player, available, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date, time_slot, player) DO UPDATE SET
			available = excluded.available,
			updated_at = excluded.updated_at;
	`, slot.Date, slot.TimeSlot, player, available, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}
	return nil
}
