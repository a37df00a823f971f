package reservation_test

import (
	"testing"

	"github.com/mauv0809/court-planner/internal/database"
	"github.com/mauv0809/court-planner/internal/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database with a reservation store.
func setupTestDB(t *testing.T) reservation.Store {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	return reservation.New(db)
}

func mustSingle(t *testing.T, date string, court int, a, b string) reservation.Reservation {
	t.Helper()
	r, err := reservation.NewSingle(reservation.Slot{Date: date, TimeSlot: "18u30-19u30"}, court, reservation.Competitive, a, b)
	require.NoError(t, err)
	return r
}

func TestReplaceAll(t *testing.T) {
	store := setupTestDB(t)

	require.NoError(t, store.ReplaceAll([]reservation.Reservation{
		mustSingle(t, "2025-09-28", 1, "Ruben", "Tibo"),
		mustSingle(t, "2025-10-05", 1, "Seppe", "Aaron"),
	}))
	require.NoError(t, store.ReplaceAll([]reservation.Reservation{
		mustSingle(t, "2025-10-12", 2, "Ruben", "Seppe"),
	}))

	all, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2025-10-12", all[0].Date)
	assert.Equal(t, []string{"Ruben", "Seppe"}, all[0].Players)
	assert.Equal(t, reservation.Competitive, all[0].Category)
}

func TestReplaceDate_LeavesOtherDatesUntouched(t *testing.T) {
	store := setupTestDB(t)

	kept := mustSingle(t, "2025-10-05", 1, "Seppe", "Aaron")
	require.NoError(t, store.ReplaceAll([]reservation.Reservation{
		mustSingle(t, "2025-09-28", 1, "Ruben", "Tibo"),
		mustSingle(t, "2025-09-28", 2, "Gilles", "Remi"),
		kept,
	}))

	require.NoError(t, store.ReplaceDate("2025-09-28", []reservation.Reservation{
		mustSingle(t, "2025-09-28", 3, "Thomas", "Wout"),
	}))

	onDate, err := store.GetByDate("2025-09-28")
	require.NoError(t, err)
	require.Len(t, onDate, 1)
	assert.Equal(t, 3, onDate[0].Court)

	other, err := store.GetByDate("2025-10-05")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, kept.Players, other[0].Players)

	err = store.ReplaceDate("2025-09-28", []reservation.Reservation{kept})
	assert.Error(t, err, "reservations of another date are rejected")
}

func TestJoin_Rules(t *testing.T) {
	store := setupTestDB(t)
	s := reservation.Slot{Date: "2025-09-28", TimeSlot: "18u30-19u30"}

	r, full, err := store.Join(s, 1, reservation.Single, reservation.Competitive, "Ruben")
	require.NoError(t, err)
	assert.False(t, full)
	assert.Equal(t, []string{"Ruben", ""}, r.Players)

	_, _, err = store.Join(s, 2, reservation.Double, reservation.Training, "Ruben")
	assert.ErrorIs(t, err, reservation.ErrAlreadyInSlot)

	require.NoError(t, store.SetAvailability(s, "Tibo", false))
	_, _, err = store.Join(s, 1, reservation.Single, reservation.Competitive, "Tibo")
	assert.ErrorIs(t, err, reservation.ErrNotAvailable)

	r, full, err = store.Join(s, 1, reservation.Single, reservation.Competitive, "Seppe")
	require.NoError(t, err)
	assert.True(t, full)
	assert.True(t, r.NotifiedFull)

	_, _, err = store.Join(s, 1, reservation.Single, reservation.Competitive, "Aaron")
	assert.ErrorIs(t, err, reservation.ErrCourtFull)

	stored, err := store.Get(s.Date, s.TimeSlot, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ruben", "Seppe"}, stored.Players)
	assert.True(t, stored.NotifiedFull)
}

func TestLeaveAndMarkWinner(t *testing.T) {
	store := setupTestDB(t)
	r := mustSingle(t, "2025-09-28", 1, "Ruben", "Tibo")
	require.NoError(t, store.ReplaceAll([]reservation.Reservation{r}))

	updated, err := store.MarkWinner(r.Slot(), 1, []string{"Ruben"})
	require.NoError(t, err)
	require.NotNil(t, updated.Result)
	assert.Equal(t, "Tibo", updated.Result.Loser)

	stored, err := store.Get(r.Date, r.TimeSlot, 1)
	require.NoError(t, err)
	require.NotNil(t, stored.Result)
	assert.Equal(t, "Ruben", stored.Result.Winner)

	updated, err = store.Leave(r.Slot(), 1, "Tibo")
	require.NoError(t, err)
	assert.Nil(t, updated.Result)

	_, err = store.Leave(r.Slot(), 1, "Tibo")
	assert.ErrorIs(t, err, reservation.ErrNotOnCourt)

	_, err = store.MarkWinner(r.Slot(), 3, []string{"Ruben"})
	assert.ErrorIs(t, err, reservation.ErrNotFound)
}

func TestRemoveAndClearAll(t *testing.T) {
	store := setupTestDB(t)
	r := mustSingle(t, "2025-09-28", 1, "Ruben", "Tibo")
	require.NoError(t, store.ReplaceAll([]reservation.Reservation{r, mustSingle(t, "2025-10-05", 1, "Seppe", "Aaron")}))

	require.NoError(t, store.Remove(r.Slot(), 1))
	assert.ErrorIs(t, store.Remove(r.Slot(), 1), reservation.ErrNotFound)

	all, err := store.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, store.ClearAll())
	all, err = store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestToggleAvailability(t *testing.T) {
	store := setupTestDB(t)
	s := reservation.Slot{Date: "2025-09-28", TimeSlot: "19u30-20u30"}

	available, err := store.ToggleAvailability(s, "Ruben")
	require.NoError(t, err)
	assert.False(t, available)

	availability, err := store.GetAvailability()
	require.NoError(t, err)
	assert.False(t, availability.IsAvailable(s, "Ruben"))
	assert.True(t, availability.IsAvailable(s, "Tibo"))

	available, err = store.ToggleAvailability(s, "Ruben")
	require.NoError(t, err)
	assert.True(t, available)
}
