package club_test

import (
	"testing"
	"time"

	"github.com/mauv0809/court-planner/internal/club"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoster(t *testing.T) {
	tests := []struct {
		name    string
		players []club.Player
		admin   string
		wantErr bool
	}{
		{"valid", []club.Player{{Name: "Ruben", Score: 70}, {Name: "Tibo", Score: 60}}, "Ruben", false},
		{"no admin", []club.Player{{Name: "Ruben", Score: 70}}, "", false},
		{"duplicate", []club.Player{{Name: "Ruben", Score: 70}, {Name: "Ruben", Score: 10}}, "", true},
		{"empty name", []club.Player{{Name: " ", Score: 70}}, "", true},
		{"negative score", []club.Player{{Name: "Ruben", Score: -1}}, "", true},
		{"admin not on roster", []club.Player{{Name: "Ruben", Score: 70}}, "Mattias", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := club.NewRoster(tt.players, tt.admin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoster_ScoresAndOrder(t *testing.T) {
	roster, err := club.NewRoster([]club.Player{
		{Name: "Mattias", Score: 55},
		{Name: "Brent", Score: 5},
		{Name: "SanderB", Score: 75},
	}, "Mattias")
	require.NoError(t, err)

	assert.Equal(t, []string{"Mattias", "Brent", "SanderB"}, roster.Names())
	assert.Equal(t, 75, roster.Score("SanderB"))
	assert.Equal(t, 0, roster.Score("Nobody"), "unknown players score zero")
	assert.True(t, roster.IsAdmin("Mattias"))
	assert.False(t, roster.IsAdmin("Brent"))

	names := roster.Names()
	names[0] = "changed"
	assert.Equal(t, "Mattias", roster.Names()[0], "roster is immutable")
}

func TestSeason(t *testing.T) {
	start := time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC)
	season, err := club.NewSeason(start, 20, []string{"18u30-19u30", "19u30-20u30"}, 3)
	require.NoError(t, err)

	dates := season.Dates()
	require.Len(t, dates, 20)
	assert.Equal(t, "2025-09-28", dates[0])
	assert.Equal(t, "2025-10-05", dates[1])
	assert.Equal(t, "2026-02-08", dates[19])

	slots := season.Slots()
	require.Len(t, slots, 40)
	assert.Equal(t, "2025-09-28", slots[1].Date)
	assert.Equal(t, "19u30-20u30", slots[1].TimeSlot)
	assert.Equal(t, "2025-10-05", slots[2].Date)

	assert.True(t, season.Contains("2025-10-12"))
	assert.False(t, season.Contains("2025-10-13"))
	assert.True(t, season.HasCourt(3))
	assert.False(t, season.HasCourt(4))

	_, err = club.NewSeason(start, 0, []string{"a", "b"}, 3)
	assert.Error(t, err)
	_, err = club.NewSeason(start, 20, []string{"a"}, 3)
	assert.Error(t, err)
	_, err = club.NewSeason(start, 20, []string{"a", "a"}, 3)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	roster, err := club.NewRoster([]club.Player{
		{Name: "SanderD", Score: 25},
		{Name: "SanderB", Score: 75},
		{Name: "Koenraad", Score: 10},
	}, "")
	require.NoError(t, err)

	name, _ := roster.Resolve("SanderD")
	assert.Equal(t, "SanderD", name)

	name, _ = roster.Resolve("sander d")
	assert.Equal(t, "SanderD", name)

	name, _ = roster.Resolve("Koenrad")
	assert.Equal(t, "Koenraad", name)

	name, suggestions := roster.Resolve("Sander")
	assert.Empty(t, name, "two equally close players stay ambiguous")
	require.Len(t, suggestions, 2)

	name, suggestions = roster.Resolve("")
	assert.Empty(t, name)
	assert.Empty(t, suggestions)
}
