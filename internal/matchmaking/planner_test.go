package matchmaking_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/matchmaking"
	"github.com/mauv0809/court-planner/internal/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timeSlots = []string{"18u30-19u30", "19u30-20u30"}

func clubFixture(t *testing.T) (*club.Roster, *club.Season) {
	t.Helper()
	roster, err := club.NewRoster([]club.Player{
		{Name: "Mattias", Score: 55}, {Name: "Ruben", Score: 70}, {Name: "Seppe", Score: 55},
		{Name: "Tibo", Score: 60}, {Name: "Aaron", Score: 50}, {Name: "Koenraad", Score: 10},
		{Name: "Brent", Score: 5}, {Name: "Nicolas", Score: 15}, {Name: "Remi", Score: 20},
		{Name: "SanderD", Score: 25}, {Name: "Gilles", Score: 10}, {Name: "Thomas", Score: 35},
		{Name: "Wout", Score: 20}, {Name: "SanderB", Score: 75},
	}, "Mattias")
	require.NoError(t, err)
	season, err := club.NewSeason(time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC), 20, timeSlots, 3)
	require.NoError(t, err)
	return roster, season
}

func seeded(seed int64) matchmaking.Option {
	return matchmaking.WithJitter(matchmaking.RandomJitter(rand.New(rand.NewSource(seed))))
}

func assertValidPlan(t *testing.T, plan matchmaking.Plan, availability reservation.Availability) {
	t.Helper()
	seatedInSlot := make(map[reservation.Slot]map[string]bool)
	courts := make(map[reservation.Slot]map[int]bool)

	for _, r := range plan.Reservations {
		require.NoError(t, r.Validate())
		assert.True(t, r.IsFull(), "planned matches are fully seated")
		assert.Nil(t, r.Result)

		switch r.MatchType {
		case reservation.Single:
			assert.Len(t, r.Players, 2)
			assert.Equal(t, reservation.Competitive, r.Category)
		case reservation.Double:
			assert.Len(t, r.Players, 4)
			assert.Equal(t, reservation.Training, r.Category)
		}

		slot := r.Slot()
		if courts[slot] == nil {
			courts[slot] = make(map[int]bool)
			seatedInSlot[slot] = make(map[string]bool)
		}
		assert.False(t, courts[slot][r.Court], "court %d double booked in %s", r.Court, slot)
		courts[slot][r.Court] = true

		for _, p := range r.Players {
			assert.False(t, seatedInSlot[slot][p], "%s plays twice in %s", p, slot)
			seatedInSlot[slot][p] = true
			assert.True(t, availability.IsAvailable(slot, p), "%s opted out of %s", p, slot)
		}
	}
}

func TestPlanAll_FullRoster(t *testing.T) {
	roster, season := clubFixture(t)
	planner := matchmaking.NewPlanner(roster, season, seeded(1))

	plan := planner.PlanAll(matchmaking.Snapshot{})

	assert.Equal(t, matchmaking.ScopeSeason, plan.Scope)
	assert.Equal(t, 40, plan.Slots)
	assert.Equal(t, 0, plan.SkippedCourts, "14 players fill every court")
	require.Len(t, plan.Reservations, 120)
	assertValidPlan(t, plan, nil)
	assert.Equal(t, season.Dates(), plan.Dates())

	layouts := make(map[reservation.Slot][]reservation.MatchType)
	for _, r := range plan.Reservations {
		layouts[r.Slot()] = append(layouts[r.Slot()], r.MatchType)
	}
	for i, slot := range season.Slots() {
		want := []reservation.MatchType{reservation.Double, reservation.Double, reservation.Single}
		if i%2 == 1 {
			want = []reservation.MatchType{reservation.Double, reservation.Single, reservation.Single}
		}
		assert.Equal(t, want, layouts[slot], "slot %s", slot)
	}
}

func TestPlanAll_RespectsAvailability(t *testing.T) {
	roster, season := clubFixture(t)
	availability := make(reservation.Availability)
	rng := rand.New(rand.NewSource(7))
	for _, slot := range season.Slots() {
		for _, name := range roster.Names() {
			if rng.Intn(3) == 0 {
				availability.Set(slot, name, false)
			}
		}
	}
	first := season.Slots()[0]
	for i, name := range roster.Names() {
		availability.Set(first, name, i < 3)
	}

	plan := matchmaking.NewPlanner(roster, season, seeded(2)).PlanAll(matchmaking.Snapshot{Availability: availability})

	assertValidPlan(t, plan, availability)
	assert.Positive(t, plan.SkippedCourts)

	var inFirst []reservation.Reservation
	for _, r := range plan.Reservations {
		if r.Slot() == first {
			inFirst = append(inFirst, r)
		}
	}
	require.Len(t, inFirst, 1, "three available players only fill the singles court")
	assert.Equal(t, 3, inFirst[0].Court)
}

func TestPlanWeek_OnlyTouchesDate(t *testing.T) {
	roster, season := clubFixture(t)
	date := season.Dates()[3]

	plan := matchmaking.NewPlanner(roster, season, seeded(4)).PlanWeek(matchmaking.Snapshot{}, date)

	assert.Equal(t, matchmaking.ScopeWeek, plan.Scope)
	assert.Equal(t, date, plan.Date)
	assert.Equal(t, 2, plan.Slots)
	require.Len(t, plan.Reservations, 6)
	assert.Equal(t, []string{date}, plan.Dates())
	assertValidPlan(t, plan, nil)

	var firstSlot []reservation.MatchType
	for _, r := range plan.Reservations {
		if r.TimeSlot == timeSlots[0] {
			firstSlot = append(firstSlot, r.MatchType)
		}
	}
	assert.Equal(t, []reservation.MatchType{reservation.Double, reservation.Double, reservation.Single}, firstSlot,
		"slot index restarts at zero for a single date")
}

func TestPlanWeek_IgnoresHistoryOfReplacedDate(t *testing.T) {
	roster, err := club.NewRoster([]club.Player{
		{Name: "A", Score: 50}, {Name: "B", Score: 50}, {Name: "C", Score: 50}, {Name: "D", Score: 50},
	}, "")
	require.NoError(t, err)
	season, err := club.NewSeason(time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC), 2, timeSlots, 3)
	require.NoError(t, err)
	singlesOnly := matchmaking.WithGroupPattern(func(int) []int { return []int{2} })
	planner := matchmaking.NewPlanner(roster, season, matchmaking.WithJitter(matchmaking.NoJitter), singlesOnly)

	var onDate []reservation.Reservation
	for i := 0; i < 5; i++ {
		onDate = append(onDate, single(t, "2025-09-28", 1, "A", "C"))
	}

	plan := planner.PlanWeek(matchmaking.Snapshot{Reservations: onDate}, "2025-09-28")
	require.NotEmpty(t, plan.Reservations)
	assert.Equal(t, []string{"A", "B"}, plan.Reservations[0].Players)

	plan = planner.PlanWeek(matchmaking.Snapshot{Reservations: onDate}, "2025-10-05")
	require.NotEmpty(t, plan.Reservations)
	assert.Equal(t, []string{"A", "B"}, plan.Reservations[0].Players)

	history := []reservation.Reservation{single(t, "2025-09-28", 1, "A", "B")}
	plan = planner.PlanWeek(matchmaking.Snapshot{Reservations: history}, "2025-10-05")
	require.NotEmpty(t, plan.Reservations)
	assert.Equal(t, []string{"A", "C"}, plan.Reservations[0].Players, "other dates feed the history")
}

func TestPlanner_SeededJitterIsReproducible(t *testing.T) {
	roster, season := clubFixture(t)

	a := matchmaking.NewPlanner(roster, season, seeded(99)).PlanAll(matchmaking.Snapshot{})
	b := matchmaking.NewPlanner(roster, season, seeded(99)).PlanAll(matchmaking.Snapshot{})

	assert.Equal(t, a.Reservations, b.Reservations)
}

func TestPlanner_EmptyRoster(t *testing.T) {
	roster, err := club.NewRoster(nil, "")
	require.NoError(t, err)
	_, season := clubFixture(t)

	plan := matchmaking.NewPlanner(roster, season).PlanWeek(matchmaking.Snapshot{}, season.Dates()[0])

	assert.Empty(t, plan.Reservations)
	assert.Equal(t, 6, plan.SkippedCourts)
}
