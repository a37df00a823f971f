package matchmaking

import (
	"math/rand"
	"testing"

	"github.com/mauv0809/court-planner/internal/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scores map[string]int

func (s scores) Names() []string {
	names := make([]string, 0, len(s))
	for _, n := range []string{"A", "B", "C", "D", "E", "Alice", "Bob", "Carol", "Dave"} {
		if _, ok := s[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

func (s scores) Score(name string) int {
	return s[name]
}

func newEngine(roster Roster, history History) *slotEngine {
	return &slotEngine{roster: roster, history: history, jitter: NoJitter}
}

func TestPickSingles_PrefersCloseScores(t *testing.T) {
	roster := scores{"Alice": 50, "Bob": 52, "Carol": 10, "Dave": 90}
	engine := &slotEngine{
		roster:  roster,
		history: BuildHistory(nil, ""),
		jitter:  RandomJitter(rand.New(rand.NewSource(42))),
	}

	for i := 0; i < 50; i++ {
		pair, ok := engine.pickSingles(roster.Names())
		require.True(t, ok)
		assert.Equal(t, [2]string{"Alice", "Bob"}, pair)
	}

	assert.Equal(t, 24.0, engine.singlesCost("Alice", "Bob"))
	assert.Equal(t, 480.0, engine.singlesCost("Alice", "Dave"))
	assert.Equal(t, 960.0, engine.singlesCost("Carol", "Dave"))
}

func TestPickSingles_AvoidsRepeatOpponents(t *testing.T) {
	roster := scores{"A": 50, "B": 50, "C": 50, "D": 50}
	var history []reservation.Reservation
	for i := 0; i < 5; i++ {
		r, err := reservation.NewSingle(reservation.Slot{Date: "2025-09-28", TimeSlot: "18u30-19u30"}, 1, reservation.Competitive, "A", "B")
		require.NoError(t, err)
		history = append(history, r)
	}
	engine := newEngine(roster, BuildHistory(history, ""))

	assert.Less(t, engine.singlesCost("C", "D"), engine.singlesCost("A", "B"))

	pair, ok := engine.pickSingles([]string{"A", "B", "C", "D"})
	require.True(t, ok)
	assert.NotEqual(t, [2]string{"A", "B"}, pair)

	pair, ok = engine.pickSingles([]string{"A", "B"})
	require.True(t, ok, "a repeat is still better than an empty court")
	assert.Equal(t, [2]string{"A", "B"}, pair)
}

func TestPickDoubles_BalancesTeams(t *testing.T) {
	engine := newEngine(scores{"A": 10, "B": 90, "C": 40, "D": 60}, BuildHistory(nil, ""))
	split, ok := engine.pickDoubles([]string{"A", "B", "C", "D"})
	require.True(t, ok)
	assert.Equal(t, Split{A: [2]string{"A", "B"}, B: [2]string{"C", "D"}}, split)

	engine = newEngine(scores{"A": 10, "B": 10, "C": 90, "D": 90}, BuildHistory(nil, ""))
	split, ok = engine.pickDoubles([]string{"A", "B", "C", "D"})
	require.True(t, ok)
	sumA := engine.roster.Score(split.A[0]) + engine.roster.Score(split.A[1])
	sumB := engine.roster.Score(split.B[0]) + engine.roster.Score(split.B[1])
	assert.Equal(t, sumA, sumB, "each team gets a strong and a weak player")
	assert.Equal(t, 2400.0, engine.doublesCost(Split{A: [2]string{"A", "B"}, B: [2]string{"C", "D"}}))
}

func TestPickDoubles_CountsCrossTeamHistory(t *testing.T) {
	r, err := reservation.NewDouble(reservation.Slot{Date: "2025-09-28", TimeSlot: "18u30-19u30"}, 1, reservation.Training, [2]string{"A", "C"}, [2]string{"B", "D"})
	require.NoError(t, err)
	engine := newEngine(scores{"A": 50, "B": 50, "C": 50, "D": 50}, BuildHistory([]reservation.Reservation{r}, ""))

	assert.Equal(t, 2.0, engine.doublesCost(Split{A: [2]string{"A", "B"}, B: [2]string{"C", "D"}}))
	assert.Equal(t, 4.0, engine.doublesCost(Split{A: [2]string{"A", "C"}, B: [2]string{"B", "D"}}))
	assert.Equal(t, 2.0, engine.doublesCost(Split{A: [2]string{"A", "D"}, B: [2]string{"B", "C"}}))

	split, ok := engine.pickDoubles([]string{"A", "B", "C", "D"})
	require.True(t, ok)
	assert.Equal(t, Split{A: [2]string{"A", "B"}, B: [2]string{"C", "D"}}, split, "repeating the previous line-up costs most")
}

func TestPickers_NeedEnoughPlayers(t *testing.T) {
	engine := newEngine(scores{"A": 1, "B": 2, "C": 3}, BuildHistory(nil, ""))

	_, ok := engine.pickSingles([]string{"A"})
	assert.False(t, ok)
	_, ok = engine.pickDoubles([]string{"A", "B", "C"})
	assert.False(t, ok)
}

func TestAssign_SkipsCourtAndContinues(t *testing.T) {
	roster := scores{"A": 10, "B": 20, "C": 30}
	engine := newEngine(roster, BuildHistory(nil, ""))
	slot := reservation.Slot{Date: "2025-09-28", TimeSlot: "18u30-19u30"}

	matches, skipped := engine.assign(slot, []int{4, 2, 2}, roster.Names())

	assert.Equal(t, 2, skipped, "doubles court and last singles court stay empty")
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Court)
	assert.Equal(t, reservation.Single, matches[0].MatchType)
	assert.Equal(t, reservation.Competitive, matches[0].Category)
	assert.Equal(t, []string{"A", "B"}, matches[0].Players)
	assert.True(t, matches[0].NotifiedFull)
}

func TestAssign_MarksPlayersUsed(t *testing.T) {
	roster := scores{"A": 10, "B": 20, "C": 30, "D": 40, "E": 50}
	engine := newEngine(roster, BuildHistory(nil, ""))
	slot := reservation.Slot{Date: "2025-09-28", TimeSlot: "18u30-19u30"}

	matches, skipped := engine.assign(slot, []int{4, 4, 2}, roster.Names())

	assert.Equal(t, 2, skipped)
	require.Len(t, matches, 1)
	assert.Equal(t, reservation.Double, matches[0].MatchType)
	assert.Equal(t, reservation.Training, matches[0].Category)
	assert.Len(t, matches[0].Players, 4)
	assert.NoError(t, matches[0].Validate())
}
