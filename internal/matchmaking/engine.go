package matchmaking

import (
	"math"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-planner/internal/reservation"
	"github.com/samber/lo"
)

// slotEngine fills the courts of one slot greedily, court by court. History
// is fixed for the engine's lifetime.
type slotEngine struct {
	roster  Roster
	history History
	jitter  Jitter
}

// assign fills one court per group size. Players chosen for a court leave the
// pool for the remaining courts of the slot. It returns the matches and the
// number of courts that could not be filled.
func (e *slotEngine) assign(slot reservation.Slot, groups []int, available []string) ([]reservation.Reservation, int) {
	used := make(map[string]bool, len(available))
	var matches []reservation.Reservation
	skipped := 0

	for i, size := range groups {
		court := i + 1
		pool := lo.Filter(available, func(p string, _ int) bool { return !used[p] })

		var (
			match reservation.Reservation
			err   error
			ok    bool
		)
		switch size {
		case 2:
			var pair [2]string
			if pair, ok = e.pickSingles(pool); ok {
				match, err = reservation.NewSingle(slot, court, reservation.Competitive, pair[0], pair[1])
			}
		case 4:
			var split Split
			if split, ok = e.pickDoubles(pool); ok {
				match, err = reservation.NewDouble(slot, court, reservation.Training, split.A, split.B)
			}
		default:
			log.Warn("Unsupported court group size", "slot", slot, "court", court, "size", size)
		}
		if !ok || err != nil {
			if err != nil {
				log.Error("Failed to build planned match", "slot", slot, "court", court, "error", err)
			}
			log.Debug("Court left empty", "slot", slot, "court", court, "size", size, "pool", len(pool))
			skipped++
			continue
		}

		match.NotifiedFull = true
		for _, p := range match.Players {
			used[p] = true
		}
		matches = append(matches, match)
		log.Debug("Court planned", "slot", slot, "court", court, "type", match.MatchType, "players", match.Players)
	}
	return matches, skipped
}

// pickSingles returns the cheapest pair of pool, or false when fewer than two
// players remain.
func (e *slotEngine) pickSingles(pool []string) ([2]string, bool) {
	if len(pool) < 2 {
		return [2]string{}, false
	}
	sorted := append([]string(nil), pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return e.roster.Score(sorted[i]) < e.roster.Score(sorted[j])
	})

	var best [2]string
	bestCost := math.Inf(1)
	for i := 0; i < len(sorted)-1; i++ {
		for j := i + 1; j < len(sorted); j++ {
			cost := e.singlesCost(sorted[i], sorted[j]) + e.jitter()
			if cost < bestCost {
				bestCost = cost
				best = [2]string{sorted[i], sorted[j]}
			}
		}
	}
	return best, true
}

// pickDoubles returns the cheapest team split over every quadruple of pool,
// or false when fewer than four players remain.
func (e *slotEngine) pickDoubles(pool []string) (Split, bool) {
	if len(pool) < 4 {
		return Split{}, false
	}
	var best Split
	bestCost := math.Inf(1)
	for _, q := range Quadruples(pool) {
		for _, split := range TeamSplits(q) {
			cost := e.doublesCost(split) + e.jitter()
			if cost < bestCost {
				bestCost = cost
				best = split
			}
		}
	}
	return best, true
}

func (e *slotEngine) singlesCost(a, b string) float64 {
	diff := abs(e.roster.Score(a) - e.roster.Score(b))
	return float64(diff*SinglesScoreWeight + e.history.Count(a, b)*SinglesHistoryWeight)
}

func (e *slotEngine) doublesCost(s Split) float64 {
	sumA := e.roster.Score(s.A[0]) + e.roster.Score(s.A[1])
	sumB := e.roster.Score(s.B[0]) + e.roster.Score(s.B[1])
	seen := 0
	for _, x := range s.A {
		for _, y := range s.B {
			seen += e.history.Count(x, y)
		}
	}
	return float64(abs(sumA-sumB)*DoublesScoreWeight + seen*DoublesHistoryWeight)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
