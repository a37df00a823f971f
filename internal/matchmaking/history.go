package matchmaking

import "github.com/mauv0809/court-planner/internal/reservation"

type pairKey struct {
	a, b string
}

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// History counts how often two players have faced each other.
type History struct {
	counts map[pairKey]int
}

// BuildHistory counts opponent pairs over matches, skipping those on
// excludeDate when it is set. Singles count once when both seats are taken;
// doubles count their four cross-team pairs when all seats are taken.
// Teammates are not opponents and the category does not matter.
func BuildHistory(matches []reservation.Reservation, excludeDate string) History {
	h := History{counts: make(map[pairKey]int)}
	for _, m := range matches {
		if excludeDate != "" && m.Date == excludeDate {
			continue
		}
		switch m.MatchType {
		case reservation.Single:
			seated := m.Seated()
			if len(seated) < 2 {
				continue
			}
			h.add(seated[0], seated[1])
		case reservation.Double:
			if !m.IsFull() {
				continue
			}
			x1, x2, y1, y2 := m.Players[0], m.Players[1], m.Players[2], m.Players[3]
			h.add(x1, y1)
			h.add(x1, y2)
			h.add(x2, y1)
			h.add(x2, y2)
		}
	}
	return h
}

func (h History) add(a, b string) {
	h.counts[newPairKey(a, b)]++
}

// Count returns how often a and b met as opponents, in either order.
func (h History) Count(a, b string) int {
	return h.counts[newPairKey(a, b)]
}

// Len returns the number of distinct opponent pairs.
func (h History) Len() int {
	return len(h.counts)
}
