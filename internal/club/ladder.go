package club

import (
	"math"
	"sort"

	"github.com/mauv0809/court-planner/internal/reservation"
	"github.com/samber/lo"
)

// SinglesLadder ranks roster players on competitive singles with a recorded
// result. Players outside the roster are ignored.
func SinglesLadder(roster *Roster, reservations []reservation.Reservation) []Standing {
	stats := newStats(roster)
	matches := lo.Filter(reservations, func(r reservation.Reservation, _ int) bool {
		return r.Category == reservation.Competitive && r.MatchType == reservation.Single && r.Result != nil
	})
	for _, r := range matches {
		winner, loser := r.Result.Winner, r.Result.Loser
		if winner == "" || loser == "" {
			continue
		}
		w, okW := stats[winner]
		l, okL := stats[loser]
		if !okW || !okL {
			continue
		}
		w.Wins++
		w.Matches++
		l.Matches++
	}
	return rank(roster, stats)
}

// DoublesLadder ranks roster players on competitive doubles. Every seated
// player gets a match, with or without a result; winners also get a win.
func DoublesLadder(roster *Roster, reservations []reservation.Reservation) []Standing {
	stats := newStats(roster)
	matches := lo.Filter(reservations, func(r reservation.Reservation, _ int) bool {
		return r.Category == reservation.Competitive && r.MatchType == reservation.Double
	})
	for _, r := range matches {
		for _, p := range r.Seated() {
			if s, ok := stats[p]; ok {
				s.Matches++
			}
		}
		if r.Result == nil || len(r.Result.Winners) != 2 {
			continue
		}
		for _, p := range r.Result.Winners {
			if s, ok := stats[p]; ok {
				s.Wins++
			}
		}
	}
	return rank(roster, stats)
}

// Medal returns the medal for a zero-based ladder position.
func Medal(position int) string {
	switch position {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	}
	return ""
}

func newStats(roster *Roster) map[string]*Standing {
	stats := make(map[string]*Standing, roster.Len())
	for _, name := range roster.Names() {
		stats[name] = &Standing{Player: name}
	}
	return stats
}

func rank(roster *Roster, stats map[string]*Standing) []Standing {
	standings := lo.Map(roster.Names(), func(name string, _ int) Standing {
		s := *stats[name]
		if s.Matches > 0 {
			s.WinPercentage = int(math.Round(float64(s.Wins) / float64(s.Matches) * 100))
		}
		return s
	})
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Matches != b.Matches {
			return a.Matches > b.Matches
		}
		return a.Player < b.Player
	})
	return standings
}
