package reservation

import "errors"

var (
	ErrNotFound       = errors.New("reservation not found")
	ErrCourtFull      = errors.New("court is already full")
	ErrAlreadyOnCourt = errors.New("player is already on this court")
	ErrAlreadyInSlot  = errors.New("player is already playing in this slot")
	ErrNotAvailable   = errors.New("player is not available in this slot")
	ErrNotOnCourt     = errors.New("player is not on this court")
	ErrNotCompetitive = errors.New("results can only be recorded for competitive matches")
	ErrWinnerMismatch = errors.New("winners do not match a side of the match")
)

// Join seats player on the first open seat. It reports whether this join made
// the match full for the first time, in which case NotifiedFull is set.
func (r *Reservation) Join(player string) (bool, error) {
	if r.Has(player) {
		return false, ErrAlreadyOnCourt
	}
	seat := -1
	for i, p := range r.Players {
		if p == "" {
			seat = i
			break
		}
	}
	if seat == -1 {
		return false, ErrCourtFull
	}
	r.Players[seat] = player

	full := r.IsFull()
	if !full {
		r.Result = nil
	}
	firstTime := full && !r.NotifiedFull
	if firstTime {
		r.NotifiedFull = true
	}
	return firstTime, nil
}

// Leave opens the seat held by player. The match is no longer full so the
// result is dropped and the full notification may fire again.
func (r *Reservation) Leave(player string) error {
	for i, p := range r.Players {
		if p != "" && p == player {
			r.Players[i] = ""
			r.NotifiedFull = false
			r.Result = nil
			return nil
		}
	}
	return ErrNotOnCourt
}

// MarkWinner records the result of a competitive match. Singles take one
// winner, doubles take the two players of the winning side in any order.
func (r *Reservation) MarkWinner(winners ...string) error {
	if r.Category != Competitive {
		return ErrNotCompetitive
	}
	if r.MatchType == Single {
		if len(winners) != 1 || !r.Has(winners[0]) {
			return ErrWinnerMismatch
		}
		loser := ""
		for _, p := range r.Players {
			if p != "" && p != winners[0] {
				loser = p
			}
		}
		r.Result = &Result{Winner: winners[0], Loser: loser}
		return nil
	}

	if len(winners) != 2 || winners[0] == winners[1] {
		return ErrWinnerMismatch
	}
	sideA, sideB := r.Sides()
	switch {
	case sameTeam(winners, sideA):
		r.Result = &Result{Winners: copyTeam(sideA), Losers: copyTeam(sideB)}
	case sameTeam(winners, sideB):
		r.Result = &Result{Winners: copyTeam(sideB), Losers: copyTeam(sideA)}
	default:
		return ErrWinnerMismatch
	}
	return nil
}

func sameTeam(a, b []string) bool {
	if len(a) != 2 || len(b) != 2 {
		return false
	}
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

func copyTeam(team []string) []string {
	out := make([]string, len(team))
	copy(out, team)
	return out
}
