package club

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPlayer = errors.New("unknown player")

// NewRoster builds a roster from players in configuration order. Names must
// be unique and non-empty, scores non-negative and admin, when set, must be
// on the roster.
func NewRoster(players []Player, admin string) (*Roster, error) {
	r := &Roster{
		players: make([]Player, 0, len(players)),
		index:   make(map[string]int, len(players)),
		admin:   admin,
	}
	for _, p := range players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, errors.New("player name cannot be empty")
		}
		if _, dup := r.index[name]; dup {
			return nil, fmt.Errorf("duplicate player %q", name)
		}
		if p.Score < 0 {
			return nil, fmt.Errorf("player %q has negative score %d", name, p.Score)
		}
		r.index[name] = len(r.players)
		r.players = append(r.players, Player{Name: name, Score: p.Score, IsAdmin: name == admin})
	}
	if admin != "" && !r.Has(admin) {
		return nil, fmt.Errorf("admin %q is not on the roster", admin)
	}
	return r, nil
}

// Names returns player names in configuration order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.players))
	for i, p := range r.players {
		names[i] = p.Name
	}
	return names
}

// Players returns a copy of the roster.
func (r *Roster) Players() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

// Score returns the skill score of name, or 0 for players not on the roster.
func (r *Roster) Score(name string) int {
	if i, ok := r.index[name]; ok {
		return r.players[i].Score
	}
	return 0
}

func (r *Roster) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

func (r *Roster) Admin() string {
	return r.admin
}

func (r *Roster) IsAdmin(name string) bool {
	return r.admin != "" && name == r.admin
}

func (r *Roster) Len() int {
	return len(r.players)
}
