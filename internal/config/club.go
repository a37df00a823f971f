package config

import (
	"fmt"
	"os"

	"github.com/mauv0809/court-planner/internal/club"
	"gopkg.in/yaml.v3"
)

// Club is the validated club configuration.
type Club struct {
	Roster *club.Roster
	Season *club.Season
}

// LoadClubFromBytes parses a club YAML document and validates it.
func LoadClubFromBytes(data []byte) (*Club, error) {
	var file ClubFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing club file: %w", err)
	}
	return file.build()
}

// LoadClub reads and parses a club YAML file.
func LoadClub(path string) (*Club, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading club file: %w", err)
	}
	return LoadClubFromBytes(data)
}

func (f ClubFile) build() (*Club, error) {
	if len(f.Players) == 0 {
		return nil, fmt.Errorf("club file lists no players")
	}
	if f.Season.StartDate.Time.IsZero() {
		return nil, fmt.Errorf("season start_date is required")
	}

	players := make([]club.Player, len(f.Players))
	for i, p := range f.Players {
		players[i] = club.Player{Name: p.Name, Score: p.Score}
	}
	roster, err := club.NewRoster(players, f.Admin)
	if err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}

	season, err := club.NewSeason(f.Season.StartDate.Time, f.Season.Weeks, f.Season.TimeSlots, f.Season.Courts)
	if err != nil {
		return nil, fmt.Errorf("invalid season: %w", err)
	}
	return &Club{Roster: roster, Season: season}, nil
}
