package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	DBName     string
	Port       string
	ClubFile   string
	AdminToken string
	Slack      SlackConfig
	Turso      TursoConfig
	Inngest    InngestConfig
	ProjectID  string
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type InngestConfig struct {
	AppID      string
	SigningKey string
	EventKey   string
}

// Enabled reports whether an Inngest app is configured.
func (c InngestConfig) Enabled() bool {
	return c.AppID != ""
}

// Date is a wrapper around time.Time for YAML date parsing.
type Date struct {
	Time time.Time
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse("2006-01-02", value.Value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value.Value, err)
	}
	d.Time = t
	return nil
}

type PlayerEntry struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

type SeasonEntry struct {
	StartDate Date     `yaml:"start_date"`
	Weeks     int      `yaml:"weeks"`
	TimeSlots []string `yaml:"time_slots"`
	Courts    int      `yaml:"courts"`
}

// ClubFile is the YAML document describing the club.
type ClubFile struct {
	Admin   string        `yaml:"admin"`
	Players []PlayerEntry `yaml:"players"`
	Season  SeasonEntry   `yaml:"season"`
}
