package main

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/config"
	"github.com/mauv0809/court-planner/internal/database"
	"github.com/mauv0809/court-planner/internal/reservation"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	defaults := map[string]string{
		"DB_NAME":            "court-planner.db",
		"CLUB_FILE":          "club.yaml",
		"TURSO_PRIMARY_URL":  "",
		"TURSO_AUTH_TOKEN":   "",
		"SEED_UNAVAILABLE":   "0.2",
		"SEED_RANDOM_SOURCE": "",
	}
	config := make(map[string]string, len(defaults))
	for key, fallback := range defaults {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			config[key] = fallback
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	clubCfg, err := config.LoadClub(cfg["CLUB_FILE"])
	if err != nil {
		log.Fatalf("Failed to load club file: %s", err)
	}

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	players := club.New(db)
	if err := players.SyncRoster(clubCfg.Roster); err != nil {
		log.Fatalf("Failed to sync roster: %s", err)
	}
	if admin := clubCfg.Roster.Admin(); admin != "" && !players.IsKnownPlayer(admin) {
		log.Fatalf("Admin %s is missing from the players table after sync", admin)
	}
	log.Info("Synced roster", "players", clubCfg.Roster.Len())

	ratio, err := strconv.ParseFloat(cfg["SEED_UNAVAILABLE"], 64)
	if err != nil || ratio < 0 || ratio > 1 {
		log.Fatalf("SEED_UNAVAILABLE must be a number between 0 and 1, got %q", cfg["SEED_UNAVAILABLE"])
	}
	seed := time.Now().UnixNano()
	if s := cfg["SEED_RANDOM_SOURCE"]; s != "" {
		if seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			log.Fatalf("SEED_RANDOM_SOURCE must be an integer: %s", err)
		}
	}
	rng := rand.New(rand.NewSource(seed))

	store := reservation.New(db)
	startTime := time.Now()
	marked := 0
	for _, slot := range clubCfg.Season.Slots() {
		for _, player := range clubCfg.Roster.Names() {
			available := rng.Float64() >= ratio
			if err := store.SetAvailability(slot, player, available); err != nil {
				log.Fatalf("Failed to set availability for %s on %s: %s", player, slot, err)
			}
			if !available {
				marked++
			}
		}
		log.Debug("Seeded slot", "slot", slot)
	}

	log.Info("Successfully seeded availability.", "slots", len(clubCfg.Season.Slots()), "unavailable", marked, "seed", seed, "duration", time.Since(startTime))
}
