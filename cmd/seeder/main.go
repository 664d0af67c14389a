package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/thunderfc/clubsync/internal/database"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "clubsync.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	players := []struct {
		name, position                            string
		goals, assists, yellow, red, motm, played int
	}{
		{"Marcus Johnson", "Forward", 12, 6, 2, 0, 3, 15},
		{"Sarah Williams", "Midfielder", 8, 10, 1, 0, 2, 16},
		{"David Rodriguez", "Defender", 3, 4, 4, 1, 1, 14},
		{"Emma Thompson", "Goalkeeper", 0, 2, 1, 0, 2, 16},
	}
	playerIDs := make(map[string]string, len(players))
	for _, p := range players {
		id := uuid.NewString()
		playerIDs[p.name] = id
		_, err := db.Exec(`
			INSERT INTO players (id, name, position, goals, assists, yellow_cards, red_cards, motm_awards, matches_played)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, p.name, p.position, p.goals, p.assists, p.yellow, p.red, p.motm, p.played)
		if err != nil {
			log.Fatalf("Failed to insert player %s: %s", p.name, err)
		}
	}

	games := []struct {
		date, opponent, venue string
		isHome                bool
		homeScore, awayScore  int
		motm                  string
	}{
		{"2024-06-05", "City United", "Thunder Stadium", true, 3, 1, "Marcus Johnson"},
		{"2024-05-28", "Rangers FC", "Rangers Ground", false, 1, 2, "David Rodriguez"},
		{"2024-05-20", "Athletic Club", "Thunder Stadium", true, 4, 0, "Sarah Williams"},
	}
	for _, g := range games {
		_, err := db.Exec(`
			INSERT INTO games (id, date, opponent, venue, is_home, home_score, away_score, status, motm_player_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, 'completed', ?)
		`, uuid.NewString(), g.date, g.opponent, g.venue, g.isHome, g.homeScore, g.awayScore, playerIDs[g.motm])
		if err != nil {
			log.Fatalf("Failed to insert game against %s: %s", g.opponent, err)
		}
	}
	// One upcoming fixture with no scores yet.
	_, err = db.Exec(`
		INSERT INTO games (id, date, opponent, venue, is_home, status)
		VALUES (?, '2024-06-15', 'Harbor Town', 'Thunder Stadium', 1, 'upcoming')
	`, uuid.NewString())
	if err != nil {
		log.Fatalf("Failed to insert upcoming game: %s", err)
	}

	news := []struct {
		title, excerpt, author, category string
		featured                         bool
	}{
		{
			"Thunder FC Dominates 4-0 Victory Against Athletic Club",
			"An outstanding team performance led Thunder FC to a commanding 4-0 victory at home, with Sarah Williams earning Player of the Match honors.",
			"Mike Stevens", "match-result", true,
		},
		{
			"Marcus Johnson Reaches Double-Digit Goals This Season",
			"Star forward Marcus Johnson has now scored 12 goals this season, making him our top scorer and a key player for the team's success.",
			"Lisa Parker", "player-news", false,
		},
	}
	for i, n := range news {
		_, err := db.Exec(`
			INSERT INTO news (id, title, excerpt, content, author, category, featured, published_at)
			VALUES (?, ?, ?, 'Full article content here...', ?, ?, ?, ?)
		`, uuid.NewString(), n.title, n.excerpt, n.author, n.category, n.featured, time.Now().Add(-time.Duration(i)*24*time.Hour).Unix())
		if err != nil {
			log.Fatalf("Failed to insert news %q: %s", n.title, err)
		}
	}

	_, err = db.Exec(`
		INSERT INTO team_statistics (id, matches_played, wins, draws, losses, goals_for, goals_against, goal_difference, points)
		VALUES (?, 3, 2, 0, 1, 8, 3, 5, 6)
	`, uuid.NewString())
	if err != nil {
		log.Fatalf("Failed to insert team statistics: %s", err)
	}

	_, err = db.Exec(`
		INSERT INTO team_branding (id, team_name) VALUES (?, 'Thunder FC')
	`, uuid.NewString())
	if err != nil {
		log.Fatalf("Failed to insert team branding: %s", err)
	}

	log.Info("Seeding complete")
}
