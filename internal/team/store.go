package team

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/thunderfc/clubsync/internal/changefeed"
)

// New creates a new TeamStore. The publisher receives a change event after
// every successful write; pass nil to disable publishing (seeder, tests).
func New(db *sql.DB, feed changefeed.Publisher) TeamStore {
	return &store{
		db:   db,
		feed: feed,
	}
}

func (s *store) publish(ctx context.Context, collection changefeed.Collection, op string) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, collection, op); err != nil {
		// The write already committed; other clients will still converge
		// on their next fetch.
		log.Error("Failed to publish change event", "error", err, "collection", collection)
	}
}

// GetPlayers returns all players ordered by goals descending.
func (s *store) GetPlayers(ctx context.Context) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, position, goals, assists, yellow_cards, red_cards, motm_awards, matches_played
		FROM players
		ORDER BY goals DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.Goals, &p.Assists, &p.YellowCards, &p.RedCards, &p.MOTMAwards, &p.MatchesPlayed); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// InsertPlayer adds a new player with zeroed counters and returns its id.
func (s *store) InsertPlayer(ctx context.Context, player NewPlayer) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (id, name, position) VALUES (?, ?, ?)
	`, id, player.Name, player.Position)
	if err != nil {
		return "", fmt.Errorf("failed to insert player: %w", err)
	}
	s.publish(ctx, changefeed.CollectionPlayers, "insert")
	return id, nil
}

// UpdatePlayer applies the non-nil fields of the update to an existing row.
func (s *store) UpdatePlayer(ctx context.Context, id string, update PlayerUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, args := buildSet(map[string]any{
		"name":           ptrArg(update.Name),
		"position":       ptrArg(update.Position),
		"goals":          ptrArg(update.Goals),
		"assists":        ptrArg(update.Assists),
		"yellow_cards":   ptrArg(update.YellowCards),
		"red_cards":      ptrArg(update.RedCards),
		"motm_awards":    ptrArg(update.MOTMAwards),
		"matches_played": ptrArg(update.MatchesPlayed),
	})
	if len(args) == 0 {
		return fmt.Errorf("no fields to update for player %s", id)
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, "UPDATE players SET "+set+", updated_at = unixepoch() WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("player %s not found", id)
	}
	s.publish(ctx, changefeed.CollectionPlayers, "update")
	return nil
}

// GetGames returns all games ordered by date descending, with the MOTM
// player's name resolved in the same query.
func (s *store) GetGames(ctx context.Context) ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.date, g.opponent, g.venue, g.is_home, g.home_score, g.away_score, g.status, g.motm_player_id, p.name
		FROM games g
		LEFT JOIN players p ON p.id = g.motm_player_id
		ORDER BY g.date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			log.Error("Failed to scan game row", "error", err)
			continue
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

func scanGame(scanner interface{ Scan(...any) error }) (Game, error) {
	var g Game
	var venue, motmID, motmName sql.NullString
	var homeScore, awayScore sql.NullInt64
	var status string

	err := scanner.Scan(&g.ID, &g.Date, &g.Opponent, &venue, &g.IsHome, &homeScore, &awayScore, &status, &motmID, &motmName)
	if err != nil {
		return Game{}, err
	}

	g.Status = ParseGameStatus(status)
	if venue.Valid {
		g.Venue = &venue.String
	}
	if motmID.Valid {
		g.MOTMPlayerID = &motmID.String
	}
	if motmName.Valid {
		g.MOTMName = &motmName.String
	}
	// Scores come in pairs; a row with only one set is treated as unplayed.
	if homeScore.Valid && awayScore.Valid {
		hs, as := int(homeScore.Int64), int(awayScore.Int64)
		g.HomeScore = &hs
		g.AwayScore = &as
	}
	return g, nil
}

// InsertGame adds a new fixture and returns its id. Scores start null.
func (s *store) InsertGame(ctx context.Context, game NewGame) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := game.Status
	if status == "" {
		status = GameUpcoming
	}

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, date, opponent, venue, is_home, status) VALUES (?, ?, ?, ?, ?, ?)
	`, id, game.Date, game.Opponent, ptrArg(game.Venue), game.IsHome, string(status))
	if err != nil {
		return "", fmt.Errorf("failed to insert game: %w", err)
	}
	s.publish(ctx, changefeed.CollectionGames, "insert")
	return id, nil
}

// UpdateGame applies the non-nil fields of the update to an existing row.
func (s *store) UpdateGame(ctx context.Context, id string, update GameUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var status any
	if update.Status != nil {
		status = string(*update.Status)
	}
	set, args := buildSet(map[string]any{
		"date":           ptrArg(update.Date),
		"opponent":       ptrArg(update.Opponent),
		"venue":          ptrArg(update.Venue),
		"is_home":        ptrArg(update.IsHome),
		"home_score":     ptrArg(update.HomeScore),
		"away_score":     ptrArg(update.AwayScore),
		"status":         status,
		"motm_player_id": ptrArg(update.MOTMPlayerID),
	})
	if len(args) == 0 {
		return fmt.Errorf("no fields to update for game %s", id)
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, "UPDATE games SET "+set+", updated_at = unixepoch() WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("failed to update game %s: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("game %s not found", id)
	}
	s.publish(ctx, changefeed.CollectionGames, "update")
	return nil
}

// GetNews returns all articles ordered by published_at descending.
func (s *store) GetNews(ctx context.Context) ([]NewsArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, excerpt, content, author, category, featured, published_at
		FROM news
		ORDER BY published_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	var articles []NewsArticle
	for rows.Next() {
		var a NewsArticle
		var excerpt, content sql.NullString
		var category string
		if err := rows.Scan(&a.ID, &a.Title, &excerpt, &content, &a.Author, &category, &a.Featured, &a.PublishedAt); err != nil {
			log.Error("Failed to scan news row", "error", err)
			continue
		}
		a.Excerpt = excerpt.String
		a.Content = content.String
		a.Category = ParseNewsCategory(category)
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// InsertNews adds a new article. published_at is stamped here and is
// immutable afterwards; no update path exists for news.
func (s *store) InsertNews(ctx context.Context, article NewNewsArticle) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO news (id, title, excerpt, content, author, category, featured, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, article.Title, article.Excerpt, article.Content, article.Author, string(article.Category), article.Featured, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("failed to insert news article: %w", err)
	}
	s.publish(ctx, changefeed.CollectionNews, "insert")
	return id, nil
}

// GetTeamStats returns the singleton aggregate row, or nil when none has
// been seeded yet.
func (s *store) GetTeamStats(ctx context.Context) (*TeamStatistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ts TeamStatistics
	err := s.db.QueryRowContext(ctx, `
		SELECT id, matches_played, wins, draws, losses, goals_for, goals_against, goal_difference, points
		FROM team_statistics
		LIMIT 1
	`).Scan(&ts.ID, &ts.MatchesPlayed, &ts.Wins, &ts.Draws, &ts.Losses, &ts.GoalsFor, &ts.GoalsAgainst, &ts.GoalDifference, &ts.Points)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query team statistics: %w", err)
	}
	return &ts, nil
}

// GetTeamBranding returns the singleton branding row, or nil when none has
// been seeded yet.
func (s *store) GetTeamBranding(ctx context.Context) (*TeamBranding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tb TeamBranding
	var logoURL sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, logo_url, team_name FROM team_branding LIMIT 1
	`).Scan(&tb.ID, &logoURL, &tb.TeamName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query team branding: %w", err)
	}
	if logoURL.Valid {
		tb.LogoURL = &logoURL.String
	}
	return &tb, nil
}

// SetBrandingLogo points the branding row at a freshly uploaded logo URL.
func (s *store) SetBrandingLogo(ctx context.Context, id, logoURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "UPDATE team_branding SET logo_url = ? WHERE id = ?", logoURL, id)
	if err != nil {
		return fmt.Errorf("failed to update team branding: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("team branding %s not found", id)
	}
	s.publish(ctx, changefeed.CollectionTeamBranding, "update")
	return nil
}

// Clear wipes every table. Intended for tests and local resets.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"games", "news", "players", "team_statistics", "team_branding"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "error", err, "table", table)
		}
	}
}

// buildSet assembles a SET clause from the non-nil columns, in a stable
// order so generated SQL is deterministic.
func buildSet(columns map[string]any) (string, []any) {
	order := []string{
		"name", "position", "goals", "assists", "yellow_cards", "red_cards", "motm_awards", "matches_played",
		"date", "opponent", "venue", "is_home", "home_score", "away_score", "status", "motm_player_id",
	}
	var clauses []string
	var args []any
	for _, col := range order {
		val, ok := columns[col]
		if !ok || val == nil {
			continue
		}
		clauses = append(clauses, col+" = ?")
		args = append(args, val)
	}
	return strings.Join(clauses, ", "), args
}

// ptrArg converts a typed pointer into a driver argument, mapping nil
// pointers to untyped nil so buildSet can skip them.
func ptrArg[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
