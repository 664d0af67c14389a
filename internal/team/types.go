package team

import (
	"database/sql"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/thunderfc/clubsync/internal/changefeed"
)

// store handles all database operations for the team dataset.
type store struct {
	db   *sql.DB
	feed changefeed.Publisher
	mu   sync.RWMutex
}

// GameStatus is the closed set of game states. Raw rows carry free text;
// ParseGameStatus narrows them at the boundary.
type GameStatus string

const (
	GameUpcoming  GameStatus = "upcoming"
	GameCompleted GameStatus = "completed"
	GameCancelled GameStatus = "cancelled"
)

// NewsCategory is the closed set of news categories.
type NewsCategory string

const (
	CategoryMatchResult NewsCategory = "match-result"
	CategoryPlayerNews  NewsCategory = "player-news"
	CategoryTeamUpdate  NewsCategory = "team-update"
)

// ParseGameStatus narrows a raw status string. Unrecognized values default
// to upcoming rather than being trusted, so a bad row can never render as a
// played match.
func ParseGameStatus(raw string) GameStatus {
	switch GameStatus(raw) {
	case GameUpcoming, GameCompleted, GameCancelled:
		return GameStatus(raw)
	default:
		log.Warn("Unrecognized game status, defaulting to upcoming", "status", raw)
		return GameUpcoming
	}
}

// ParseNewsCategory narrows a raw category string, defaulting unknown
// values to team-update.
func ParseNewsCategory(raw string) NewsCategory {
	switch NewsCategory(raw) {
	case CategoryMatchResult, CategoryPlayerNews, CategoryTeamUpdate:
		return NewsCategory(raw)
	default:
		log.Warn("Unrecognized news category, defaulting to team-update", "category", raw)
		return CategoryTeamUpdate
	}
}

// Player is a squad member. The stat counters move only through explicit
// admin edits, never from game results.
type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	YellowCards   int    `json:"yellow_cards"`
	RedCards      int    `json:"red_cards"`
	MOTMAwards    int    `json:"motm_awards"`
	MatchesPlayed int    `json:"matches_played"`
}

// Game is a fixture. HomeScore and AwayScore are both nil until the match
// is played. MOTMPlayerID is a weak reference to a Player; MOTMName is the
// joined display name resolved by the fetch.
type Game struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	Opponent     string     `json:"opponent"`
	Venue        *string    `json:"venue,omitempty"`
	IsHome       bool       `json:"is_home"`
	HomeScore    *int       `json:"home_score,omitempty"`
	AwayScore    *int       `json:"away_score,omitempty"`
	Status       GameStatus `json:"status"`
	MOTMPlayerID *string    `json:"motm_player_id,omitempty"`
	MOTMName     *string    `json:"motm_name,omitempty"`
}

// NewsArticle is a published article. PublishedAt is set by the store on
// insert and never updated.
type NewsArticle struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Excerpt     string       `json:"excerpt"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	Category    NewsCategory `json:"category"`
	Featured    bool         `json:"featured"`
	PublishedAt int64        `json:"published_at"`
}

// TeamStatistics is the singleton aggregate row maintained externally.
// The store only reads it.
type TeamStatistics struct {
	ID             string `json:"id"`
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// TeamBranding is the singleton branding row.
type TeamBranding struct {
	ID       string  `json:"id"`
	LogoURL  *string `json:"logo_url,omitempty"`
	TeamName string  `json:"team_name"`
}

// NewPlayer is the insert shape for a player. Counters start at zero.
type NewPlayer struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// PlayerUpdate is a partial update; nil fields are left untouched.
type PlayerUpdate struct {
	Name          *string `json:"name,omitempty"`
	Position      *string `json:"position,omitempty"`
	Goals         *int    `json:"goals,omitempty"`
	Assists       *int    `json:"assists,omitempty"`
	YellowCards   *int    `json:"yellow_cards,omitempty"`
	RedCards      *int    `json:"red_cards,omitempty"`
	MOTMAwards    *int    `json:"motm_awards,omitempty"`
	MatchesPlayed *int    `json:"matches_played,omitempty"`
}

// NewGame is the insert shape for a game.
type NewGame struct {
	Date     string     `json:"date"`
	Opponent string     `json:"opponent"`
	Venue    *string    `json:"venue,omitempty"`
	IsHome   bool       `json:"is_home"`
	Status   GameStatus `json:"status"`
}

// GameUpdate is a partial update; nil fields are left untouched.
type GameUpdate struct {
	Date         *string     `json:"date,omitempty"`
	Opponent     *string     `json:"opponent,omitempty"`
	Venue        *string     `json:"venue,omitempty"`
	IsHome       *bool       `json:"is_home,omitempty"`
	HomeScore    *int        `json:"home_score,omitempty"`
	AwayScore    *int        `json:"away_score,omitempty"`
	Status       *GameStatus `json:"status,omitempty"`
	MOTMPlayerID *string     `json:"motm_player_id,omitempty"`
}

// NewNewsArticle is the insert shape for a news article.
type NewNewsArticle struct {
	Title    string       `json:"title"`
	Excerpt  string       `json:"excerpt"`
	Content  string       `json:"content"`
	Author   string       `json:"author"`
	Category NewsCategory `json:"category"`
	Featured bool         `json:"featured"`
}
