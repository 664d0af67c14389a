package team

import "context"

// TeamStore defines the interface for interacting with the team's data.
// It is the only component that talks to the persistence layer; every
// successful write publishes a change event for the affected collection.
type TeamStore interface {
	GetPlayers(ctx context.Context) ([]Player, error)
	InsertPlayer(ctx context.Context, player NewPlayer) (string, error)
	UpdatePlayer(ctx context.Context, id string, update PlayerUpdate) error

	GetGames(ctx context.Context) ([]Game, error)
	InsertGame(ctx context.Context, game NewGame) (string, error)
	UpdateGame(ctx context.Context, id string, update GameUpdate) error

	GetNews(ctx context.Context) ([]NewsArticle, error)
	InsertNews(ctx context.Context, article NewNewsArticle) (string, error)

	GetTeamStats(ctx context.Context) (*TeamStatistics, error)
	GetTeamBranding(ctx context.Context) (*TeamBranding, error)
	SetBrandingLogo(ctx context.Context, id, logoURL string) error

	Clear()
}
