package config

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	BaseURL   string
	Turso     TursoConfig
	Slack     SlackConfig
	ProjectID string
	Logo      LogoConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// LogoConfig controls where uploaded team logos are written and how big
// they may be.
type LogoConfig struct {
	Dir      string
	MaxBytes int64
}
