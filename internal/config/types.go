package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	OddPolicy     string
	Turso         TursoConfig
	Slack         SlackConfig
	PubSub        PubSubConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// SlackConfig is optional. Announcements are only logged when Token is empty.
type SlackConfig struct {
	Token     string
	ChannelID string
}

type PubSubConfig struct {
	ProjectID   string
	TopicPrefix string
}
