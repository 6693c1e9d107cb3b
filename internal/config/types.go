package config

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	LogLevel  string
	Turso     TursoConfig
	Slack     SlackConfig
	ProjectID string
	PubSub    PubSubConfig
	Champions ChampionsConfig
	// Origins allowed to call the API from the browser frontend.
	CORSAllowedOrigins []string
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
type PubSubConfig struct {
	MatchRecordedTopic string
}
type ChampionsConfig struct {
	BaseURL string
	Locale  string
	// Validate rejects submissions whose champion is not in the catalog.
	Validate bool
}

// SlackEnabled reports whether a bot token and channel are configured.
func (c Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}
