package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "ranking.db")
	t.Setenv("PORT", "8080")
	t.Setenv("CHAMPION_VALIDATION", "")
	t.Setenv("PUBSUB_TOPIC", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "ranking.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "match-recorded", cfg.PubSub.MatchRecordedTopic)
	assert.Equal(t, "https://ddragon.leagueoflegends.com", cfg.Champions.BaseURL)
	assert.False(t, cfg.Champions.Validate)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_NAME", "ranking.db")
	t.Setenv("PORT", "9090")
	t.Setenv("CHAMPION_VALIDATION", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://x1.example.com ,")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")

	cfg := Load()

	assert.True(t, cfg.Champions.Validate)
	assert.Equal(t, []string{"http://localhost:3000", "https://x1.example.com"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.SlackEnabled())
}
