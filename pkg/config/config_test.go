package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FIREFLIES_API_KEY", "ff-key")
	t.Setenv("GROQ_API_KEY", "groq-key")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "https://api.fireflies.ai/graphql", cfg.Fireflies.BaseURL)
	require.Equal(t, "llama-3.1-70b-versatile", cfg.Groq.Model)
	require.Equal(t, 30*time.Minute, cfg.Fireflies.SummaryTTL)
	require.False(t, cfg.Database.AutoMigrate)
}

func TestLoad_MissingFirefliesKey(t *testing.T) {
	t.Setenv("FIREFLIES_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "groq-key")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "FIREFLIES_API_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FIREFLIES_API_KEY", "ff-key")
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("DB_NAME", "meetingpress_test")
	t.Setenv("REDIS_PORT", "6390")
	t.Setenv("JWT_ACCESS_EXPIRY", "45m")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "meetingpress_test", cfg.Database.Name)
	require.Equal(t, "localhost:6390", cfg.GetRedisAddr())
	require.Equal(t, 45*time.Minute, cfg.JWT.AccessExpiry)
	require.Contains(t, cfg.GetDatabaseDSN(), "dbname=meetingpress_test")
}
