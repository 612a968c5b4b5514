package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/travel_desk")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.EnforceEligibility)
	assert.Equal(t, 5*time.Minute, cfg.ReferenceCacheTTL)
	assert.Equal(t, 3*time.Second, cfg.CollaboratorTimeout)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENFORCE_ELIGIBILITY", "true")
	t.Setenv("REFERENCE_CACHE_TTL", "90s")
	t.Setenv("COLLABORATOR_TIMEOUT", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://desk.example.ae, https://ops.example.ae")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.EnforceEligibility)
	assert.Equal(t, 90*time.Second, cfg.ReferenceCacheTTL)
	assert.Equal(t, 3*time.Second, cfg.CollaboratorTimeout)
	assert.Equal(t, []string{"https://desk.example.ae", "https://ops.example.ae"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "redis://cache:6379/0", cfg.RedisURL)
}

func TestParseServiceKeys(t *testing.T) {
	keys := parseServiceKeys("k1:kiosk, bad, k2:typing-center,:nobody")

	assert.Equal(t, map[string]string{"k1": "kiosk", "k2": "typing-center"}, keys)
	assert.Empty(t, parseServiceKeys(""))
}
