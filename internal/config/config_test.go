package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "geotrack", cfg.MongoDB.Database)
	assert.Equal(t, 30*time.Minute, cfg.Token.TTL)
	assert.Equal(t, 60*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, "geotrack-api", cfg.JWT.Issuer)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("TOKEN_TTL_MINUTES", "5")
	t.Setenv("JWT_SECRET", "env-secret")
	defer os.Unsetenv("SERVER_PORT")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Token.TTL)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}
