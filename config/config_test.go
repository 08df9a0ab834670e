package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults for optional fields", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("DATABASE_URL", "postgres://localhost/courier?sslmode=disable")
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := LoadConfig()
		req.NoError(err)
		req.Equal("8080", cfg.Port)
		req.Equal(24*time.Hour, cfg.TokenTTL)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("DATABASE_URL", "postgres://localhost/courier?sslmode=disable")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "9000")
		t.Setenv("TOKEN_TTL", "30m")

		cfg, err := LoadConfig()
		req.NoError(err)
		req.Equal("9000", cfg.Port)
		req.Equal(30*time.Minute, cfg.TokenTTL)
	})

	t.Run("fails when the database url is missing", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DATABASE_URL", "")
		os.Unsetenv("DATABASE_URL")

		_, err := LoadConfig()
		require.Error(t, err)
	})
}
