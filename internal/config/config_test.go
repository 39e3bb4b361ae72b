package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// unsetEnv убирает переменную на время теста, t.Setenv вернёт прежнее значение
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestMustLoadPath(t *testing.T) {
	unsetEnv(t, "ENV", "JWT_SECRET", "HTTP_PORT", "STORAGE_DRIVER", "WHATSAPP_PHONE", "CORS_ALLOWED_ORIGINS", "TOKEN_TTL")

	path := writeConfig(t, `
env: prod
http:
  port: "9090"
  read_timeout: 5s
storage:
  driver: postgres
  postgres_dsn: postgres://u:p@localhost:5432/studio
auth:
  jwt_secret: from-file
  token_ttl: 2h
cors:
  allowed_origins:
    - https://studio.example
    - https://www.studio.example
whatsapp:
  phone: "+91 98765 43210"
`)

	cfg := MustLoadPath(path)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://studio.example", "https://www.studio.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "+91 98765 43210", cfg.WhatsApp.Phone)
	assert.NotEmpty(t, cfg.WhatsApp.Message)
	assert.Equal(t, 10, cfg.RateLimit.LoginPerMinute)
	assert.True(t, cfg.SecureCookies())
}

func TestMustLoadPath_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
env: local
storage:
  driver: memory
`)
	unsetEnv(t, "ENV", "STORAGE_DRIVER", "TOKEN_TTL", "COOKIE_SECURE")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := MustLoadPath(path)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.SecureCookies())
}

func TestMustLoadPath_Panics(t *testing.T) {
	unsetEnv(t, "ENV", "STORAGE_DRIVER", "POSTGRES_DSN")

	t.Run("missing file", func(t *testing.T) {
		assert.Panics(t, func() { MustLoadPath(filepath.Join(t.TempDir(), "nope.yaml")) })
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		unsetEnv(t, "JWT_SECRET")
		path := writeConfig(t, "env: local\n")
		assert.Panics(t, func() { MustLoadPath(path) })
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		path := writeConfig(t, "env: local\nstorage:\n  driver: postgres\nauth:\n  jwt_secret: s\n")
		assert.Panics(t, func() { MustLoadPath(path) })
	})

	t.Run("unknown driver", func(t *testing.T) {
		path := writeConfig(t, "env: local\nstorage:\n  driver: sqlite\nauth:\n  jwt_secret: s\n")
		assert.Panics(t, func() { MustLoadPath(path) })
	})
}
