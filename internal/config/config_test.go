package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_ENV", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_SECRET", "")

	LoadConfig()

	cfg := GetConfig()
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "karigar.db", cfg.Database.DSN)
	assert.Equal(t, "karigar_session", cfg.Session.CookieName)
	assert.Equal(t, 24, cfg.Session.TTLHours)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 8080
  env: production
database:
  url: "postgres://localhost/karigar"
session:
  secret: "file_secret"
  ttl_hours: 1
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_ENV", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_SECRET", "")

	LoadConfig()

	cfg := GetConfig()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "postgres://localhost/karigar", cfg.Database.DSN)
	assert.Equal(t, "file_secret", cfg.Session.Secret)
	assert.Equal(t, 1, cfg.Session.TTLHours)
	// Незаполненные в файле поля остаются дефолтными
	assert.Equal(t, "karigar_session", cfg.Session.CookieName)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATABASE_URL", "file:env?mode=memory")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SESSION_SECRET", "env_secret")

	LoadConfig()

	cfg := GetConfig()
	assert.Equal(t, "file:env?mode=memory", cfg.Database.DSN)
	assert.Equal(t, "test", cfg.Server.Env)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "env_secret", cfg.Session.Secret)
}
