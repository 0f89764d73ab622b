package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SEED_DEFAULT_USERS", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "SESSION", cfg.SessionCookieName)
	assert.True(t, cfg.SeedDefaultUsers)
	assert.Contains(t, cfg.CORSAllowedOrigins, "http://localhost:5173")
}

func TestLoad_YAMLThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
dbDsn: postgres://file
sessionTtl: 2h
loginRatePerMinute: 5
corsAllowedOrigins: ["http://a.test"]
seedDefaultUsers: false
`), 0o600))

	t.Setenv("DB_DSN", "postgres://env")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://b.test, http://c.test")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://env", cfg.DBDSN)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.LoginRatePerMinute)
	assert.Equal(t, []string{"http://b.test", "http://c.test"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.SeedDefaultUsers)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidEnvFails(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SESSION_TTL", "forever")

	_, err := Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.Port = "abc"
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.SessionTTL = 0
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Defaults().Validate())
	assert.Equal(t, ":8080", Defaults().Addr())
}

// chdir mirrors testing.T.Chdir (Go 1.24+): switch to dir and restore the
// previous working directory when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
