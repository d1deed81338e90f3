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

const minimalConfig = `
server:
  host: "127.0.0.1"
  port: 8080
firebase:
  project_id: "proj"
  database_url: "https://proj.firebaseio.com"
  web_api_key: "key"
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
	assert.Equal(t, 3*time.Second, cfg.Firebase.PollInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.DigestPendingRequests)
	assert.False(t, cfg.ArchiveEnabled())
}

func TestLoadRejectsMissingFirebase(t *testing.T) {
	_, err := Load(writeConfig(t, `
server:
  port: 8080
firebase:
  project_id: "proj"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database url")
}

func TestLoadRejectsBadPort(t *testing.T) {
	_, err := Load(writeConfig(t, `
server:
  port: 0
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server port")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FIREBASE_WEB_API_KEY", "env-key")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Firebase.WebAPIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestArchiveValidation(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
database:
  host: "localhost"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database user")

	cfg, err := Load(writeConfig(t, minimalConfig+`
database:
  host: "localhost"
  port: 5432
  user: "u"
  database: "archive"
`))
	require.NoError(t, err)
	assert.True(t, cfg.ArchiveEnabled())
	assert.Contains(t, cfg.GetDatabaseConnectionString(), "sslmode=disable")
}
