package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin@alumni.edu", cfg.Admin.Email)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	content := []byte(`
server:
  port: "9090"
  mode: production

admin:
  username: root
  password: changeme

cors:
  allowed_origins:
    - "https://alumni.example.com"
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "root", cfg.Admin.Username)
	assert.Equal(t, "changeme", cfg.Admin.Password)
	assert.Equal(t, []string{"https://alumni.example.com"}, cfg.CORS.AllowedOrigins)
	// Untouched sections keep their defaults
	assert.Equal(t, "admin@alumni.edu", cfg.Admin.Email)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	content := []byte(`
server:
  port: "9090"
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("ADMIN_PASSWORD", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Admin.Password)
}

func TestLoadConfigRejectsMissingAdminCredentials(t *testing.T) {
	content := []byte(`
admin:
  username: ""
  password: ""
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
