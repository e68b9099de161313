package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"HYDROMIND_DIR", "HYDROMIND_STORE", "HYDROMIND_LOG_LEVEL"}

// clearEnv unsets the config variables for the test and restores them after.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".hydromind"), cfg.Dir)
	assert.Equal(t, StoreJSON, cfg.Store)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, logrus.WarnLevel, cfg.Level())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("HYDROMIND_DIR", dir)
	t.Setenv("HYDROMIND_STORE", "SQLite")
	t.Setenv("HYDROMIND_LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(DefaultDir(home), 0755))
	require.NoError(t, os.WriteFile(EnvFilePath(home), []byte("HYDROMIND_STORE=sqlite\nHYDROMIND_LOG_LEVEL=info\n"), 0644))

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvironmentOverridesEnvFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(DefaultDir(home), 0755))
	require.NoError(t, os.WriteFile(EnvFilePath(home), []byte("HYDROMIND_STORE=sqlite\n"), 0644))
	t.Setenv("HYDROMIND_STORE", "json")

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, StoreJSON, cfg.Store)
}

func TestLoadRejectsInvalidStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("HYDROMIND_STORE", "postgres")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid store")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Config{Store: StoreJSON, LogLevel: "warn"}.Validate())
	assert.Error(t, Config{Store: "", LogLevel: "warn"}.Validate())
	assert.Error(t, Config{Store: StoreSQLite, LogLevel: "loud"}.Validate())
}
