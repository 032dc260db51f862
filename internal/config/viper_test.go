package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors t.Chdir, which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from an empty directory so no config file is picked up.
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "text-embedding-004", cfg.AI.EmbeddingModel)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "overrides.yaml", cfg.Import.OverridesFile)
	assert.False(t, cfg.Import.AllowDuplicate)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MIMIS_LOG_LEVEL", "debug")
	t.Setenv("MIMIS_IMPORT_DEFAULT_WHO", "alex")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "alex", cfg.Import.DefaultWho)
}

func TestInitializeConfigGeminiKeyBinding(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestDatabasePath(t *testing.T) {
	var cfg Config
	assert.Equal(t, filepath.Join("data", "expenses.db"), cfg.DatabasePath())

	cfg.Data.Directory = "/var/lib/mimis"
	cfg.Data.DatabaseFile = "house.db"
	assert.Equal(t, filepath.Join("/var/lib/mimis", "house.db"), cfg.DatabasePath())

	cfg.Data.DatabaseFile = "/tmp/abs.db"
	assert.Equal(t, "/tmp/abs.db", cfg.DatabasePath())
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		var c Config
		c.Log.Level = "info"
		c.Log.Format = "text"
		return &c
	}

	assert.NoError(t, validateConfig(valid()))

	c := valid()
	c.Log.Level = "loud"
	assert.Error(t, validateConfig(c))

	c = valid()
	c.Log.Format = "xml"
	assert.Error(t, validateConfig(c))

	c = valid()
	c.AI.Enabled = true
	assert.Error(t, validateConfig(c), "AI enabled without an API key")

	c = valid()
	c.AI.Enabled = true
	c.AI.APIKey = "key"
	c.AI.TimeoutSeconds = 0
	assert.Error(t, validateConfig(c))

	c = valid()
	c.AI.Enabled = true
	c.AI.APIKey = "key"
	c.AI.TimeoutSeconds = 30
	assert.NoError(t, validateConfig(c))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var c Config
	c.Log.Level = "debug"
	c.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&c)
	assert.Equal(t, logrus.DebugLevel, logger.Level)
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	c.Log.Level = "nonsense"
	c.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(&c)
	assert.Equal(t, logrus.InfoLevel, logger.Level)
}
