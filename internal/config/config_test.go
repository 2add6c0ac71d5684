package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"port": 9090,
		"api_key": "test-key",
		"model_advanced": "gemini-2.5-pro"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.ModelAdvanced)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "7070")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 7070, cfg.Port)
}

func TestFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "not-a-port")

	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Port)
}

func TestValidate(t *testing.T) {
	cfg := Config{APIKey: "k", Port: 8080}
	assert.NoError(t, cfg.Validate())

	missing := Config{Port: 8080}
	assert.Error(t, missing.Validate())

	badPort := Config{APIKey: "k", Port: 70000}
	assert.Error(t, badPort.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "from-env"}
	defaults := Config{APIKey: "from-file", Port: 9000, ModelLite: "gemini-2.0-flash"}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "from-env", merged.APIKey, "explicit values win over defaults")
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "gemini-2.0-flash", merged.ModelLite)
}

func TestMergeWithDefaults_FallbackPort(t *testing.T) {
	merged := (&Config{APIKey: "k"}).MergeWithDefaults(Config{})
	assert.Equal(t, 8080, merged.Port)
}
