package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Setenv("OPCODE_HOME", dir)
	return dir
}

func TestCurrentDefaults(t *testing.T) {
	setupHome(t)
	Load()

	s := Current()
	assert.Equal(t, DefaultFetchTimeout, s.FetchTimeout)
	assert.Equal(t, 0, s.FetchRetries)
	assert.Equal(t, DefaultAnthropicEndpoint, s.AnthropicEndpoint)
	assert.Equal(t, DefaultGitHubAPIEndpoint, s.GitHubAPIEndpoint)
	assert.Equal(t, DefaultGitHubRawEndpoint, s.GitHubRawEndpoint)
}

func TestCurrentFromFile(t *testing.T) {
	dir := setupHome(t)
	content := "fetch:\n  timeout: 5s\n  retries: 2\nendpoints:\n  github_api: http://mirror.local/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	Load()
	s := Current()
	assert.Equal(t, 5*time.Second, s.FetchTimeout)
	assert.Equal(t, 2, s.FetchRetries)
	assert.Equal(t, "http://mirror.local", s.GitHubAPIEndpoint)
}

func TestCurrentFromEnv(t *testing.T) {
	setupHome(t)
	t.Setenv("OPCODE_FETCH_RETRIES", "3")
	t.Setenv("OPCODE_ENDPOINTS_ANTHROPIC", "http://127.0.0.1:9999")

	Load()
	s := Current()
	assert.Equal(t, 3, s.FetchRetries)
	assert.Equal(t, "http://127.0.0.1:9999", s.AnthropicEndpoint)
}

func TestSetPersists(t *testing.T) {
	dir := setupHome(t)
	Load()

	require.NoError(t, Set(KeyFetchRetries, "1"))
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "retries")

	viper.Reset()
	Load()
	assert.Equal(t, "1", Get(KeyFetchRetries))
}
