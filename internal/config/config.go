package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/linyuyun1234-arch/opcode/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by Settings.
const (
	KeyFetchTimeout      = "fetch.timeout"
	KeyFetchRetries      = "fetch.retries"
	KeyAnthropicEndpoint = "endpoints.anthropic"
	KeyGitHubAPIEndpoint = "endpoints.github_api"
	KeyGitHubRawEndpoint = "endpoints.github_raw"
	KeyLogLevel          = "log.level"
)

// Default values applied when neither the config file nor the environment
// sets a key.
const (
	DefaultFetchTimeout      = 30 * time.Second
	DefaultFetchRetries      = 0
	DefaultAnthropicEndpoint = "https://api.anthropic.com"
	DefaultGitHubAPIEndpoint = "https://api.github.com"
	DefaultGitHubRawEndpoint = "https://raw.githubusercontent.com"
	DefaultLogLevel          = "debug"
)

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	FetchTimeout      time.Duration
	FetchRetries      int
	AnthropicEndpoint string
	GitHubAPIEndpoint string
	GitHubRawEndpoint string
	LogLevel          string
}

// Dir returns the path to the config directory (~/.opcode/).
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.opcode/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// OPCODE_FETCH_TIMEOUT overrides fetch.timeout, and so on.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyFetchTimeout, DefaultFetchTimeout)
	viper.SetDefault(KeyFetchRetries, DefaultFetchRetries)
	viper.SetDefault(KeyAnthropicEndpoint, DefaultAnthropicEndpoint)
	viper.SetDefault(KeyGitHubAPIEndpoint, DefaultGitHubAPIEndpoint)
	viper.SetDefault(KeyGitHubRawEndpoint, DefaultGitHubRawEndpoint)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the typed settings. Load must have been called first.
func Current() Settings {
	s := Settings{
		FetchTimeout:      viper.GetDuration(KeyFetchTimeout),
		FetchRetries:      viper.GetInt(KeyFetchRetries),
		AnthropicEndpoint: strings.TrimRight(viper.GetString(KeyAnthropicEndpoint), "/"),
		GitHubAPIEndpoint: strings.TrimRight(viper.GetString(KeyGitHubAPIEndpoint), "/"),
		GitHubRawEndpoint: strings.TrimRight(viper.GetString(KeyGitHubRawEndpoint), "/"),
		LogLevel:          viper.GetString(KeyLogLevel),
	}
	if s.FetchTimeout <= 0 {
		s.FetchTimeout = DefaultFetchTimeout
	}
	if s.FetchRetries < 0 {
		s.FetchRetries = 0
	}
	if s.AnthropicEndpoint == "" {
		s.AnthropicEndpoint = DefaultAnthropicEndpoint
	}
	if s.GitHubAPIEndpoint == "" {
		s.GitHubAPIEndpoint = DefaultGitHubAPIEndpoint
	}
	if s.GitHubRawEndpoint == "" {
		s.GitHubRawEndpoint = DefaultGitHubRawEndpoint
	}
	return s
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
