package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/learn/internal/branding"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Recognized configuration keys.
const (
	KeyHome          = "home"
	KeyLogLevel      = "log_level"
	KeyViewerURL     = "viewer_url"
	KeyPreviewLength = "preview_length"
)

// Defaults for keys that are not set in the file or environment.
const (
	DefaultLogLevel      = "warn"
	DefaultViewerURL     = "https://excalidraw.com/#json="
	DefaultPreviewLength = 100
)

// Dir returns the path to the config directory. LEARN_HOME wins over ~/.claude/.
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

// FilePath returns the full path to the config file (~/.claude/learn.yaml).
func FilePath() string {
	return filepath.Join(Dir(), branding.ConfigFile()+"."+fileType)
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
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyViewerURL, DefaultViewerURL)
	viper.SetDefault(KeyPreviewLength, DefaultPreviewLength)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Home returns the configured home override, or "" when unset.
func Home() string {
	return viper.GetString(KeyHome)
}

// LogLevel returns the configured diagnostic log level.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// ViewerURL returns the prefix diagram payloads are appended to.
func ViewerURL() string {
	return viper.GetString(KeyViewerURL)
}

// PreviewLength returns how many characters of a diagram link to print.
func PreviewLength() int {
	n := viper.GetInt(KeyPreviewLength)
	if n <= 0 {
		return DefaultPreviewLength
	}
	return n
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
