package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchapp/couchapp/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyTemplate    = "template"
	KeySearchPaths = "search_paths"
	KeyVerbose     = "verbose"
)

// Dir returns the path to the config directory (~/.couchapp/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.couchapp/config.yaml).
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
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplate, "default")
	viper.SetDefault(KeyVerbose, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// DefaultTemplate returns the template set used by init when none is given.
func DefaultTemplate() string {
	if v := viper.GetString(KeyTemplate); v != "" {
		return v
	}
	return "default"
}

// Verbose reports whether debug logging was requested through config or env.
func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}

// SearchPaths returns the extra user-level template roots. The value is a
// comma separated list when set from the environment or with "config set",
// or a YAML sequence when written by hand.
func SearchPaths() []string {
	raw := viper.Get(KeySearchPaths)
	var parts []string
	switch v := raw.(type) {
	case nil:
		return nil
	case []interface{}:
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
	case []string:
		parts = v
	default:
		parts = strings.Split(fmt.Sprint(v), ",")
	}

	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
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
