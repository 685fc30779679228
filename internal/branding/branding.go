// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. They name the tool on the command line, in the
// user's home directory, in environment variables and in the system-wide
// template search roots.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "couchapp",
			DisplayName: "Couchapp",
			Description: "Scaffold and generate CouchApp design documents from templates",
			HomeDir:     ".couchapp",
			EnvPrefix:   "COUCHAPP",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "couchapp").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Couchapp").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".couchapp").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "COUCHAPP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ToolName returns the title-cased CLI name used for per-user application
// folders, e.g. "Couchapp" in ~/Library/Application Support/Couchapp.
func ToolName() string {
	return cases.Title(language.English).String(CLIName())
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "COUCHAPP_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
