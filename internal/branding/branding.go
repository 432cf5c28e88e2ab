// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed. It names the binary, the
// per-user home directory, the environment prefix, and the file and heading
// names the recorder writes.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	DocumentFile   string `yaml:"document_file"`
	DocumentTitle  string `yaml:"document_title"`
	SectionHeading string `yaml:"section_heading"`
	LogFile        string `yaml:"log_file"`
	ConfigFile     string `yaml:"config_file"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:        "learn",
			DisplayName:    "Learn",
			Description:    "Record session learnings into CLAUDE.md",
			HomeDir:        ".claude",
			EnvPrefix:      "LEARN",
			GoModule:       "github.com/agentx-labs/learn",
			DocumentFile:   "CLAUDE.md",
			DocumentTitle:  "# Claude Instructions",
			SectionHeading: "## Learned from Sessions",
			LogFile:        "learnings.json",
			ConfigFile:     "learn",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "learn").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".claude").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "LEARN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// DocumentFile returns the instructions document file name (e.g., "CLAUDE.md").
func DocumentFile() string { load(); return defaults.DocumentFile }

// DocumentTitle returns the header line written into a new instructions document.
func DocumentTitle() string { load(); return defaults.DocumentTitle }

// SectionHeading returns the heading line of the learned-entries section.
func SectionHeading() string { load(); return defaults.SectionHeading }

// LogFile returns the learning log file name (e.g., "learnings.json").
func LogFile() string { load(); return defaults.LogFile }

// ConfigFile returns the config file base name, without extension.
func ConfigFile() string { load(); return defaults.ConfigFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "LEARN_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
