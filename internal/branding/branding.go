// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
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
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	LegacyEnvPrefix string `yaml:"legacy_env_prefix"`
	GoModule        string `yaml:"go_module"`
	GitHubRepo      string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "td",
			DisplayName:     "CLI for Microsoft To Do",
			Description:     "Manage Microsoft To Do lists and tasks from the command line",
			HomeDir:         ".td",
			EnvPrefix:       "TD",
			LegacyEnvPrefix: "CLIMICROSOFTTODO",
			GoModule:        "github.com/todo-cli/td",
			GitHubRepo:      "todo-cli/td",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "td").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".td").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TD").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// LegacyEnvPrefix returns the prefix of the environment variables honoured by
// earlier releases (e.g., "CLIMICROSOFTTODO").
func LegacyEnvPrefix() string { load(); return defaults.LegacyEnvPrefix }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// Banner returns the first line of generic help, e.g.
// "CLI for Microsoft To Do v1.2.0".
func Banner(version string) string {
	return DisplayName() + " v" + strings.TrimPrefix(version, "v")
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("tenant") → "TD_TENANT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

// LegacyEnvVar is EnvVar for the legacy prefix, e.g. "CLIMICROSOFTTODO_TENANT".
func LegacyEnvVar(suffix string) string {
	load()
	return defaults.LegacyEnvPrefix + "_" + strings.ToUpper(suffix)
}
