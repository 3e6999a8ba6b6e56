package manifest

import "strings"

// File is a parsed command manifest.
type File struct {
	// CLIVersion is a semver constraint the running binary must satisfy,
	// e.g. ">= 1.0.0". Empty means any version.
	CLIVersion string    `yaml:"cliVersion,omitempty" json:"cliVersion,omitempty"`
	Commands   []Command `yaml:"commands" json:"commands"`
}

// Command declares one command.
type Command struct {
	Name                string   `yaml:"name" json:"name"`
	Aliases             []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Description         string   `yaml:"description" json:"description"`
	Action              string   `yaml:"action" json:"action"`
	HelpDoc             string   `yaml:"helpDoc,omitempty" json:"helpDoc,omitempty"`
	AllowUnknownOptions bool     `yaml:"allowUnknownOptions,omitempty" json:"allowUnknownOptions,omitempty"`
	Options             []Option `yaml:"options,omitempty" json:"options,omitempty"`
}

// Option declares one option in commander form, e.g. "-x, --name <name>".
type Option struct {
	Option      string `yaml:"option" json:"option"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Words splits a space-separated command name into its words.
func Words(name string) []string {
	return strings.Fields(name)
}
