// Package builtin holds the commands compiled into the binary. They are
// declared in an embedded manifest and bound to their actions here.
package builtin

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/todo-cli/td/internal/command"
	"github.com/todo-cli/td/internal/loader"
	"github.com/todo-cli/td/internal/manifest"
)

//go:embed commands.yaml
var manifestData []byte

// Manifest returns the parsed built-in command manifest.
func Manifest() (*manifest.File, error) {
	return manifest.Parse(manifestData, "builtin/commands.yaml")
}

// Build identifies the running binary.
type Build struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Commands binds the built-in actions. Registry is consulted by the doctor
// and completion commands.
type Commands struct {
	Build        Build
	Registry     *command.Registry
	ManifestsDir string
}

// Bindings returns the action bindings for the built-in manifest.
func (c *Commands) Bindings() loader.Bindings {
	return loader.Bindings{
		"version":     {Action: c.version},
		"config.get":  {Action: c.configGet},
		"config.set":  {Action: c.configSet, Validate: validateConfigSet},
		"config.list": {Action: c.configList},
		"doctor":      {Action: c.doctor},

		"completion.script": {Action: c.completionScript, Validate: validateCompletionShell},
		"completion.clink":  {Action: c.completionClink},
	}
}

// wantsJSON reports whether the global --output option asked for JSON.
func wantsJSON(args *command.Args) bool {
	return args.String("output") == "json"
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
