// Package loader turns command manifests into registered command definitions.
package loader

import (
	"fmt"

	"github.com/todo-cli/td/internal/command"
	"github.com/todo-cli/td/internal/manifest"
)

// Binding is the Go side of a manifest command, looked up by its action key.
type Binding struct {
	Action   command.ActionFunc
	Validate command.ValidateFunc
}

// Bindings maps manifest action keys to their implementations.
type Bindings map[string]Binding

// Load registers every command declared in manifests. Each manifest's
// cliVersion constraint is checked against version first. Loading stops at
// the first error; duplicate names surface as *command.DuplicateCommandError.
func Load(reg *command.Registry, manifests []*manifest.File, bindings Bindings, version string) error {
	for _, f := range manifests {
		if err := manifest.CheckCompatibility(f, version); err != nil {
			return err
		}
		for _, c := range f.Commands {
			def, err := Definition(c, bindings)
			if err != nil {
				return err
			}
			if err := reg.Register(def); err != nil {
				return fmt.Errorf("registering command %q: %w", c.Name, err)
			}
		}
	}
	return nil
}

// Definition converts one manifest command into a command definition.
func Definition(c manifest.Command, bindings Bindings) (*command.Definition, error) {
	b, ok := bindings[c.Action]
	if !ok || b.Action == nil {
		return nil, fmt.Errorf("command %q: no action registered for %q", c.Name, c.Action)
	}

	def := &command.Definition{
		Name:                manifest.Words(c.Name),
		Description:         c.Description,
		AllowUnknownOptions: c.AllowUnknownOptions,
		Validate:            b.Validate,
		Action:              b.Action,
		HelpDoc:             c.HelpDoc,
	}
	for _, a := range c.Aliases {
		def.Aliases = append(def.Aliases, manifest.Words(a))
	}
	for _, o := range c.Options {
		spec, err := command.ParseOptionSpec(o.Option, o.Description)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", c.Name, err)
		}
		def.Options = append(def.Options, spec)
	}
	return def, nil
}
