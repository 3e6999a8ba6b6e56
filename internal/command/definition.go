package command

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidateFunc runs after structural option checks succeed. An empty return
// allows execution; any other string is reported verbatim as the error.
type ValidateFunc func(args *Args) string

// ActionFunc is a command's business logic. It must call done.Done exactly
// once, from any goroutine, when it has finished.
type ActionFunc func(ctx context.Context, env *Env, args *Args, done *Completion)

// Definition describes one command: its multi-word name, aliases, option
// schema, optional validator and action.
type Definition struct {
	Name                []string
	Aliases             [][]string
	Description         string
	Options             []OptionSpec
	AllowUnknownOptions bool
	Validate            ValidateFunc
	Action              ActionFunc

	// HelpDoc is the file name of the command's Markdown help page, relative
	// to the configured docs directory. Empty means generated help only.
	HelpDoc string
}

// CanonicalName returns the space-joined canonical name, e.g. "cli mock".
func (d *Definition) CanonicalName() string {
	return strings.Join(d.Name, " ")
}

// AliasNames returns each alias space-joined.
func (d *Definition) AliasNames() []string {
	out := make([]string, 0, len(d.Aliases))
	for _, a := range d.Aliases {
		out = append(out, strings.Join(a, " "))
	}
	return out
}

// Option returns the declared option with the given short or long form.
func (d *Definition) Option(form string) (OptionSpec, bool) {
	for _, o := range d.Options {
		if (o.Long != "" && o.Long == form) || (o.Short != "" && o.Short == form) {
			return o, true
		}
	}
	return OptionSpec{}, false
}

// Env is the explicit invocation context handed to every action. It replaces
// any process-wide CLI singleton.
type Env struct {
	Out     io.Writer
	Err     io.Writer
	Log     logrus.FieldLogger
	Version string
	Command *Definition
}

// Args holds the normalized options of one invocation.
type Args struct {
	Options    map[string]any
	Supplied   map[string]bool
	Positional []string
}

// NewArgs returns an empty Args.
func NewArgs() *Args {
	return &Args{
		Options:  make(map[string]any),
		Supplied: make(map[string]bool),
	}
}

// Has reports whether the option was given explicitly on the command line.
func (a *Args) Has(name string) bool {
	return a.Supplied[name]
}

// String returns the option value, or "" when it is absent or a bare flag.
func (a *Args) String(name string) string {
	s, _ := a.Options[name].(string)
	return s
}

// Bool reports whether the option was given as a flag or with a truthy value.
func (a *Args) Bool(name string) bool {
	switch v := a.Options[name].(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1" || v == "yes"
	default:
		return false
	}
}

func (a *Args) set(name string, value any) {
	a.Options[name] = value
	a.Supplied[name] = true
}
