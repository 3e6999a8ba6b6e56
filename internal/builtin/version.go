package builtin

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/todo-cli/td/internal/branding"
	"github.com/todo-cli/td/internal/command"
)

func (c *Commands) version(ctx context.Context, env *command.Env, args *command.Args, done *command.Completion) {
	b := c.Build.Resolved()

	switch {
	case args.Bool("short"):
		fmt.Fprintln(env.Out, b.Version)
		done.Done(nil)
	case args.Bool("json") || wantsJSON(args):
		done.Done(writeJSON(env.Out, b))
	default:
		fmt.Fprintf(env.Out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), b.Version, b.Commit, b.Date)
		done.Done(nil)
	}
}

// Resolved normalizes the version to semver without a "v" prefix. Builds
// without linker flags fall back to the module version from build info.
func (b Build) Resolved() Build {
	version := b.Version
	if version == "" || version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}
	b.Version = NormalizeVersion(version)
	if b.Commit == "" {
		b.Commit = "none"
	}
	if b.Date == "" {
		b.Date = "unknown"
	}
	return b
}

// NormalizeVersion returns v in canonical semver form. Values that are not
// semver, such as "dev", are returned unchanged.
func NormalizeVersion(v string) string {
	sv, err := semver.NewVersion(strings.TrimSpace(v))
	if err != nil {
		if v == "" {
			return "dev"
		}
		return v
	}
	return sv.String()
}
