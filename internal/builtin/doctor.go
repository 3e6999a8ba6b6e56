package builtin

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/todo-cli/td/internal/command"
	"github.com/todo-cli/td/internal/config"
	"github.com/todo-cli/td/internal/loader"
)

func (c *Commands) doctor(ctx context.Context, env *command.Env, args *command.Args, done *command.Completion) {
	w := env.Out
	b := c.Build.Resolved()

	fmt.Fprintln(w, "Runtime check:")
	fmt.Fprintf(w, "  [ OK ] version %s\n", b.Version)
	fmt.Fprintf(w, "  [ OK ] %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	fmt.Fprintln(w, "Configuration check:")
	checkPath(w, "config file", config.FilePath())
	checkPath(w, "help docs", config.Get(config.KeyHelpDocsDir))
	fmt.Fprintf(w, "  [INFO] aadAppId %s, tenant %s\n", config.Get(config.KeyAADAppID), config.Get(config.KeyTenant))
	if config.GetBool(config.KeyTelemetryDisabled) {
		fmt.Fprintln(w, "  [INFO] telemetry disabled")
	} else {
		fmt.Fprintln(w, "  [INFO] telemetry enabled")
	}

	fmt.Fprintln(w, "Commands check:")
	if c.Registry != nil {
		fmt.Fprintf(w, "  [ OK ] %d commands registered\n", c.Registry.Len())
	}
	if c.ManifestsDir != "" {
		files, err := loader.ReadDir(c.ManifestsDir)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
		case len(files) == 0:
			fmt.Fprintf(w, "  [INFO] no user manifests in %s\n", c.ManifestsDir)
		default:
			fmt.Fprintf(w, "  [ OK ] %d user manifest(s) in %s\n", len(files), c.ManifestsDir)
		}
	}
	done.Done(nil)
}

func checkPath(w io.Writer, label, path string) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found at %s\n", label, path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", label, path)
}
