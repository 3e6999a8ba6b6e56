package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/todo-cli/td/internal/branding"
	"github.com/todo-cli/td/internal/builtin"
	"github.com/todo-cli/td/internal/command"
	"github.com/todo-cli/td/internal/completion"
	"github.com/todo-cli/td/internal/config"
	"github.com/todo-cli/td/internal/dispatch"
	"github.com/todo-cli/td/internal/help"
	"github.com/todo-cli/td/internal/loader"
	"github.com/todo-cli/td/internal/logging"
	"github.com/todo-cli/td/internal/manifest"
	"github.com/todo-cli/td/internal/telemetry"
)

// ManifestsDirName is the directory under the config dir holding user
// command manifests.
const ManifestsDirName = "commands"

// Execute runs td with the process arguments and returns the exit code.
// Build info is injected via ldflags.
func Execute(version, commit, date string) int {
	build := builtin.Build{Version: version, Commit: commit, Date: date}
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, build)
}

// Run dispatches argv and returns the exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer, build builtin.Build) int {
	// cobra reads os.Args when handed a nil slice.
	if argv == nil {
		argv = []string{}
	}

	d, err := newDispatcher(stdout, stderr, build.Resolved())
	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "Error: %s\n", err)
		return dispatch.ExitFailure
	}

	code := dispatch.ExitOK
	root := newRootCmd(d, &code)
	if isCompletionRequest(argv) {
		root = completion.Tree(branding.CLIName(), d.Registry.Commands())
	}
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(stderr, "Error: %s\n", err)
		return dispatch.ExitFailure
	}
	return code
}

// isCompletionRequest reports whether argv is a callback from a script
// generated by completion.Cobra.
func isCompletionRequest(argv []string) bool {
	return len(argv) > 0 && (argv[0] == cobra.ShellCompRequestCmd || argv[0] == cobra.ShellCompNoDescRequestCmd)
}

// newRootCmd returns a root command that leaves flag parsing and help to the
// dispatcher.
func newRootCmd(d *dispatch.Dispatcher, code *int) *cobra.Command {
	return &cobra.Command{
		Use:                branding.CLIName(),
		Short:              branding.Description(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = d.Execute(cmd.Context(), args)
			return nil
		},
	}
}

// newDispatcher loads configuration and wires the registry, logger,
// telemetry and help renderer. build is expected to be resolved already.
func newDispatcher(stdout, stderr io.Writer, build builtin.Build) (*dispatch.Dispatcher, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	log, err := logging.New(logging.Options{
		Level:  config.Get(config.KeyLogLevel),
		File:   config.Get(config.KeyLogFile),
		JSON:   config.GetBool(config.KeyLogJSON),
		Output: stderr,
	})
	if err != nil {
		return nil, err
	}

	reg := command.NewRegistry()
	builtins := &builtin.Commands{
		Build:        build,
		Registry:     reg,
		ManifestsDir: filepath.Join(config.Dir(), ManifestsDirName),
	}
	if err := loadCommands(reg, builtins); err != nil {
		return nil, err
	}
	log.WithField("commands", reg.Len()).Debug("registry populated")

	return &dispatch.Dispatcher{
		Registry: reg,
		Help: &help.Text{
			Version: build.Version,
			DocsDir: config.Get(config.KeyHelpDocsDir),
		},
		Telemetry: telemetry.New(
			config.GetBool(config.KeyTelemetryDisabled),
			config.Get(config.KeyTelemetryEndpoint),
			build.Version,
			log,
		),
		Log:     log,
		Out:     stdout,
		Err:     stderr,
		Version: build.Version,
	}, nil
}

// loadCommands registers the built-in manifest followed by any user
// manifests. User manifests bind to the built-in actions.
func loadCommands(reg *command.Registry, builtins *builtin.Commands) error {
	base, err := builtin.Manifest()
	if err != nil {
		return fmt.Errorf("loading built-in commands: %w", err)
	}
	user, err := loader.ReadDir(builtins.ManifestsDir)
	if err != nil {
		return err
	}

	files := append([]*manifest.File{base}, user...)
	return loader.Load(reg, files, builtins.Bindings(), builtins.Build.Version)
}
