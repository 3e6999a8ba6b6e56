package dispatch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/todo-cli/td/internal/command"
	"github.com/todo-cli/td/internal/help"
	"github.com/todo-cli/td/internal/logging"
	"github.com/todo-cli/td/internal/telemetry"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Dispatcher runs one invocation against a populated registry.
type Dispatcher struct {
	Registry  *command.Registry
	Help      help.Renderer
	Telemetry telemetry.Tracker
	Log       *logrus.Logger
	Out       io.Writer
	Err       io.Writer
	Version   string
}

var errorColor = color.New(color.FgRed)

// Execute dispatches tokens and returns the process exit code.
func (d *Dispatcher) Execute(ctx context.Context, tokens []string) int {
	res := d.Registry.Resolve(tokens)
	d.Log.WithFields(logrus.Fields{"state": "resolving", "result": res.Kind.String()}).Debug("resolved arguments")

	switch res.Kind {
	case command.HelpRequested:
		return d.showHelp(res)
	case command.CommandFound:
		return d.run(ctx, res.Command, res.Remaining)
	default:
		return d.fail(&command.CommandNotFoundError{Tokens: commandWords(tokens)})
	}
}

func (d *Dispatcher) showHelp(res command.Resolution) int {
	d.Log.WithField("state", "rendering-help").Debug("rendering help")

	if res.Generic() {
		if err := d.Help.Generic(d.Out, d.Registry.Commands()); err != nil {
			return d.fail(err)
		}
		return ExitOK
	}

	def, _, ok := d.Registry.Lookup(res.HelpTokens)
	if !ok {
		return d.fail(&command.CommandNotFoundError{Tokens: res.HelpTokens})
	}
	if err := d.Help.Command(d.Out, def); err != nil {
		return d.fail(err)
	}
	return ExitOK
}

func (d *Dispatcher) run(ctx context.Context, def *command.Definition, remaining []string) int {
	name := def.CanonicalName()
	log := d.Log.WithField("command", name)

	log.WithField("state", "validating").Debug("validating options")
	args, err := command.ParseAndValidate(def, remaining)
	if err != nil {
		return d.fail(err)
	}
	logging.ApplyFlags(d.Log, args.Bool("verbose"), args.Bool("debug"))

	if def.Action == nil {
		return d.fail(fmt.Errorf("command '%s' has no action", name))
	}

	tracked := d.track(ctx, name)
	defer func() { <-tracked }()

	log.WithField("state", "executing").Debug("executing command")
	env := &command.Env{
		Out:     d.Out,
		Err:     d.Err,
		Log:     log,
		Version: d.Version,
		Command: def,
	}
	done := command.NewCompletion()
	def.Action(ctx, env, args, done)

	if err := done.Wait(); err != nil {
		return d.fail(err)
	}
	log.WithField("state", "done").Debug("command completed")
	return ExitOK
}

// track notifies the telemetry sink in the background. The returned channel
// closes once delivery has finished or failed; panics in the sink are
// swallowed.
func (d *Dispatcher) track(ctx context.Context, name string) <-chan struct{} {
	finished := make(chan struct{})
	if d.Telemetry == nil {
		close(finished)
		return finished
	}

	go func() {
		defer close(finished)
		defer func() {
			if r := recover(); r != nil {
				d.Log.WithField("panic", r).Debug("telemetry sink panicked")
			}
		}()
		d.Telemetry.TrackEvent(ctx, name, nil)
	}()
	return finished
}

// fail writes err to the error stream verbatim and returns ExitFailure.
func (d *Dispatcher) fail(err error) int {
	d.Log.WithField("state", "failed").WithError(err).Debug("dispatch failed")
	errorColor.Fprintf(d.Err, "Error: %s\n", err)
	return ExitFailure
}

// commandWords returns the leading tokens up to the first option; they name
// the command the user tried to run. Input starting with an option is named
// by that first token.
func commandWords(tokens []string) []string {
	for i, t := range tokens {
		if strings.HasPrefix(t, "-") {
			if i == 0 {
				return tokens[:1]
			}
			return tokens[:i]
		}
	}
	return tokens
}
