package builtin

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/todo-cli/td/internal/branding"
	"github.com/todo-cli/td/internal/command"
	"github.com/todo-cli/td/internal/completion"
)

func validateCompletionShell(args *command.Args) string {
	shell := strings.ToLower(args.String("shell"))
	if !slices.Contains(completion.Shells, shell) {
		return fmt.Sprintf("%s is not a supported shell. Allowed values: %s", args.String("shell"), strings.Join(completion.Shells, ", "))
	}
	return ""
}

func (c *Commands) completionScript(ctx context.Context, env *command.Env, args *command.Args, done *command.Completion) {
	g, err := completion.For(args.String("shell"), branding.CLIName())
	if err != nil {
		done.Done(err)
		return
	}
	done.Done(c.generate(env, g))
}

func (c *Commands) completionClink(ctx context.Context, env *command.Env, args *command.Args, done *command.Completion) {
	done.Done(c.generate(env, completion.Clink{CLIName: branding.CLIName()}))
}

func (c *Commands) generate(env *command.Env, g completion.Generator) error {
	if c.Registry == nil {
		return errors.New("no commands available for completion")
	}
	if err := g.Generate(env.Out, c.Registry.Commands()); err != nil {
		return fmt.Errorf("generating completion: %w", err)
	}
	return nil
}
