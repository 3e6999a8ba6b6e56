package completion

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/todo-cli/td/internal/command"
)

// Generator writes a completion script for the given commands.
type Generator interface {
	Generate(w io.Writer, commands []*command.Definition) error
}

// Shells lists the shells accepted by For.
var Shells = []string{"bash", "zsh", "fish", "powershell", "clink"}

// For returns the generator for shell.
func For(shell, cliName string) (Generator, error) {
	switch strings.ToLower(shell) {
	case "clink":
		return Clink{CLIName: cliName}, nil
	case "bash", "zsh", "fish", "powershell":
		return Cobra{CLIName: cliName, Shell: strings.ToLower(shell)}, nil
	default:
		return nil, fmt.Errorf("unsupported shell %q", shell)
	}
}

// Cobra generates scripts with cobra's generators from a command tree that
// mirrors the registry. The scripts call back into the binary through
// cobra.ShellCompRequestCmd, which Tree also serves.
type Cobra struct {
	CLIName string
	Shell   string
}

func (g Cobra) Generate(w io.Writer, commands []*command.Definition) error {
	root := Tree(g.CLIName, commands)
	switch g.Shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q", g.Shell)
	}
}

// Tree returns a cobra command tree with one command per name word and the
// options of each command registered as flags. It only answers completion
// requests; running a leaf does nothing.
func Tree(cliName string, commands []*command.Definition) *cobra.Command {
	root := &cobra.Command{
		Use:               cliName,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	for _, child := range buildTree(commands).sorted() {
		root.AddCommand(cobraCommand(child))
	}
	return root
}

func cobraCommand(n *node) *cobra.Command {
	cmd := &cobra.Command{Use: n.word}
	if n.def != nil {
		cmd.Short = n.def.Description
		cmd.Run = func(*cobra.Command, []string) {}
		addFlags(cmd, n.def)
	}
	for _, child := range n.sorted() {
		cmd.AddCommand(cobraCommand(child))
	}
	return cmd
}

func addFlags(cmd *cobra.Command, def *command.Definition) {
	fs := cmd.Flags()
	for _, o := range def.Options {
		name := o.Long
		if name == "" {
			name = o.Short
		}
		if fs.Lookup(name) != nil || (o.Short != "" && fs.ShorthandLookup(o.Short) != nil) {
			continue
		}
		if o.Value == command.NoValue {
			fs.BoolP(name, o.Short, false, o.Description)
		} else {
			fs.StringP(name, o.Short, "", o.Description)
		}
	}
}
