package help

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/todo-cli/td/internal/branding"
	"github.com/todo-cli/td/internal/command"
)

// Renderer produces human-readable help text.
type Renderer interface {
	// Generic writes the listing of all commands.
	Generic(w io.Writer, commands []*command.Definition) error
	// Command writes the help page of a single command.
	Command(w io.Writer, def *command.Definition) error
}

// MarkdownRenderer turns a Markdown help page into terminal output.
type MarkdownRenderer interface {
	Render(w io.Writer, source []byte) error
}

// Text is the default Renderer.
type Text struct {
	Version  string
	DocsDir  string
	Markdown MarkdownRenderer
}

var heading = color.New(color.Bold)

// Generic writes the banner, usage line and one line per command, sorted by
// canonical name, with a blank line between commands of different groups.
func (t *Text) Generic(w io.Writer, commands []*command.Definition) error {
	cli := branding.CLIName()

	fmt.Fprintln(w, branding.Banner(t.Version))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Usage: %s <command> [options]\n", cli)
	fmt.Fprintln(w)
	heading.Fprintln(w, "Commands:")
	fmt.Fprintln(w)

	width := 0
	for _, def := range commands {
		width = max(width, len(def.CanonicalName()))
	}

	group := ""
	for i, def := range commands {
		g := strings.ToLower(def.Name[0])
		if i > 0 && g != group {
			fmt.Fprintln(w)
		}
		group = g
		fmt.Fprintf(w, "  %-*s  %s\n", width, def.CanonicalName(), def.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run '%s help <command>' or '%s <command> --help' for details.\n", cli, cli)
	return nil
}

// Command renders the command's Markdown page when present, and generated
// usage otherwise.
func (t *Text) Command(w io.Writer, def *command.Definition) error {
	if src, ok, err := t.readDoc(def); err != nil {
		return err
	} else if ok {
		md := t.Markdown
		if md == nil {
			md = Plain{}
		}
		return md.Render(w, src)
	}
	return Usage(w, def)
}

func (t *Text) readDoc(def *command.Definition) ([]byte, bool, error) {
	if t.DocsDir == "" || def.HelpDoc == "" {
		return nil, false, nil
	}
	data, err := os.ReadFile(filepath.Join(t.DocsDir, def.HelpDoc))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading help for %s: %w", def.CanonicalName(), err)
	}
	return data, true, nil
}

// Usage writes help generated from the command definition.
func Usage(w io.Writer, def *command.Definition) error {
	fmt.Fprintf(w, "Usage: %s %s [options]\n", branding.CLIName(), def.CanonicalName())
	fmt.Fprintln(w)
	if def.Description != "" {
		fmt.Fprintln(w, def.Description)
		fmt.Fprintln(w)
	}
	if aliases := def.AliasNames(); len(aliases) > 0 {
		fmt.Fprintf(w, "Aliases: %s\n", strings.Join(aliases, ", "))
		fmt.Fprintln(w)
	}
	if len(def.Options) == 0 {
		return nil
	}

	heading.Fprintln(w, "Options:")
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  -h, --help\toutput usage information\n")
	for _, o := range def.Options {
		desc := o.Description
		if o.Required {
			desc += " (required)"
		}
		fmt.Fprintf(tw, "  %s\t%s\n", o.Usage(), strings.TrimSpace(desc))
	}
	return tw.Flush()
}
