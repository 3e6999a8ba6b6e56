package completion

import (
	"fmt"
	"io"
	"strings"

	"github.com/todo-cli/td/internal/command"
)

// Clink generates a Lua argument parser for the clink Windows shell.
type Clink struct {
	CLIName string
}

func (g Clink) Generate(w io.Writer, commands []*command.Definition) error {
	var b strings.Builder
	b.WriteString("local parser = clink.arg.new_parser\n\n")
	fmt.Fprintf(&b, "local %s_parser = %s\n\n", luaIdent(g.CLIName), clinkParser(buildTree(commands), 0))
	fmt.Fprintf(&b, "clink.arg.register_parser(%q, %s_parser)\n", g.CLIName, luaIdent(g.CLIName))
	_, err := io.WriteString(w, b.String())
	return err
}

// clinkParser renders n as parser({words...}, flags...).
func clinkParser(n *node, depth int) string {
	var args []string

	if children := n.sorted(); len(children) > 0 {
		indent := strings.Repeat("  ", depth+1)
		var b strings.Builder
		b.WriteString("{\n")
		for _, c := range children {
			fmt.Fprintf(&b, "%s%q..%s,\n", indent, c.word, clinkParser(c, depth+1))
		}
		b.WriteString(strings.Repeat("  ", depth) + "}")
		args = append(args, b.String())
	}
	for _, f := range n.flags() {
		args = append(args, fmt.Sprintf("%q", f))
	}
	return "parser(" + strings.Join(args, ", ") + ")"
}

func luaIdent(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
