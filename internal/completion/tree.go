package completion

import (
	"slices"
	"strings"

	"github.com/todo-cli/td/internal/command"
)

// node is one word of a command path. Nodes reached by a full name or alias
// carry that command's options.
type node struct {
	word     string
	def      *command.Definition
	children map[string]*node
}

func newNode(word string) *node {
	return &node{word: word, children: make(map[string]*node)}
}

// buildTree indexes every canonical name and alias of defs by word.
func buildTree(defs []*command.Definition) *node {
	root := newNode("")
	for _, def := range defs {
		root.insert(def.Name, def)
		for _, alias := range def.Aliases {
			root.insert(alias, def)
		}
	}
	return root
}

func (n *node) insert(words []string, def *command.Definition) {
	cur := n
	for _, w := range words {
		w = strings.ToLower(w)
		next, ok := cur.children[w]
		if !ok {
			next = newNode(w)
			cur.children[w] = next
		}
		cur = next
	}
	cur.def = def
}

// sorted returns the children ordered by word.
func (n *node) sorted() []*node {
	out := make([]*node, 0, len(n.children))
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out = append(out, n.children[k])
	}
	return out
}

// flags returns the option forms of the node's command, long forms first.
func (n *node) flags() []string {
	if n.def == nil {
		return nil
	}
	var long, short []string
	for _, o := range n.def.Options {
		if o.Long != "" {
			long = append(long, "--"+o.Long)
		}
		if o.Short != "" {
			short = append(short, "-"+o.Short)
		}
	}
	return append(long, short...)
}
