package command

import (
	"strings"

	"github.com/tidwall/btree"
)

// nameEntry is one name or alias of a registered command, lower-cased.
type nameEntry struct {
	words []string
	def   *Definition
	alias bool
}

// Registry holds all loaded command definitions. It is populated once at
// startup and must not be modified after the first Resolve.
type Registry struct {
	defs    []*Definition
	byFirst map[string][]nameEntry
	owners  map[string]*Definition
	sorted  *btree.Map[string, *Definition]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byFirst: make(map[string][]nameEntry),
		owners:  make(map[string]*Definition),
		sorted:  btree.NewMap[string, *Definition](0),
	}
}

// Register adds def to the registry. The global options are appended to
// def.Options unless the command already declares the same form.
func (r *Registry) Register(def *Definition) error {
	if len(def.Name) == 0 || strings.TrimSpace(def.CanonicalName()) == "" {
		return ErrEmptyName
	}

	names := append([][]string{def.Name}, def.Aliases...)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		key := joinKey(n)
		if owner, ok := r.owners[key]; ok {
			return &DuplicateCommandError{Name: strings.Join(n, " "), Existing: owner.CanonicalName()}
		}
		if seen[key] {
			return &DuplicateCommandError{Name: strings.Join(n, " "), Existing: def.CanonicalName()}
		}
		seen[key] = true
	}

	options, err := mergeOptions(def)
	if err != nil {
		return err
	}
	def.Options = options

	for i, n := range names {
		words := lowerWords(n)
		r.owners[strings.Join(words, " ")] = def
		r.byFirst[words[0]] = append(r.byFirst[words[0]], nameEntry{words: words, def: def, alias: i > 0})
	}
	r.defs = append(r.defs, def)
	r.sorted.Set(joinKey(def.Name), def)
	return nil
}

// MustRegister registers def and panics on failure. Duplicate registrations
// are programming errors that must abort startup.
func (r *Registry) MustRegister(def *Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Commands returns all registered commands sorted by canonical name.
func (r *Registry) Commands() []*Definition {
	out := make([]*Definition, 0, r.sorted.Len())
	r.sorted.Scan(func(_ string, def *Definition) bool {
		out = append(out, def)
		return true
	})
	return out
}

// Lookup finds the command whose name or alias is the longest prefix of
// tokens and returns the tokens left over. It does not treat "help",
// --help or an empty input specially.
func (r *Registry) Lookup(tokens []string) (*Definition, []string, bool) {
	entry, ok := r.match(tokens)
	if !ok {
		return nil, nil, false
	}
	return entry.def, clone(tokens[len(entry.words):]), true
}

// match implements longest-prefix matching. Among equally long matches a
// canonical name beats an alias; remaining ties go to the command that was
// registered first.
func (r *Registry) match(tokens []string) (nameEntry, bool) {
	var best nameEntry
	found := false
	if len(tokens) == 0 {
		return best, false
	}

	for _, c := range r.byFirst[strings.ToLower(tokens[0])] {
		if len(c.words) > len(tokens) || !hasPrefix(tokens, c.words) {
			continue
		}
		switch {
		case !found,
			len(c.words) > len(best.words),
			len(c.words) == len(best.words) && best.alias && !c.alias:
			best = c
			found = true
		}
	}
	return best, found
}

func mergeOptions(def *Definition) ([]OptionSpec, error) {
	forms := make(map[string]bool)
	claim := func(o OptionSpec) error {
		for _, f := range []string{"-" + o.Short, "--" + o.Long} {
			if f == "-" || f == "--" {
				continue
			}
			if forms[f] {
				return &DuplicateOptionError{Command: def.CanonicalName(), Option: f}
			}
			forms[f] = true
		}
		return nil
	}

	options := make([]OptionSpec, 0, len(def.Options)+3)
	for _, o := range def.Options {
		if err := claim(o); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	for _, g := range GlobalOptions() {
		if forms["--"+g.Long] {
			continue
		}
		if g.Short != "" && forms["-"+g.Short] {
			g.Short = ""
		}
		_ = claim(g)
		options = append(options, g)
	}
	return options, nil
}

func hasPrefix(tokens, words []string) bool {
	for i, w := range words {
		if strings.ToLower(tokens[i]) != w {
			return false
		}
	}
	return true
}

func lowerWords(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

func joinKey(words []string) string {
	return strings.Join(lowerWords(words), " ")
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
