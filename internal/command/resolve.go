package command

// ResolutionKind tags the variant held by a Resolution.
type ResolutionKind int

const (
	NotFound ResolutionKind = iota
	CommandFound
	HelpRequested
)

func (k ResolutionKind) String() string {
	switch k {
	case CommandFound:
		return "command-found"
	case HelpRequested:
		return "help-requested"
	default:
		return "not-found"
	}
}

// Resolution is the outcome of Resolve.
//
// For CommandFound, Command and Remaining are set. For HelpRequested,
// HelpTokens holds the words naming the command to describe; an empty slice
// asks for generic help.
type Resolution struct {
	Kind       ResolutionKind
	Command    *Definition
	Remaining  []string
	HelpTokens []string
}

// Generic reports whether the resolution asks for the generic help listing.
func (r Resolution) Generic() bool {
	return r.Kind == HelpRequested && len(r.HelpTokens) == 0
}

const helpWord = "help"

// Resolve maps raw command-line tokens to a command or a help request.
func (r *Registry) Resolve(tokens []string) Resolution {
	if len(tokens) == 0 {
		return Resolution{Kind: HelpRequested, HelpTokens: []string{}}
	}

	if tokens[0] == helpWord {
		return Resolution{Kind: HelpRequested, HelpTokens: clone(tokens[1:])}
	}

	if i := helpFlagIndex(tokens); i >= 0 {
		entry, ok := r.match(tokens[:i])
		if !ok {
			return Resolution{Kind: HelpRequested, HelpTokens: []string{}}
		}
		return Resolution{Kind: HelpRequested, Command: entry.def, HelpTokens: clone(entry.def.Name)}
	}

	entry, ok := r.match(tokens)
	if !ok {
		return Resolution{Kind: NotFound}
	}
	return Resolution{
		Kind:      CommandFound,
		Command:   entry.def,
		Remaining: clone(tokens[len(entry.words):]),
	}
}

func helpFlagIndex(tokens []string) int {
	for i, t := range tokens {
		if t == "--help" || t == "-h" {
			return i
		}
	}
	return -1
}
