package command

import (
	"fmt"
	"strings"
)

// ValueKind describes whether an option takes a value.
type ValueKind int

const (
	// NoValue marks a boolean flag: present or absent.
	NoValue ValueKind = iota
	// RequiredValue means the option always consumes the next token.
	RequiredValue
	// OptionalValue means the option consumes the next token only when it
	// does not look like another option.
	OptionalValue
)

// OptionSpec declares a single option accepted by a command.
type OptionSpec struct {
	Short       string    // single-letter form without dash, e.g. "x"
	Long        string    // long form without dashes, e.g. "parameterX"
	Required    bool      // must be supplied on every invocation
	Value       ValueKind // arity of the option
	Placeholder string    // value placeholder shown in help, e.g. "parameterX"
	Description string
}

// Name returns the key under which the option is stored in Args and reported
// in errors: the long form when present, otherwise the short form.
func (o OptionSpec) Name() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// Usage returns the option as written in help output, e.g.
// "-x, --parameterX <parameterX>".
func (o OptionSpec) Usage() string {
	var parts []string
	if o.Short != "" {
		parts = append(parts, "-"+o.Short)
	}
	if o.Long != "" {
		parts = append(parts, "--"+o.Long)
	}
	s := strings.Join(parts, ", ")
	switch o.Value {
	case RequiredValue:
		s += " <" + o.placeholder() + ">"
	case OptionalValue:
		s += " [" + o.placeholder() + "]"
	}
	return s
}

func (o OptionSpec) placeholder() string {
	if o.Placeholder != "" {
		return o.Placeholder
	}
	return o.Name()
}

// ParseOptionSpec parses a commander-style option declaration:
//
//	-x, --parameterX <parameterX>   required option with a value
//	-y, --parameterY [parameterY]   optional option with an optional value
//	--debug                         optional boolean flag
func ParseOptionSpec(decl, description string) (OptionSpec, error) {
	spec := OptionSpec{Description: description}

	fields := strings.FieldsFunc(decl, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return spec, fmt.Errorf("empty option declaration")
	}

	for _, f := range fields {
		switch {
		case strings.HasPrefix(f, "<") && strings.HasSuffix(f, ">"):
			spec.Value = RequiredValue
			spec.Required = true
			spec.Placeholder = strings.Trim(f, "<>")
		case strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]"):
			spec.Value = OptionalValue
			spec.Placeholder = strings.Trim(f, "[]")
		case strings.HasPrefix(f, "--"):
			if spec.Long != "" {
				return spec, fmt.Errorf("option %q declares more than one long form", decl)
			}
			spec.Long = strings.TrimPrefix(f, "--")
		case strings.HasPrefix(f, "-"):
			if spec.Short != "" {
				return spec, fmt.Errorf("option %q declares more than one short form", decl)
			}
			spec.Short = strings.TrimPrefix(f, "-")
		default:
			return spec, fmt.Errorf("option %q: unexpected token %q", decl, f)
		}
	}

	if spec.Short == "" && spec.Long == "" {
		return spec, fmt.Errorf("option %q has no short or long form", decl)
	}
	if len(spec.Short) > 1 {
		return spec, fmt.Errorf("option %q: short form must be a single character", decl)
	}
	return spec, nil
}

// MustParseOptionSpec is like ParseOptionSpec but panics on malformed input.
// It is intended for statically declared command tables.
func MustParseOptionSpec(decl, description string) OptionSpec {
	spec, err := ParseOptionSpec(decl, description)
	if err != nil {
		panic(err)
	}
	return spec
}

// GlobalOptions are accepted by every registered command.
func GlobalOptions() []OptionSpec {
	return []OptionSpec{
		{Long: "output", Short: "o", Value: OptionalValue, Placeholder: "output", Description: "Output type. json|text. Default text"},
		{Long: "verbose", Description: "Runs command with verbose logging"},
		{Long: "debug", Description: "Runs command with debug logging"},
	}
}
