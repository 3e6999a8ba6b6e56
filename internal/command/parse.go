package command

import "strings"

// ParseAndValidate turns the tokens left after command resolution into Args
// and runs the command's structural and custom validation. The first failure
// found is returned; later checks are skipped.
func ParseAndValidate(def *Definition, tokens []string) (*Args, error) {
	args, err := parseTokens(def, tokens)
	if err != nil {
		return nil, err
	}

	for _, o := range def.Options {
		if o.Required && !args.Has(o.Name()) {
			return nil, &MissingRequiredOptionError{Option: o.Name()}
		}
	}

	if def.Validate != nil {
		if msg := def.Validate(args); msg != "" {
			return nil, &CustomValidationError{Message: msg}
		}
	}
	return args, nil
}

func parseTokens(def *Definition, tokens []string) (*Args, error) {
	args := NewArgs()

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch {
		case tok == "--":
			args.Positional = append(args.Positional, tokens[i+1:]...)
			return args, nil

		case strings.HasPrefix(tok, "--") && len(tok) > 2:
			key, value, hasValue := splitOption(tok[2:])
			spec, ok := longOption(def, key)
			if !ok {
				if !def.AllowUnknownOptions {
					return nil, &UnknownOptionError{Option: key}
				}
				args.set(key, unknownValue(value, hasValue))
				continue
			}
			next, err := assign(args, spec, value, hasValue, tokens, i)
			if err != nil {
				return nil, err
			}
			i = next

		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			next, err := parseShort(def, args, tokens, i)
			if err != nil {
				return nil, err
			}
			i = next

		default:
			args.Positional = append(args.Positional, tok)
		}
	}
	return args, nil
}

// parseShort handles "-x", "-x=value", "-xvalue" and grouped flags "-abc".
// It returns the index of the last token consumed.
func parseShort(def *Definition, args *Args, tokens []string, i int) (int, error) {
	body := tokens[i][1:]

	if key, value, hasValue := splitOption(body); hasValue {
		spec, ok := shortOption(def, key)
		if !ok {
			if !def.AllowUnknownOptions {
				return i, &UnknownOptionError{Option: key}
			}
			args.set(key, value)
			return i, nil
		}
		return assign(args, spec, value, true, tokens, i)
	}

	for j, r := range body {
		key := string(r)
		spec, ok := shortOption(def, key)
		if !ok {
			if !def.AllowUnknownOptions {
				return i, &UnknownOptionError{Option: key}
			}
			args.set(key, true)
			continue
		}
		if spec.Value == NoValue {
			args.set(spec.Name(), true)
			continue
		}
		// A value-taking option swallows the rest of the group as its value.
		if rest := body[j+len(key):]; rest != "" {
			args.set(spec.Name(), rest)
			return i, nil
		}
		return assign(args, spec, "", false, tokens, i)
	}
	return i, nil
}

// assign stores the value of a declared option, consuming the following
// token when the option's arity calls for it. Values are taken literally:
// a required-value option accepts "-x" as its value.
func assign(args *Args, spec OptionSpec, value string, hasValue bool, tokens []string, i int) (int, error) {
	name := spec.Name()

	if hasValue {
		args.set(name, value)
		return i, nil
	}

	switch spec.Value {
	case RequiredValue:
		if i+1 >= len(tokens) {
			return i, &MissingOptionValueError{Option: name}
		}
		args.set(name, tokens[i+1])
		return i + 1, nil
	case OptionalValue:
		if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") {
			args.set(name, tokens[i+1])
			return i + 1, nil
		}
		args.set(name, true)
		return i, nil
	default:
		args.set(name, true)
		return i, nil
	}
}

func splitOption(s string) (key, value string, hasValue bool) {
	if idx := strings.Index(s, "="); idx >= 0 {
		return s[:idx], s[idx+1:], true
	}
	return s, "", false
}

func unknownValue(value string, hasValue bool) any {
	if hasValue {
		return value
	}
	return true
}

func longOption(def *Definition, name string) (OptionSpec, bool) {
	for _, o := range def.Options {
		if o.Long != "" && o.Long == name {
			return o, true
		}
	}
	return OptionSpec{}, false
}

func shortOption(def *Definition, name string) (OptionSpec, bool) {
	for _, o := range def.Options {
		if o.Short != "" && o.Short == name {
			return o, true
		}
	}
	return OptionSpec{}, false
}
