package command

import "testing"

func TestParseOptionSpec(t *testing.T) {
	tests := []struct {
		decl     string
		short    string
		long     string
		required bool
		value    ValueKind
		usage    string
	}{
		{"-x, --parameterX <parameterX>", "x", "parameterX", true, RequiredValue, "-x, --parameterX <parameterX>"},
		{"-y, --parameterY [parameterY]", "y", "parameterY", false, OptionalValue, "-y, --parameterY [parameterY]"},
		{"--debug", "", "debug", false, NoValue, "--debug"},
		{"-f", "f", "", false, NoValue, "-f"},
		{"--listName <name>", "", "listName", true, RequiredValue, "--listName <name>"},
	}

	for _, tt := range tests {
		t.Run(tt.decl, func(t *testing.T) {
			o, err := ParseOptionSpec(tt.decl, "desc")
			if err != nil {
				t.Fatalf("ParseOptionSpec(%q): %v", tt.decl, err)
			}
			if o.Short != tt.short || o.Long != tt.long {
				t.Errorf("forms = %q/%q, want %q/%q", o.Short, o.Long, tt.short, tt.long)
			}
			if o.Required != tt.required {
				t.Errorf("Required = %v, want %v", o.Required, tt.required)
			}
			if o.Value != tt.value {
				t.Errorf("Value = %v, want %v", o.Value, tt.value)
			}
			if o.Usage() != tt.usage {
				t.Errorf("Usage() = %q, want %q", o.Usage(), tt.usage)
			}
			if o.Description != "desc" {
				t.Errorf("Description = %q, want %q", o.Description, "desc")
			}
		})
	}
}

func TestParseOptionSpecName(t *testing.T) {
	if got := MustParseOptionSpec("-x, --parameterX <v>", "").Name(); got != "parameterX" {
		t.Errorf("Name() = %q, want parameterX", got)
	}
	if got := MustParseOptionSpec("-f", "").Name(); got != "f" {
		t.Errorf("Name() = %q, want f", got)
	}
}

func TestParseOptionSpecInvalid(t *testing.T) {
	cases := []string{
		"",
		"<value>",
		"-x, -y",
		"--one, --two",
		"-xy",
		"parameterX",
	}

	for _, decl := range cases {
		t.Run(decl, func(t *testing.T) {
			if _, err := ParseOptionSpec(decl, ""); err == nil {
				t.Fatalf("ParseOptionSpec(%q) succeeded, want error", decl)
			}
		})
	}
}
