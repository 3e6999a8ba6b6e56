package builtin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/todo-cli/td/internal/command"
	"github.com/todo-cli/td/internal/config"
	"github.com/todo-cli/td/internal/loader"
	"github.com/todo-cli/td/internal/logging"
	"github.com/todo-cli/td/internal/manifest"
)

func setup(t *testing.T, c *Commands) *command.Registry {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	if err := config.Load(); err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	f, err := Manifest()
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	reg := command.NewRegistry()
	c.Registry = reg
	if err := loader.Load(reg, []*manifest.File{f}, c.Bindings(), c.Build.Version); err != nil {
		t.Fatalf("loader.Load: %v", err)
	}
	return reg
}

func run(t *testing.T, reg *command.Registry, tokens ...string) (string, error) {
	t.Helper()
	res := reg.Resolve(tokens)
	if res.Kind != command.CommandFound {
		t.Fatalf("Resolve(%v).Kind = %v", tokens, res.Kind)
	}
	args, err := command.ParseAndValidate(res.Command, res.Remaining)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	env := &command.Env{Out: &out, Err: &out, Log: logging.Discard(), Command: res.Command}
	done := command.NewCompletion()
	res.Command.Action(context.Background(), env, args, done)
	return out.String(), done.Wait()
}

func TestManifestRegistersAllCommands(t *testing.T) {
	reg := setup(t, &Commands{})

	var names []string
	for _, d := range reg.Commands() {
		names = append(names, d.CanonicalName())
	}
	want := "cli doctor,completion clink update,completion script,config get,config list,config set,version"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("commands = %s, want %s", got, want)
	}
}

func TestVersion(t *testing.T) {
	reg := setup(t, &Commands{Build: Build{Version: "v1.2.3", Commit: "abc123", Date: "2024-01-01"}})

	out, err := run(t, reg, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "td version 1.2.3 (commit: abc123, built: 2024-01-01)\n" {
		t.Errorf("output = %q", out)
	}

	out, _ = run(t, reg, "version", "--short")
	if out != "1.2.3\n" {
		t.Errorf("--short output = %q", out)
	}

	for _, flags := range [][]string{{"--json"}, {"--output", "json"}, {"-o", "json"}} {
		out, err = run(t, reg, append([]string{"version"}, flags...)...)
		if err != nil {
			t.Fatalf("version %v: %v", flags, err)
		}
		var b Build
		if err := json.Unmarshal([]byte(out), &b); err != nil {
			t.Fatalf("version %v output is not JSON: %v\n%s", flags, err, out)
		}
		if b.Version != "1.2.3" || b.Commit != "abc123" {
			t.Errorf("version %v = %+v", flags, b)
		}
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := map[string]string{
		"v1.2.3":       "1.2.3",
		"1.2":          "1.2.0",
		"2.0.0-beta.1": "2.0.0-beta.1",
		"dev":          "dev",
		"":             "dev",
	}
	for in, want := range tests {
		if got := NormalizeVersion(in); got != want {
			t.Errorf("NormalizeVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigSetGetList(t *testing.T) {
	reg := setup(t, &Commands{})

	if _, err := run(t, reg, "config", "set", "--key", "tenant", "--value", "contoso"); err != nil {
		t.Fatalf("config set: %v", err)
	}

	out, err := run(t, reg, "config", "get", "-k", "tenant")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if out != "contoso\n" {
		t.Errorf("config get = %q, want contoso", out)
	}

	if err := config.Load(); err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if got := config.Get(config.KeyTenant); got != "contoso" {
		t.Errorf("persisted tenant = %q, want contoso", got)
	}

	out, err = run(t, reg, "config", "ls")
	if err != nil {
		t.Fatalf("config list: %v", err)
	}
	if !strings.Contains(out, "tenant = contoso\n") || !strings.Contains(out, "aadappid = 123\n") {
		t.Errorf("config list output:\n%s", out)
	}
}

func TestConfigGetJSON(t *testing.T) {
	reg := setup(t, &Commands{})

	out, err := run(t, reg, "config", "get", "--key", "aadAppId", "--output", "json")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	var kv config.KeyValue
	if err := json.Unmarshal([]byte(out), &kv); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if kv.Value != config.DefaultAADAppID {
		t.Errorf("value = %q, want %q", kv.Value, config.DefaultAADAppID)
	}
}

func TestConfigSetValidation(t *testing.T) {
	reg := setup(t, &Commands{})

	_, err := run(t, reg, "config", "set", "--key", "colour", "--value", "red")
	var cv *command.CustomValidationError
	if err == nil || !strings.HasPrefix(err.Error(), "colour is not a valid setting") {
		t.Fatalf("error = %v, want invalid setting", err)
	}
	if !errors.As(err, &cv) {
		t.Errorf("error type = %T, want *command.CustomValidationError", err)
	}

	_, err = run(t, reg, "config", "set", "--key", "tenant")
	if err == nil || err.Error() != "Required option value not specified" {
		t.Fatalf("error = %v, want missing value", err)
	}
}

func TestDoctor(t *testing.T) {
	c := &Commands{Build: Build{Version: "1.0.0"}, ManifestsDir: t.TempDir()}
	reg := setup(t, c)

	out, err := run(t, reg, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	for _, want := range []string{
		"Runtime check:",
		"[ OK ] version 1.0.0",
		"[MISS] config file not found",
		"[INFO] aadAppId 123, tenant common",
		"[ OK ] 7 commands registered",
		"[INFO] no user manifests",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("doctor output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigSetKeyIsCaseInsensitive(t *testing.T) {
	reg := setup(t, &Commands{})

	if _, err := run(t, reg, "config", "set", "--key", "aadappid", "--value", "my-app"); err != nil {
		t.Fatalf("config set with lower-cased key: %v", err)
	}
	out, err := run(t, reg, "config", "get", "--key", "aadAppId")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if out != "my-app\n" {
		t.Errorf("config get = %q, want my-app", out)
	}
}

func TestBuildResolved(t *testing.T) {
	b := Build{Version: "v1.2"}.Resolved()
	if b.Version != "1.2.0" {
		t.Errorf("Version = %q, want 1.2.0", b.Version)
	}
	if b.Commit != "none" || b.Date != "unknown" {
		t.Errorf("defaults = %q/%q", b.Commit, b.Date)
	}
}

func TestCompletionScript(t *testing.T) {
	reg := setup(t, &Commands{})

	out, err := run(t, reg, "completion", "script", "--shell", "bash")
	if err != nil {
		t.Fatalf("completion script: %v", err)
	}
	if !strings.Contains(out, "__start_td") {
		t.Errorf("bash script missing start function:\n%s", out)
	}

	_, err = run(t, reg, "completion", "script", "-s", "tcsh")
	if err == nil || !strings.HasPrefix(err.Error(), "tcsh is not a supported shell") {
		t.Fatalf("error = %v, want unsupported shell", err)
	}
}

func TestCompletionClinkUpdate(t *testing.T) {
	reg := setup(t, &Commands{})

	out, err := run(t, reg, "completion", "clink", "update")
	if err != nil {
		t.Fatalf("completion clink update: %v", err)
	}
	for _, want := range []string{`"config"..parser({`, `"--key"`, `clink.arg.register_parser("td", td_parser)`} {
		if !strings.Contains(out, want) {
			t.Errorf("clink script missing %q:\n%s", want, out)
		}
	}
}
