//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/todo-cli/td/internal/builtin"
	"github.com/todo-cli/td/internal/cli"
)

func init() {
	color.NoColor = true
}

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // HOME
	ConfigDir string // ~/.td
}

// setupTestEnv points HOME at a temp directory so every td invocation reads
// and writes a sandboxed config. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TD_TELEMETRY_DISABLED", "true")

	return &testEnv{HomeDir: home, ConfigDir: filepath.Join(home, ".td")}
}

// result is the outcome of one td invocation.
type result struct {
	Code   int
	Stdout string
	Stderr string
}

// td runs one invocation in-process, as the binary would.
func td(t *testing.T, argv ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := cli.Run(context.Background(), argv, &out, &errOut, builtin.Build{Version: "1.0.0", Commit: "it", Date: "now"})
	return result{Code: code, Stdout: out.String(), Stderr: errOut.String()}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertSuccess fails the test when r did not exit 0.
func assertSuccess(t *testing.T, r result) {
	t.Helper()
	if r.Code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", r.Code, r.Stderr)
	}
}
