package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// TestEnv provides an isolated test environment with common setup utilities.
type TestEnv struct {
	t       *testing.T
	TempDir string // Root temp directory
	WorkDir string // Directory the command under test operates on
}

// NewTestEnv creates a new isolated test environment.
// Config, cache, and home are redirected into the temp directory so tests
// never touch the real user state.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tempDir := t.TempDir()
	workDir := filepath.Join(tempDir, "work")
	if err := os.MkdirAll(workDir, 0755); err != nil {
		t.Fatalf("Failed to create work directory: %v", err)
	}

	t.Setenv("HOME", filepath.Join(tempDir, "home"))
	t.Setenv("DIRKIT_CONFIG_DIR", filepath.Join(tempDir, "config"))
	t.Setenv("DIRKIT_CACHE_DIR", filepath.Join(tempDir, "cache"))

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		WorkDir: workDir,
	}
}

// MakeDirs creates subdirectories under the work directory
func (e *TestEnv) MakeDirs(names ...string) {
	e.t.Helper()
	for _, name := range names {
		if err := os.Mkdir(filepath.Join(e.WorkDir, name), 0755); err != nil {
			e.t.Fatal(err)
		}
	}
}

// WriteFile writes a file under the work directory
func (e *TestEnv) WriteFile(name, content string) {
	e.t.Helper()
	if err := os.WriteFile(filepath.Join(e.WorkDir, name), []byte(content), 0644); err != nil {
		e.t.Fatal(err)
	}
}

// execute runs a command with captured output, returning stdout, stderr,
// and the execution error
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
