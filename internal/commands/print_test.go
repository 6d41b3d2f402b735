package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeInteractive runs the print command through runPrint with an
// injected prompter, bypassing the flag-built StdPrompter
func executeInteractive(t *testing.T, cmd *cobra.Command, prompter Prompter) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := runPrint(cmd, nil, prompter, "")
	return stdout.String(), stderr.String(), err
}

func TestPrintCommandWithFilter(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile("a.txt", "alpha")
	env.WriteFile("b.log", "bravo")
	env.WriteFile("c.txt", "charlie")

	stdout, _, err := execute(t, NewPrintCommand(), env.WorkDir, "--ext", ".txt")
	if err != nil {
		t.Fatalf("print command error = %v", err)
	}

	for _, want := range []string{
		"=== Contents of a.txt ===",
		"alpha",
		"=== End of a.txt ===",
		"=== Contents of c.txt ===",
		"charlie",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "b.log") {
		t.Errorf("filtered file printed:\n%s", stdout)
	}
	if strings.Index(stdout, "a.txt") > strings.Index(stdout, "c.txt") {
		t.Error("files printed out of listing order")
	}
}

func TestPrintCommandNoFilterSkipsSubdirectories(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile("a.txt", "alpha")
	env.WriteFile("b.log", "bravo")
	env.MakeDirs("nested")

	stdout, _, err := execute(t, NewPrintCommand(), env.WorkDir)
	if err != nil {
		t.Fatalf("print command error = %v", err)
	}

	for _, want := range []string{"=== Contents of a.txt ===", "=== Contents of b.log ==="} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "nested") {
		t.Errorf("subdirectory printed:\n%s", stdout)
	}
}

func TestPrintCommandInvalidFolder(t *testing.T) {
	env := NewTestEnv(t)
	missing := filepath.Join(env.TempDir, "missing")

	stdout, stderr, err := execute(t, NewPrintCommand(), missing)
	if err != nil {
		t.Fatalf("print command error = %v, want clean stop", err)
	}
	if strings.Contains(stdout, "=== Contents of") {
		t.Errorf("banners printed for invalid folder:\n%s", stdout)
	}
	if !strings.Contains(stderr, missing) {
		t.Errorf("error output does not name the path:\n%s", stderr)
	}
	if !strings.Contains(stderr, "not a valid directory") {
		t.Errorf("error output missing message:\n%s", stderr)
	}
}

func TestPrintCommandPartialFailure(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile("good.txt", "fine")
	env.WriteFile("bad.txt", string([]byte{0xff, 0xfe, 0x00, 0x80}))

	stdout, _, err := execute(t, NewPrintCommand(), env.WorkDir, "--ext", ".txt")
	if err != nil {
		t.Fatalf("print command error = %v", err)
	}

	if !strings.Contains(stdout, "Error reading file") || !strings.Contains(stdout, "bad.txt") {
		t.Errorf("output missing per-file error:\n%s", stdout)
	}
	if !strings.Contains(stdout, "=== Contents of good.txt ===") {
		t.Errorf("valid file not printed after failure:\n%s", stdout)
	}
}

func TestPrintCommandInteractivePrompts(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile("a.txt", "alpha")
	env.WriteFile("b.log", "bravo")

	prompter := NewMockPrompter().
		ExpectPrompt("enter folder path", env.WorkDir).
		ExpectPrompt("file extension", ".txt")

	cmd := NewPrintCommand()
	stdout, _, err := executeInteractive(t, cmd, prompter)
	if err != nil {
		t.Fatalf("print command error = %v", err)
	}

	if !strings.Contains(stdout, "=== Contents of a.txt ===") {
		t.Errorf("output missing banner:\n%s", stdout)
	}
	if strings.Contains(stdout, "b.log") {
		t.Errorf("filtered file printed:\n%s", stdout)
	}
	prompter.AssertExhausted(t)
}

func TestPrintCommandInteractiveEmptyExtension(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile("a.txt", "alpha")
	env.WriteFile("b.log", "bravo")

	prompter := NewMockPrompter().
		ExpectPrompt("enter folder path", env.WorkDir).
		ExpectPrompt("file extension", "")

	stdout, _, err := executeInteractive(t, NewPrintCommand(), prompter)
	if err != nil {
		t.Fatalf("print command error = %v", err)
	}

	for _, want := range []string{"=== Contents of a.txt ===", "=== Contents of b.log ==="} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}
