package commands

import (
	"strings"
	"testing"

	"github.com/oxbel/dirkit/internal/config"
)

func TestConfigShowDefaults(t *testing.T) {
	NewTestEnv(t)

	stdout, _, err := execute(t, NewConfigCommand())
	if err != nil {
		t.Fatalf("config command error = %v", err)
	}

	for _, want := range []string{
		"Stub filename: README.md",
		"Skip first directory: true",
		"Default extension filter: (none)",
		"built-in defaults",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigShowSavedValues(t *testing.T) {
	NewTestEnv(t)

	if err := config.Save(&config.Config{
		StubName:         "NOTES.md",
		SkipFirst:        false,
		DefaultExtension: ".go",
	}); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, NewConfigCommand())
	if err != nil {
		t.Fatalf("config command error = %v", err)
	}

	for _, want := range []string{
		"Stub filename: NOTES.md",
		"Skip first directory: false",
		"Default extension filter: .go",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "built-in defaults") {
		t.Errorf("saved config reported as defaults:\n%s", stdout)
	}
}

func TestConfigPath(t *testing.T) {
	NewTestEnv(t)

	stdout, _, err := execute(t, NewConfigCommand(), "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if !strings.Contains(stdout, "config.toml") {
		t.Errorf("output missing config file path:\n%s", stdout)
	}
}

func TestStubCommandUsesConfigDefaults(t *testing.T) {
	env := NewTestEnv(t)
	env.MakeDirs("A", "B")

	if err := config.Save(&config.Config{
		StubName:  "NOTES.md",
		SkipFirst: false,
	}); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, NewStubCommand(), env.WorkDir)
	if err != nil {
		t.Fatalf("stub command error = %v", err)
	}
	if !strings.Contains(stdout, "NOTES.md") {
		t.Errorf("configured stub name not used:\n%s", stdout)
	}

	// skip-first=false from config applies when the flag is not passed
	if !strings.Contains(stdout, "Created 2 stub(s).") {
		t.Errorf("configured skip-first not applied:\n%s", stdout)
	}
}
