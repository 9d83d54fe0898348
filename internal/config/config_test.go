package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLayoutPriority(t *testing.T) {
	t.Setenv(EnvDir, "")

	l := ResolveLayout("")
	if l.Base() != DefaultBaseDir {
		t.Errorf("default base = %q, want %q", l.Base(), DefaultBaseDir)
	}

	t.Setenv(EnvDir, "/tmp/env-snippets")
	l = ResolveLayout("")
	if l.Base() != "/tmp/env-snippets" {
		t.Errorf("env base = %q, want /tmp/env-snippets", l.Base())
	}

	// Explicit override beats the environment.
	l = ResolveLayout("/tmp/flag-snippets")
	if l.Base() != "/tmp/flag-snippets" {
		t.Errorf("override base = %q, want /tmp/flag-snippets", l.Base())
	}
}

func TestLayoutPaths(t *testing.T) {
	l := NewLayout("/data/.snippets")

	if got := l.FilesDir(); got != filepath.Join("/data/.snippets", "files") {
		t.Errorf("FilesDir = %q", got)
	}
	if got := l.DBPath(); got != filepath.Join("/data/.snippets", "snippets.db") {
		t.Errorf("DBPath = %q", got)
	}
}

func TestEnsureCreatesLayout(t *testing.T) {
	base := filepath.Join(t.TempDir(), DefaultBaseDir)
	l := NewLayout(base)

	if err := l.Ensure(); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	for _, dir := range []string{l.Base(), l.FilesDir()} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	// Idempotent on a second call.
	if err := l.Ensure(); err != nil {
		t.Errorf("second Ensure: %v", err)
	}
}

func TestEnsureFailsOnFileCollision(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, DefaultBaseDir)
	if err := os.WriteFile(base, []byte("not a directory"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := NewLayout(base).Ensure(); err == nil {
		t.Error("Ensure succeeded over a file collision")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandPath("~/snippets"); got != filepath.Join(home, "snippets") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath changed an absolute path: %q", got)
	}
}
