package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marden/snip/internal/editor"
	"github.com/marden/snip/internal/snippet"
	"github.com/marden/snip/internal/storage"
)

func setupModel(t *testing.T, seed ...snippet.Snippet) (Model, *storage.Store, string) {
	t.Helper()

	dir := t.TempDir()
	st, err := storage.Open(filepath.Join(dir, "snippets.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	for _, sn := range seed {
		if _, err := st.Add(sn); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}

	return NewModel(st, editor.New(""), ""), st, dir
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestInitialStateIsBrowsing(t *testing.T) {
	m, _, _ := setupModel(t, snippet.Snippet{Title: "one", Content: "echo 1"})
	if m.State() != Browsing {
		t.Errorf("initial state = %v, want Browsing", m.State())
	}
	if len(m.snippets) != 1 {
		t.Errorf("initial query loaded %d snippets, want 1", len(m.snippets))
	}
}

func TestEnterTransitionsToViewing(t *testing.T) {
	m, _, _ := setupModel(t, snippet.Snippet{Title: "one", Content: "echo 1"})

	m, _ = update(t, m, keyMsg("enter"))
	if m.State() != Viewing {
		t.Fatalf("state after enter = %v, want Viewing", m.State())
	}

	m, _ = update(t, m, keyMsg("esc"))
	if m.State() != Browsing {
		t.Errorf("state after esc = %v, want Browsing", m.State())
	}
}

func TestMissingFileIsRecoverable(t *testing.T) {
	dir := t.TempDir()
	gone := filepath.Join(dir, "gone.md")
	if err := os.WriteFile(gone, []byte("body"), 0644); err != nil {
		t.Fatal(err)
	}

	m, st, _ := setupModel(t)
	if _, err := st.Add(snippet.Snippet{Title: "orphan", Content: "body", FilePath: gone}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m.refresh()

	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, keyMsg("enter"))
	if m.State() != Browsing {
		t.Errorf("state after viewing missing file = %v, want Browsing", m.State())
	}
	if m.banner == "" {
		t.Error("no recoverable error banner was set")
	}
	if m.Err() != nil {
		t.Errorf("missing file set a fatal error: %v", m.Err())
	}
}

func TestTypingRefilters(t *testing.T) {
	m, _, _ := setupModel(t,
		snippet.Snippet{Title: "Hello World", Content: "greeting"},
		snippet.Snippet{Title: "goroutines", Content: "go func() {}"},
	)

	if len(m.snippets) != 2 {
		t.Fatalf("unfiltered snippets = %d, want 2", len(m.snippets))
	}

	for _, r := range "hello" {
		m, _ = update(t, m, keyMsg(string(r)))
	}
	if len(m.snippets) != 1 || m.snippets[0].Title != "Hello World" {
		t.Errorf("filter 'hello' left %d snippets", len(m.snippets))
	}
}

func TestQuitTerminates(t *testing.T) {
	m, _, _ := setupModel(t, snippet.Snippet{Title: "one", Content: "echo 1"})

	m, cmd := update(t, m, keyMsg("ctrl+c"))
	if m.State() != Terminated {
		t.Errorf("state after ctrl+c = %v, want Terminated", m.State())
	}
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
}

func TestCursorMovement(t *testing.T) {
	m, _, _ := setupModel(t,
		snippet.Snippet{Title: "a", Content: "1"},
		snippet.Snippet{Title: "b", Content: "2"},
		snippet.Snippet{Title: "c", Content: "3"},
	)

	m, _ = update(t, m, keyMsg("down"))
	m, _ = update(t, m, keyMsg("down"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	// Clamped at the end.
	m, _ = update(t, m, keyMsg("down"))
	if m.cursor != 2 {
		t.Errorf("cursor ran past the end: %d", m.cursor)
	}
	m, _ = update(t, m, keyMsg("up"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
}

func TestBrowsingViewListsSnippets(t *testing.T) {
	m, _, _ := setupModel(t,
		snippet.Snippet{Title: "rsync cheats", Content: "rsync -av", Tags: []string{"shell"}},
	)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()
	if !strings.Contains(out, "rsync cheats") {
		t.Errorf("view does not list the snippet:\n%s", out)
	}
	if !strings.Contains(out, "shell") {
		t.Errorf("view does not show tags:\n%s", out)
	}
}

func TestRenderDocument(t *testing.T) {
	sn := &snippet.Snippet{Title: "T", Tags: []string{"go", "cli"}}
	doc := renderDocument(sn, "body text")

	if !strings.HasPrefix(doc, "# T\n") {
		t.Errorf("document missing title heading:\n%s", doc)
	}
	if !strings.Contains(doc, "`go`, `cli`") {
		t.Errorf("document missing tag line:\n%s", doc)
	}
	if !strings.HasSuffix(doc, "body text") {
		t.Errorf("document missing content:\n%s", doc)
	}
}
