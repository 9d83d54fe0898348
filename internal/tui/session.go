// Package tui implements the interactive full-screen browsing session.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/marden/snip/internal/clipboard"
	"github.com/marden/snip/internal/editor"
	"github.com/marden/snip/internal/snippet"
	"github.com/marden/snip/internal/storage"
)

// State is the session's explicit lifecycle state. Transitions:
// Browsing ⇄ Viewing → Terminated.
type State int

const (
	Browsing State = iota
	Viewing
	Terminated
)

// editorDoneMsg reports the editor subprocess finishing after an in-session
// edit of a stored snippet file.
type editorDoneMsg struct{ err error }

// Model is the bubbletea model for the browsing session.
type Model struct {
	store  *storage.Store
	editor *editor.Editor

	state    State
	input    textinput.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer

	snippets []snippet.Snippet
	cursor   int
	banner   string // recoverable error shown inline, cleared on next action
	err      error  // fatal error; set only on transition to Terminated

	width, height int
}

// NewModel builds a session model pre-populated with an initial filter.
func NewModel(store *storage.Store, ed *editor.Editor, initialQuery string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search snippets by title, tags, or content..."
	ti.Prompt = "/ "
	ti.SetValue(initialQuery)
	ti.Focus()

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	m := Model{
		store:    store,
		editor:   ed,
		state:    Browsing,
		input:    ti,
		viewport: viewport.New(80, 20),
		renderer: r,
	}
	m.refresh()
	return m
}

// Err returns the fatal error that terminated the session, if any.
func (m Model) Err() error { return m.err }

// State returns the session's current lifecycle state.
func (m Model) State() State { return m.state }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		if r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(min(msg.Width-6, 100)),
		); err == nil {
			m.renderer = r
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case Browsing:
			return m.updateBrowsing(msg)
		case Viewing:
			return m.updateViewing(msg)
		}
		return m, nil

	case editorDoneMsg:
		if msg.err != nil {
			m.banner = fmt.Sprintf("editor: %v", msg.err)
			m.state = Browsing
			return m, nil
		}
		// Reload the edited file into the viewer.
		return m.enterViewing(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.state = Terminated
		return m, tea.Quit

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.snippets)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if len(m.snippets) == 0 {
			return m, nil
		}
		m.banner = ""
		return m.enterViewing(), nil
	}

	// Everything else is typing: forward to the filter input and re-query
	// when the text changed.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.banner = ""
		m.refresh()
		if m.state == Terminated {
			return m, tea.Quit
		}
	}
	return m, cmd
}

func (m Model) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.state = Terminated
		return m, tea.Quit

	case "esc", "q":
		m.state = Browsing
		return m, nil

	case "e":
		sn := m.selected()
		if sn == nil || sn.FilePath == "" {
			return m, nil
		}
		cmd, err := m.editor.Command(sn.FilePath)
		if err != nil {
			m.banner = fmt.Sprintf("editor: %v", err)
			m.state = Browsing
			return m, nil
		}
		return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
			return editorDoneMsg{err: err}
		})

	case "y":
		if sn := m.selected(); sn != nil {
			if err := clipboard.Copy(sn.Content); err != nil {
				m.banner = fmt.Sprintf("copy: %v", err)
			} else {
				m.banner = "copied to clipboard"
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// enterViewing loads the selected snippet into the viewer. A missing stored
// file is recoverable: the session falls back to Browsing with a banner.
func (m Model) enterViewing() Model {
	sn := m.selected()
	if sn == nil {
		m.state = Browsing
		return m
	}

	content := sn.Content
	if sn.FilePath != "" {
		data, err := os.ReadFile(sn.FilePath)
		if err != nil {
			if os.IsNotExist(err) {
				m.banner = fmt.Sprintf("file not found: %s", sn.FilePath)
			} else {
				m.banner = fmt.Sprintf("reading %s: %v", sn.FilePath, err)
			}
			m.state = Browsing
			return m
		}
		content = string(data)
	}

	doc := renderDocument(sn, content)
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(doc); err == nil {
			doc = rendered
		}
	}
	m.viewport.SetContent(doc)
	m.viewport.GotoTop()
	m.state = Viewing
	return m
}

// refresh re-queries the store with the current filter text. A store error
// is fatal: the session transitions to Terminated and reports it.
func (m *Model) refresh() {
	snippets, err := m.store.Search(m.input.Value())
	if err != nil {
		m.err = err
		m.state = Terminated
		return
	}
	m.snippets = snippets
	if m.cursor >= len(m.snippets) {
		m.cursor = len(m.snippets) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() *snippet.Snippet {
	if m.cursor < 0 || m.cursor >= len(m.snippets) {
		return nil
	}
	return &m.snippets[m.cursor]
}

// renderDocument builds the Markdown shown in the viewer: title and tag
// header above the stored content.
func renderDocument(sn *snippet.Snippet, content string) string {
	var sb strings.Builder
	if sn.Title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", sn.Title)
	}
	if len(sn.Tags) > 0 {
		quoted := make([]string, len(sn.Tags))
		for i, t := range sn.Tags {
			quoted[i] = "`" + t + "`"
		}
		fmt.Fprintf(&sb, "**Tags:** %s\n\n---\n\n", strings.Join(quoted, ", "))
	}
	sb.WriteString(content)
	return sb.String()
}

func (m Model) View() string {
	switch m.state {
	case Terminated:
		return ""
	case Viewing:
		return m.viewingView()
	default:
		return m.browsingView()
	}
}

func (m Model) browsingView() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("snip") + "\n")
	sb.WriteString(InputBoxStyle.Render(m.input.View()) + "\n")

	if m.banner != "" {
		sb.WriteString(BannerStyle.Render("  ! "+m.banner) + "\n")
	}

	if len(m.snippets) == 0 {
		sb.WriteString(HelpStyle.Render("\n  no snippets match") + "\n")
	}

	visible := m.height - 8
	if visible < 1 {
		visible = len(m.snippets)
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	for i := start; i < len(m.snippets) && i-start < visible; i++ {
		sn := m.snippets[i]
		line := sn.Title
		if line == "" {
			line = snippet.TitleFromContent(sn.Content)
		}
		if len(sn.Tags) > 0 {
			line += "  " + TagStyle.Render("["+strings.Join(sn.Tags, ", ")+"]")
		}
		if i == m.cursor {
			sb.WriteString(SelectedStyle.Render("> "+line) + "\n")
		} else {
			sb.WriteString(ItemStyle.Render("  "+line) + "\n")
		}
	}

	sb.WriteString("\n" + HelpStyle.Render("enter: view  •  ↑/↓: move  •  type to filter  •  esc: quit"))
	return sb.String()
}

func (m Model) viewingView() string {
	var sb strings.Builder
	if m.banner != "" {
		sb.WriteString(BannerStyle.Render("  ! "+m.banner) + "\n")
	}
	sb.WriteString(ViewportStyle.Render(m.viewport.View()) + "\n")
	sb.WriteString(HelpStyle.Render("q/esc: back  •  e: edit  •  y: copy  •  ↑/↓: scroll  •  ctrl+c: quit"))
	return sb.String()
}

// Run launches the interactive session. The store is released exactly once
// on every exit path, normal or not.
func Run(store *storage.Store, ed *editor.Editor, initialQuery string) error {
	defer store.Close()

	m := NewModel(store, ed, initialQuery)
	if m.err != nil {
		return m.err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
