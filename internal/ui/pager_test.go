package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/guestdump/internal/prefs"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sizedModel(t *testing.T, opts Options, width, height int) Model {
	t.Helper()
	next, _ := New(opts).Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(Model)
}

func TestView_LoadingBeforeSize(t *testing.T) {
	if got := New(Options{}).View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestView_ShowsTitleAndReport(t *testing.T) {
	m := sizedModel(t, Options{
		Title: "/home/u/VBox.log",
		Lines: []string{"VCPU0: Guru Meditation", "rax = 00000000"},
	}, 80, 10)

	view := m.View()
	for _, want := range []string{"guestdump", "/home/u/VBox.log", "VCPU0: Guru Meditation", "rax = 00000000", "Quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q:\n%s", want, view)
		}
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := sizedModel(t, Options{}, 40, 5)
	for _, msg := range []tea.KeyMsg{keyPress("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("Update(%q) returned nil cmd, want quit", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("Update(%q) cmd did not quit", msg.String())
		}
	}
}

func TestUpdate_TopAndBottom(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("r%d = %08x", i, i)
	}
	m := sizedModel(t, Options{Lines: lines}, 40, 12)
	if !m.viewport.AtTop() {
		t.Fatalf("viewport not at top after sizing")
	}

	next, _ := m.Update(keyPress("G"))
	m = next.(Model)
	if !m.viewport.AtBottom() {
		t.Fatalf("viewport not at bottom after G")
	}

	next, _ = m.Update(keyPress("g"))
	m = next.(Model)
	if !m.viewport.AtTop() {
		t.Fatalf("viewport not at top after g")
	}
}

func TestUpdate_CycleThemeSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := sizedModel(t, Options{ThemeName: "Nightfox", PrefsPath: path}, 40, 5)

	next, _ := m.Update(keyPress("T"))
	m = next.(Model)
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(path).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
}

func TestUpdate_ResizeKeepsContent(t *testing.T) {
	m := sizedModel(t, Options{Lines: []string{"only line"}}, 40, 5)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 8})
	m = next.(Model)
	if m.viewport.Width != 58 || m.viewport.Height != 6 {
		t.Fatalf("viewport = %dx%d, want 58x6", m.viewport.Width, m.viewport.Height)
	}
	if !strings.Contains(m.View(), "only line") {
		t.Fatalf("View lost content after resize")
	}
}
