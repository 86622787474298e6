// Package ui provides a Bubble Tea pager for guestdump reports.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/guestdump/internal/prefs"
)

const (
	headerHeight = 1
	footerHeight = 1
	bodyGutter   = 2 // left border plus padding
)

// Options configures the pager.
type Options struct {
	Context   context.Context
	Title     string
	Lines     []string
	ThemeName string
	PrefsPath string
}

// Model is the pager state for Bubble Tea.
type Model struct {
	title     string
	content   string
	prefsPath string

	theme    Theme
	keys     keyMap
	viewport viewport.Model

	width  int
	height int
	ready  bool
}

// New creates a pager model showing lines.
func New(opts Options) Model {
	return Model{
		title:     opts.Title,
		content:   strings.Join(opts.Lines, "\n"),
		prefsPath: opts.PrefsPath,
		theme:     GetTheme(opts.ThemeName),
		keys:      defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.CycleTheme):
			m.theme = GetTheme(NextTheme(m.theme.Name))
			if m.prefsPath != "" {
				_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
			}
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyWidth := max(m.width-bodyGutter, 1)
		bodyHeight := max(m.height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(bodyWidth, bodyHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = bodyWidth
			m.viewport.Height = bodyHeight
		}
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	styles := m.theme.Styles()

	header := styles.Header.Width(m.width).Render(
		styles.Title.Render("guestdump") + " " + m.title,
	)
	body := styles.Body.Render(m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter(styles))
}

func (m Model) renderFooter(styles Styles) string {
	parts := make([]string, 0, len(m.keys.bindings())+1)
	for _, b := range m.keys.bindings() {
		help := b.Help()
		parts = append(parts, styles.Key.Render(help.Key)+" "+help.Desc)
	}
	parts = append(parts, fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	return styles.Footer.Width(m.width).Render(strings.Join(parts, "  "))
}

// Run starts the pager and blocks until the user quits or ctx is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
