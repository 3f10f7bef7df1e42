package tui

import (
	"fmt"

	"github.com/Digital-Shane/title-group/internal/resolve"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
)

// PreviewModel is a read-only Bubble Tea model that shows the grouping
// result in a scrollable viewport.
type PreviewModel struct {
	command  string
	entries  []*resolve.LogicalEntry
	viewport viewport.Model
	ready    bool
}

// NewPreviewModel creates a preview over the resolved entries.
func NewPreviewModel(command string, entries []*resolve.LogicalEntry) *PreviewModel {
	return &PreviewModel{command: command, entries: entries}
}

// Init implements tea.Model.
func (m *PreviewModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(RenderEntries(m.entries))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *PreviewModel) View() string {
	if !m.ready {
		return "indexing…"
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m *PreviewModel) headerView() string {
	groups := 0
	for _, e := range m.entries {
		if len(e.AlternateVersions) > 0 {
			groups++
		}
	}
	return headerStyle.Render(fmt.Sprintf("title-group %s · %d entries, %d version groups",
		m.command, len(m.entries), groups))
}

func (m *PreviewModel) footerView() string {
	return footerStyle.Render("↑/↓ scroll • q quit")
}
