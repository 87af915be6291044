package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-pages/pkg/hierarchy"
	"github.com/mattsolo1/grove-pages/pkg/models"
	"github.com/mattsolo1/grove-pages/pkg/workspace"
)

const sidebarWidth = 32

var (
	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			PaddingRight(1)

	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	breadcrumbSty = lipgloss.NewStyle().Faint(true)

	activePaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212"))
	inactivePaneStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	activeTabStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)
)

// sidebarRow is a single visible line in the page tree sidebar.
type sidebarRow struct {
	node  *hierarchy.Node
	depth int
}

// Model is the main model for the workspace TUI. All layout and hierarchy
// state lives in the coordinator; the model holds only view state.
type Model struct {
	coord *workspace.Coordinator
	load  func() ([]*models.Page, error)

	keys   KeyMap
	help   help.Model
	width  int
	height int

	rows      []sidebarRow
	cursor    int
	scroll    int
	collapsed map[string]bool
	status    string

	// changes delivers debounced pages-directory events from the watcher.
	// May be nil when no directory is being watched.
	changes <-chan struct{}
}

// New creates the TUI model. load re-reads the page set from the store and
// is called on start and whenever changes fires.
func New(coord *workspace.Coordinator, load func() ([]*models.Page, error), changes <-chan struct{}) Model {
	m := Model{
		coord:     coord,
		load:      load,
		keys:      keys,
		help:      help.New(),
		collapsed: make(map[string]bool),
		changes:   changes,
	}
	m.rebuildRows()
	return m
}

// rebuildRows flattens the forest into visible sidebar rows, honoring the
// collapsed set, and clamps the cursor.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	var walk func(nodes []*hierarchy.Node, depth int)
	walk = func(nodes []*hierarchy.Node, depth int) {
		for _, n := range nodes {
			m.rows = append(m.rows, sidebarRow{node: n, depth: depth})
			if !m.collapsed[n.Page.ID] {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(m.coord.Forest(), 0)

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) currentRow() *sidebarRow {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}
