package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-pages/pkg/panes"
)

// pagesChangedMsg signals that the pages directory changed on disk.
type pagesChangedMsg struct{}

// pagesLoadedMsg signals that a fresh page set has been pushed into the
// coordinator and the sidebar rows are stale.
type pagesLoadedMsg struct{}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.reloadCmd(), m.listenChanges())
}

// listenChanges waits for the next watcher event.
func (m Model) listenChanges() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return pagesChangedMsg{}
	}
}

// reloadCmd re-reads the page set and pushes it into the coordinator.
func (m Model) reloadCmd() tea.Cmd {
	if m.load == nil {
		return nil
	}
	return func() tea.Msg {
		pages, err := m.load()
		if err != nil {
			return err
		}
		m.coord.Reload(pages)
		return pagesLoadedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pagesChangedMsg:
		return m, tea.Batch(m.reloadCmd(), m.listenChanges())

	case pagesLoadedMsg:
		m.rebuildRows()
		return m, nil

	case error:
		m.status = msg.Error()
		return m, m.listenChanges()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.ToggleFold):
		if row := m.currentRow(); row != nil && len(row.node.Children) > 0 {
			id := row.node.Page.ID
			m.collapsed[id] = !m.collapsed[id]
			m.rebuildRows()
		}

	case key.Matches(msg, m.keys.Open):
		if row := m.currentRow(); row != nil && !row.node.Page.IsFolder {
			m.coord.OpenPage(row.node.Page.ID)
		}

	case key.Matches(msg, m.keys.SplitVert):
		m.coord.SplitActivePane(panes.Vertical)

	case key.Matches(msg, m.keys.SplitHoriz):
		m.coord.SplitActivePane(panes.Horizontal)

	case key.Matches(msg, m.keys.ClosePane):
		m.coord.ClosePane(m.coord.ActivePaneID())

	case key.Matches(msg, m.keys.CloseTab):
		if leaf := m.coord.ActiveLeaf(); leaf != nil && leaf.ActiveTabID != "" {
			m.coord.CloseTab(leaf.ID, leaf.ActiveTabID)
		}

	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)

	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)

	case key.Matches(msg, m.keys.MoveTabLeft):
		m.moveTab(-1)

	case key.Matches(msg, m.keys.MoveTabRight):
		m.moveTab(1)

	case key.Matches(msg, m.keys.NextPane):
		m.cyclePane()

	case key.Matches(msg, m.keys.Grow):
		m.adjustRatio(0.05)

	case key.Matches(msg, m.keys.Shrink):
		m.adjustRatio(-0.05)
	}

	return m, nil
}

// cycleTab activates the neighboring tab in the active pane, wrapping.
func (m *Model) cycleTab(delta int) {
	leaf := m.coord.ActiveLeaf()
	if leaf == nil || len(leaf.Tabs) == 0 {
		return
	}
	idx := 0
	for i, t := range leaf.Tabs {
		if t.ID == leaf.ActiveTabID {
			idx = i
			break
		}
	}
	next := (idx + delta + len(leaf.Tabs)) % len(leaf.Tabs)
	m.coord.SelectTab(leaf.ID, leaf.Tabs[next].ID)
}

// moveTab shifts the active tab one position within its pane.
func (m *Model) moveTab(delta int) {
	leaf := m.coord.ActiveLeaf()
	if leaf == nil || leaf.ActiveTabID == "" {
		return
	}
	for i, t := range leaf.Tabs {
		if t.ID == leaf.ActiveTabID {
			m.coord.ReorderTabs(leaf.ID, i, i+delta)
			return
		}
	}
}

// cyclePane focuses the next pane in traversal order, wrapping.
func (m *Model) cyclePane() {
	leaves := panes.Leaves(m.coord.Layout())
	if len(leaves) < 2 {
		return
	}
	active := m.coord.ActivePaneID()
	for i, l := range leaves {
		if l.ID == active {
			m.coord.FocusPane(leaves[(i+1)%len(leaves)].ID)
			return
		}
	}
	m.coord.FocusPane(leaves[0].ID)
}

// adjustRatio resizes the split directly containing the active pane.
func (m *Model) adjustRatio(delta float64) {
	split := parentSplit(m.coord.Layout(), m.coord.ActivePaneID())
	if split == nil {
		return
	}
	// Growing the active pane means growing its own share: when the active
	// pane is the second child, the first child's share shrinks instead.
	ratio := split.Ratio + delta
	if leaf, ok := split.Second.(*panes.Leaf); ok && leaf.ID == m.coord.ActivePaneID() {
		ratio = split.Ratio - delta
	}
	m.coord.SetRatio(split.ID, ratio)
}

// parentSplit returns the split whose direct child is the given pane.
func parentSplit(tree panes.Node, paneID string) *panes.Split {
	s, ok := tree.(*panes.Split)
	if !ok {
		return nil
	}
	for _, child := range []panes.Node{s.First, s.Second} {
		if leaf, ok := child.(*panes.Leaf); ok && leaf.ID == paneID {
			return s
		}
	}
	if found := parentSplit(s.First, paneID); found != nil {
		return found
	}
	return parentSplit(s.Second, paneID)
}
