package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-pages/pkg/panes"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.help.ShowAll {
		return m.help.View(m.keys)
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = mutedStyle.Render(m.status) + "\n" + footer
	}
	bodyHeight := m.height - lipgloss.Height(footer) - 1

	sidebar := sidebarStyle.Height(bodyHeight).Render(m.renderSidebar(bodyHeight))
	panesView := m.renderNode(m.coord.Layout(), m.width-sidebarWidth-2, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, panesView)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) renderSidebar(height int) string {
	var b strings.Builder

	start := m.scroll
	if m.cursor < start {
		start = m.cursor
	}
	if m.cursor >= start+height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := start; i < end; i++ {
		row := m.rows[i]
		p := row.node.Page

		marker := "  "
		if len(row.node.Children) > 0 {
			if m.collapsed[p.ID] {
				marker = "▶ "
			} else {
				marker = "▼ "
			}
		} else if p.IsFolder {
			marker = "▷ "
		}

		line := strings.Repeat("  ", row.depth) + marker + p.Title
		if len(line) > sidebarWidth-2 {
			line = line[:sidebarWidth-2]
		}
		if i == m.cursor {
			line = cursorStyle.Render(line)
		} else if p.IsFolder {
			line = mutedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderNode renders the pane tree into a width x height cell, recursing
// through splits and dividing space by ratio.
func (m Model) renderNode(n panes.Node, width, height int) string {
	switch v := n.(type) {
	case *panes.Leaf:
		return m.renderLeaf(v, width, height)
	case *panes.Split:
		if v.Direction == panes.Vertical {
			// Side by side
			firstWidth := int(float64(width) * v.Ratio)
			if firstWidth < 1 {
				firstWidth = 1
			}
			return lipgloss.JoinHorizontal(lipgloss.Top,
				m.renderNode(v.First, firstWidth, height),
				m.renderNode(v.Second, width-firstWidth, height),
			)
		}
		// Stacked
		firstHeight := int(float64(height) * v.Ratio)
		if firstHeight < 1 {
			firstHeight = 1
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderNode(v.First, width, firstHeight),
			m.renderNode(v.Second, width, height-firstHeight),
		)
	}
	return ""
}

func (m Model) renderLeaf(l *panes.Leaf, width, height int) string {
	style := inactivePaneStyle
	if l.ID == m.coord.ActivePaneID() {
		style = activePaneStyle
	}
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var b strings.Builder
	b.WriteString(m.renderTabStrip(l, innerWidth))
	b.WriteString("\n")
	b.WriteString(m.renderPageBody(l, innerWidth))

	return style.Width(innerWidth).Height(innerHeight).Render(b.String())
}

func (m Model) renderTabStrip(l *panes.Leaf, width int) string {
	if len(l.Tabs) == 0 {
		return mutedStyle.Render("(no tabs)")
	}

	var parts []string
	for _, tab := range l.Tabs {
		title := tab.Title
		if tab.Dirty {
			title = "● " + title
		}
		if tab.ID == l.ActiveTabID {
			parts = append(parts, activeTabStyle.Render(title))
		} else {
			parts = append(parts, inactiveTabStyle.Render(title))
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.NewStyle().MaxWidth(width).Render(strip)
}

// renderPageBody shows the active tab's breadcrumb. Page bodies are plain
// files owned by external editors; the TUI only routes layout commands.
func (m Model) renderPageBody(l *panes.Leaf, width int) string {
	tab := l.ActiveTab()
	if tab == nil {
		return mutedStyle.Render("enter on a page in the sidebar opens it here")
	}

	var crumbs []string
	for _, a := range m.coord.Ancestors(tab.ID) {
		crumbs = append(crumbs, a.Title)
	}
	crumbs = append(crumbs, tab.Title)

	line := breadcrumbSty.Render(strings.Join(crumbs, " › "))
	id := mutedStyle.Render(fmt.Sprintf("id: %s", tab.ID))
	return lipgloss.NewStyle().MaxWidth(width).Render(line + "\n" + id)
}
