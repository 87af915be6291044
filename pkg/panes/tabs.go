package panes

// OpenTab opens the page in the given pane. If the pane already holds a tab
// for the page it merely becomes the active tab; otherwise a new tab is
// appended and activated. Loading the page content is the caller's
// responsibility, this only manages tab bookkeeping.
func OpenTab(tree Node, paneID, pageID, title string) Node {
	return updateLeaf(tree, paneID, func(l *Leaf) Node {
		c := l.clone()
		if c.tabIndex(pageID) < 0 {
			c.Tabs = append(c.Tabs, Tab{ID: pageID, Title: title})
		}
		c.ActiveTabID = pageID
		return c
	})
}

// SelectTab makes tabID the active tab of the pane. No-op if the pane does
// not hold that tab.
func SelectTab(tree Node, paneID, tabID string) Node {
	return updateLeaf(tree, paneID, func(l *Leaf) Node {
		if l.tabIndex(tabID) < 0 || l.ActiveTabID == tabID {
			return l
		}
		c := l.clone()
		c.ActiveTabID = tabID
		return c
	})
}

// CloseTab removes the tab from the pane. If the closed tab was active, the
// tab that slides into the closed tab's index becomes active; when the
// closed tab was last, the new last tab is chosen; an emptied pane has no
// active tab. This "closed index becomes selected" rule determines which
// neighboring tab the user lands on and must hold exactly.
func CloseTab(tree Node, paneID, tabID string) Node {
	return updateLeaf(tree, paneID, func(l *Leaf) Node {
		idx := l.tabIndex(tabID)
		if idx < 0 {
			return l
		}
		c := l.clone()
		c.Tabs = append(c.Tabs[:idx], c.Tabs[idx+1:]...)
		if c.ActiveTabID == tabID {
			c.ActiveTabID = tabAtClosedIndex(c.Tabs, idx)
		}
		return c
	})
}

// CloseOtherTabs removes every tab except keepTabID from the pane and makes
// it the active tab. No-op if the pane does not hold keepTabID.
func CloseOtherTabs(tree Node, paneID, keepTabID string) Node {
	return updateLeaf(tree, paneID, func(l *Leaf) Node {
		idx := l.tabIndex(keepTabID)
		if idx < 0 {
			return l
		}
		c := *l
		c.Tabs = []Tab{l.Tabs[idx]}
		c.ActiveTabID = keepTabID
		return &c
	})
}

// CloseAllTabs empties the pane's tab list and clears its active tab.
func CloseAllTabs(tree Node, paneID string) Node {
	return updateLeaf(tree, paneID, func(l *Leaf) Node {
		c := *l
		c.Tabs = nil
		c.ActiveTabID = ""
		return &c
	})
}

// ReorderTabs moves the tab at fromIndex to toIndex within the pane: a pure
// positional move, not a swap. Indices are clamped to the pane's tab list
// bounds.
func ReorderTabs(tree Node, paneID string, fromIndex, toIndex int) Node {
	return updateLeaf(tree, paneID, func(l *Leaf) Node {
		n := len(l.Tabs)
		if n < 2 {
			return l
		}
		from := clampIndex(fromIndex, n)
		to := clampIndex(toIndex, n)
		if from == to {
			return l
		}
		c := l.clone()
		moved := c.Tabs[from]
		c.Tabs = append(c.Tabs[:from], c.Tabs[from+1:]...)
		rest := append([]Tab(nil), c.Tabs[to:]...)
		c.Tabs = append(append(c.Tabs[:to:to], moved), rest...)
		return c
	})
}

// SetTabDirty sets the dirty flag on every tab referencing the page, across
// all panes. A page open in two split panes is updated in lockstep.
func SetTabDirty(tree Node, pageID string, dirty bool) Node {
	return mapLeaves(tree, func(l *Leaf) *Leaf {
		idx := l.tabIndex(pageID)
		if idx < 0 || l.Tabs[idx].Dirty == dirty {
			return l
		}
		c := l.clone()
		c.Tabs[idx].Dirty = dirty
		return c
	})
}

// SetTabTitle sets the title on every tab referencing the page, across all
// panes.
func SetTabTitle(tree Node, pageID, title string) Node {
	return mapLeaves(tree, func(l *Leaf) *Leaf {
		idx := l.tabIndex(pageID)
		if idx < 0 || l.Tabs[idx].Title == title {
			return l
		}
		c := l.clone()
		c.Tabs[idx].Title = title
		return c
	})
}

// ReplaceTabID rewrites oldID to newID on every tab referencing it, updating
// the pane's active-tab pointer where the old id was active. Used when a
// draft page acquires its permanent id on first save. A pane that already
// holds a tab for newID drops the old tab instead, keeping ids unique per
// pane.
func ReplaceTabID(tree Node, oldID, newID string) Node {
	return mapLeaves(tree, func(l *Leaf) *Leaf {
		idx := l.tabIndex(oldID)
		if idx < 0 {
			return l
		}
		c := l.clone()
		if c.tabIndex(newID) >= 0 {
			c.Tabs = append(c.Tabs[:idx], c.Tabs[idx+1:]...)
		} else {
			c.Tabs[idx].ID = newID
		}
		if c.ActiveTabID == oldID {
			c.ActiveTabID = newID
		}
		return c
	})
}

// CloseTabsMatching evicts every tab whose page id satisfies the predicate,
// across all panes, recomputing each affected pane's active tab with the
// same closed-index rule as CloseTab. Called when pages are deleted so no
// pane keeps referencing a page that no longer exists.
func CloseTabsMatching(tree Node, match func(pageID string) bool) Node {
	return mapLeaves(tree, func(l *Leaf) *Leaf {
		activeIdx := -1
		kept := make([]Tab, 0, len(l.Tabs))
		removed := false
		for i, t := range l.Tabs {
			if match(t.ID) {
				removed = true
				continue
			}
			if i == l.tabIndex(l.ActiveTabID) {
				activeIdx = len(kept)
			}
			kept = append(kept, t)
		}
		if !removed {
			return l
		}
		c := *l
		c.Tabs = kept
		if c.ActiveTabID != "" && activeIdx >= 0 {
			// Active tab survived; keep it.
			c.ActiveTabID = kept[activeIdx].ID
		} else if c.ActiveTabID != "" {
			// Active tab was evicted; land on whatever occupies its old
			// position among the survivors.
			pos := 0
			oldIdx := l.tabIndex(l.ActiveTabID)
			for i := 0; i < oldIdx; i++ {
				if !match(l.Tabs[i].ID) {
					pos++
				}
			}
			c.ActiveTabID = tabAtClosedIndex(kept, pos)
		}
		return &c
	})
}

// tabAtClosedIndex applies the closed-index selection rule to the tab list
// that remains after a removal at idx.
func tabAtClosedIndex(remaining []Tab, idx int) string {
	if len(remaining) == 0 {
		return ""
	}
	if idx < len(remaining) {
		return remaining[idx].ID
	}
	return remaining[len(remaining)-1].ID
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
