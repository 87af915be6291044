// Package workspace ties the page hierarchy and the pane layout together.
// The Coordinator is the only component in the process that holds mutable
// state: the current page set, the forest derived from it, and the current
// pane-tree value with its active pane id. Every mutation goes through a
// single-writer lock and applies a pure tree transition, then swaps the new
// value into the current slot, so commands take effect strictly in the order
// they were issued.
package workspace

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-pages/pkg/hierarchy"
	"github.com/mattsolo1/grove-pages/pkg/models"
	"github.com/mattsolo1/grove-pages/pkg/panes"
)

// LayoutStore is the storage collaborator for the persisted layout record.
// pkg/store implements it; tests inject fakes.
type LayoutStore interface {
	SaveLayout(workspace string, record []byte) error
	LoadLayout(workspace string) ([]byte, error)
}

// Coordinator owns the current workspace state.
type Coordinator struct {
	mu      sync.Mutex
	name    string
	builder *hierarchy.Builder
	layouts LayoutStore
	log     *logrus.Logger

	pages      []*models.Page
	forest     []*hierarchy.Node
	tree       panes.Node
	activePane string
}

// New creates a coordinator for the named workspace, rehydrating the pane
// layout from the layout store when a record exists and starting from a
// single empty pane otherwise. A broken persisted record is logged and
// discarded, never fatal.
func New(name string, mode hierarchy.SortMode, layouts LayoutStore, log *logrus.Logger) *Coordinator {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	c := &Coordinator{
		name:    name,
		builder: hierarchy.NewBuilder(mode),
		layouts: layouts,
		log:     log,
	}

	tree := panes.Node(panes.New())
	active := tree.(*panes.Leaf).ID
	if layouts != nil {
		record, err := layouts.LoadLayout(name)
		if err != nil {
			log.Warnf("load layout for %s: %v", name, err)
		} else if record != nil {
			restored, restoredActive, err := panes.UnmarshalRecord(record)
			if err != nil {
				log.Warnf("discarding unreadable layout for %s: %v", name, err)
			} else {
				tree, active = restored, restoredActive
			}
		}
	}
	c.tree = tree
	c.activePane = active

	return c
}

// Reload replaces the page set and re-derives everything that depends on
// it: the forest is rebuilt, tabs referencing pages that no longer exist
// are evicted from every pane, and surviving tab titles are refreshed.
// The store calls this on every change to the page collection.
func (c *Coordinator) Reload(pages []*models.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages = pages
	c.forest = c.builder.BuildForest(pages)

	known := make(map[string]*models.Page, len(pages))
	for _, p := range pages {
		known[p.ID] = p
	}

	tree := panes.CloseTabsMatching(c.tree, func(pageID string) bool {
		_, ok := known[pageID]
		return !ok
	})
	for id, p := range known {
		tree = panes.SetTabTitle(tree, id, p.Title)
	}
	c.swap(tree)
}

// OpenPage opens the page in the active pane. Unknown page ids are ignored.
func (c *Coordinator) OpenPage(pageID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var page *models.Page
	for _, p := range c.pages {
		if p.ID == pageID {
			page = p
			break
		}
	}
	if page == nil {
		c.log.Debugf("open page: unknown id %s", pageID)
		return
	}
	c.swap(panes.OpenTab(c.tree, c.activePane, page.ID, page.Title))
}

// SelectTab activates a tab within a pane.
func (c *Coordinator) SelectTab(paneID, tabID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap(panes.SelectTab(c.tree, paneID, tabID))
}

// CloseTab closes a tab within a pane.
func (c *Coordinator) CloseTab(paneID, tabID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap(panes.CloseTab(c.tree, paneID, tabID))
}

// CloseOtherTabs closes every tab in the pane except the given one.
func (c *Coordinator) CloseOtherTabs(paneID, keepTabID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap(panes.CloseOtherTabs(c.tree, paneID, keepTabID))
}

// CloseAllTabs empties the pane.
func (c *Coordinator) CloseAllTabs(paneID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap(panes.CloseAllTabs(c.tree, paneID))
}

// ReorderTabs moves a tab to a new position within its pane.
func (c *Coordinator) ReorderTabs(paneID string, from, to int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap(panes.ReorderTabs(c.tree, paneID, from, to))
}

// SetDirty marks every open tab of the page dirty or clean.
func (c *Coordinator) SetDirty(pageID string, dirty bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap(panes.SetTabDirty(c.tree, pageID, dirty))
}

// SetEditing toggles the pane's transient editing flag.
func (c *Coordinator) SetEditing(paneID string, editing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap(panes.SetEditing(c.tree, paneID, editing))
}

// ReplacePageID rewrites a page id across every pane, keeping active-tab
// pointers in step. Used when a draft gains its permanent id on first save.
func (c *Coordinator) ReplacePageID(oldID, newID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap(panes.ReplaceTabID(c.tree, oldID, newID))
}

// SplitActivePane splits the active pane; the new pane becomes active.
func (c *Coordinator) SplitActivePane(direction panes.Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tree, newActive := panes.SplitPane(c.tree, c.activePane, direction)
	if newActive != "" {
		c.activePane = newActive
	}
	c.swap(tree)
}

// ClosePane closes a pane, promoting its sibling. Closing the last pane is
// a no-op. The active pane after a successful close is deterministic: the
// first leaf of the resulting tree.
func (c *Coordinator) ClosePane(paneID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tree, newActive := panes.ClosePane(c.tree, paneID)
	if newActive != "" {
		c.activePane = newActive
	}
	c.swap(tree)
}

// FocusPane makes the pane active. No-op unless the pane exists.
func (c *Coordinator) FocusPane(paneID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if panes.FindLeaf(c.tree, paneID) == nil || c.activePane == paneID {
		return
	}
	c.activePane = paneID
	c.persist()
}

// SetRatio resizes a split. Out-of-range ratios are clamped.
func (c *Coordinator) SetRatio(splitID string, ratio float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swap(panes.SetRatio(c.tree, splitID, ratio))
}

// Pages returns the current page records.
func (c *Coordinator) Pages() []*models.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pages
}

// Forest returns the current derived page forest for rendering the
// navigation tree. Pure query, no side effects.
func (c *Coordinator) Forest() []*hierarchy.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forest
}

// Ancestors returns the breadcrumb chain for a page.
func (c *Coordinator) Ancestors(pageID string) []*models.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return hierarchy.Ancestors(c.pages, pageID)
}

// Layout returns the current pane tree value. The tree is immutable, so
// handing it out is safe.
func (c *Coordinator) Layout() panes.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree
}

// ActivePaneID returns the id of the pane that receives keyboard shortcuts
// and new-tab actions. It always names an existing leaf.
func (c *Coordinator) ActivePaneID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activePane
}

// ActiveLeaf returns the active pane.
func (c *Coordinator) ActiveLeaf() *panes.Leaf {
	c.mu.Lock()
	defer c.mu.Unlock()
	return panes.FindLeaf(c.tree, c.activePane)
}

// swap installs the new tree value and persists the layout record. Persist
// failures are logged, never surfaced: layout state is reconstructible and
// a failed write must not break the editing session. Callers hold the lock.
func (c *Coordinator) swap(tree panes.Node) {
	if tree == c.tree {
		return
	}
	c.tree = tree
	c.persist()
}

func (c *Coordinator) persist() {
	if c.layouts == nil {
		return
	}
	record, err := panes.MarshalRecord(c.tree, c.activePane)
	if err != nil {
		c.log.Warnf("marshal layout for %s: %v", c.name, err)
		return
	}
	if err := c.layouts.SaveLayout(c.name, record); err != nil {
		c.log.Warnf("persist layout for %s: %v", c.name, err)
	}
}
