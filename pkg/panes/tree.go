// Package panes implements the split-pane/tab layout tree for a page
// workspace. The layout is a binary tree: internal Split nodes divide space
// between two children along one axis, and Leaf nodes own an ordered tab
// list plus an active-tab pointer.
//
// Every operation in this package is a pure function: it takes the current
// tree value and returns a new tree value, sharing unaffected subtrees with
// the input. Operations addressing a pane or tab that does not exist return
// the input tree unchanged, since stale UI events are expected and must not
// crash the session. Callers own the single mutable "current layout" slot
// (see pkg/workspace) and must apply operations in issue order.
package panes

import "github.com/google/uuid"

// Direction is the axis of a Split.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Ratio bounds for a Split. Values outside this range are clamped on every
// update, never stored verbatim.
const (
	MinRatio     = 0.15
	MaxRatio     = 0.85
	DefaultRatio = 0.5
)

// Tab is a reference to an open page within a specific pane. The ID is the
// page id itself, not a synthetic tab identifier: a page can appear at most
// once per pane, though it may be open in several panes simultaneously.
type Tab struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Dirty bool   `json:"isDirty"`
}

// Node is either a *Leaf or a *Split. No third variant exists.
type Node interface {
	nodeID() string
}

// Leaf is a pane: a rectangular editing region holding an ordered tab list.
// ActiveTabID is either empty or the id of one of Tabs.
type Leaf struct {
	ID          string `json:"id"`
	Tabs        []Tab  `json:"tabs"`
	ActiveTabID string `json:"activeTabId,omitempty"`
	Editing     bool   `json:"editing,omitempty"`
}

// Split divides space between two child nodes. Ratio is the share given to
// First, always within [MinRatio, MaxRatio].
type Split struct {
	ID        string    `json:"id"`
	Direction Direction `json:"direction"`
	Ratio     float64   `json:"ratio"`
	First     Node      `json:"first"`
	Second    Node      `json:"second"`
}

func (l *Leaf) nodeID() string  { return l.ID }
func (s *Split) nodeID() string { return s.ID }

// New returns the initial layout: a single empty leaf. This is both the
// session-start state and a reachable terminal state after closing panes.
func New() *Leaf {
	return &Leaf{ID: uuid.NewString()}
}

// ActiveTab returns the leaf's active tab, or nil if it has none.
func (l *Leaf) ActiveTab() *Tab {
	for i := range l.Tabs {
		if l.Tabs[i].ID == l.ActiveTabID {
			return &l.Tabs[i]
		}
	}
	return nil
}

func (l *Leaf) tabIndex(tabID string) int {
	for i, t := range l.Tabs {
		if t.ID == tabID {
			return i
		}
	}
	return -1
}

// clone returns a shallow copy of the leaf with its own tab slice.
func (l *Leaf) clone() *Leaf {
	c := *l
	c.Tabs = append([]Tab(nil), l.Tabs...)
	return &c
}

// Leaves returns all leaves in first-child-first order.
func Leaves(tree Node) []*Leaf {
	switch n := tree.(type) {
	case *Leaf:
		return []*Leaf{n}
	case *Split:
		return append(Leaves(n.First), Leaves(n.Second)...)
	}
	return nil
}

// FindLeaf returns the leaf with the given pane id, or nil.
func FindLeaf(tree Node, paneID string) *Leaf {
	for _, l := range Leaves(tree) {
		if l.ID == paneID {
			return l
		}
	}
	return nil
}

// FindSplit returns the split with the given id, or nil.
func FindSplit(tree Node, splitID string) *Split {
	s, ok := tree.(*Split)
	if !ok {
		return nil
	}
	if s.ID == splitID {
		return s
	}
	if found := FindSplit(s.First, splitID); found != nil {
		return found
	}
	return FindSplit(s.Second, splitID)
}

// CountLeaves returns the number of panes. For every tree this equals the
// number of splits plus one.
func CountLeaves(tree Node) int {
	return len(Leaves(tree))
}

// FirstLeafID returns the id of the first leaf in a first-child-first
// traversal. Every tree has at least one leaf.
func FirstLeafID(tree Node) string {
	switch n := tree.(type) {
	case *Leaf:
		return n.ID
	case *Split:
		return FirstLeafID(n.First)
	}
	return ""
}

// updateLeaf rebuilds the path from the root to the leaf with paneID,
// replacing that leaf with fn(leaf). Subtrees off the path are shared with
// the input. Returns the input unchanged if the pane does not exist or fn
// returns the leaf it was given.
func updateLeaf(tree Node, paneID string, fn func(*Leaf) Node) Node {
	switch n := tree.(type) {
	case *Leaf:
		if n.ID != paneID {
			return n
		}
		return fn(n)
	case *Split:
		first := updateLeaf(n.First, paneID, fn)
		second := updateLeaf(n.Second, paneID, fn)
		if first == n.First && second == n.Second {
			return n
		}
		c := *n
		c.First = first
		c.Second = second
		return &c
	}
	return tree
}

// mapLeaves applies fn to every leaf, rebuilding only branches where fn
// returned a new leaf. fn must return its argument unchanged to signal
// "no change".
func mapLeaves(tree Node, fn func(*Leaf) *Leaf) Node {
	switch n := tree.(type) {
	case *Leaf:
		return fn(n)
	case *Split:
		first := mapLeaves(n.First, fn)
		second := mapLeaves(n.Second, fn)
		if first == n.First && second == n.Second {
			return n
		}
		c := *n
		c.First = first
		c.Second = second
		return &c
	}
	return tree
}
