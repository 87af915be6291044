package panes

import (
	"encoding/json"
	"fmt"
)

// Record is the persisted layout exchanged with the storage collaborator:
// the full pane tree as a JSON tagged union plus the active pane id.
type Record struct {
	PaneLayout   *WireNode `json:"paneLayout"`
	ActivePaneID string    `json:"activePaneId"`
}

// WireNode is the JSON shape of a pane-tree node. Type is "leaf" or
// "split"; the remaining fields apply to one variant each.
type WireNode struct {
	Type string `json:"type"`
	ID   string `json:"id"`

	Tabs        []Tab  `json:"tabs,omitempty"`
	ActiveTabID string `json:"activeTabId,omitempty"`
	Editing     bool   `json:"editing,omitempty"`

	Direction Direction `json:"direction,omitempty"`
	Ratio     float64   `json:"ratio,omitempty"`
	First     *WireNode `json:"first,omitempty"`
	Second    *WireNode `json:"second,omitempty"`
}

// Serialize converts the tree and active pane id into a persistable record.
func Serialize(tree Node, activePaneID string) *Record {
	return &Record{
		PaneLayout:   toWire(tree),
		ActivePaneID: activePaneID,
	}
}

func toWire(tree Node) *WireNode {
	switch n := tree.(type) {
	case *Leaf:
		return &WireNode{
			Type:        "leaf",
			ID:          n.ID,
			Tabs:        append([]Tab(nil), n.Tabs...),
			ActiveTabID: n.ActiveTabID,
			Editing:     n.Editing,
		}
	case *Split:
		return &WireNode{
			Type:      "split",
			ID:        n.ID,
			Direction: n.Direction,
			Ratio:     n.Ratio,
			First:     toWire(n.First),
			Second:    toWire(n.Second),
		}
	}
	return nil
}

// Deserialize rebuilds a tree and active pane id from a persisted record.
// Dirty and editing flags are forcibly cleared: they describe only the
// in-memory editing session and never survive a restart. Malformed records
// are repaired rather than rejected: a dangling active-tab pointer falls
// back to the first tab, an out-of-range ratio is clamped, a missing or
// unknown active pane id falls back to the first leaf, and a nil record
// yields a fresh single empty leaf.
func Deserialize(rec *Record) (Node, string) {
	if rec == nil || rec.PaneLayout == nil {
		l := New()
		return l, l.ID
	}
	tree := fromWire(rec.PaneLayout)
	if tree == nil {
		l := New()
		return l, l.ID
	}
	active := rec.ActivePaneID
	if FindLeaf(tree, active) == nil {
		active = FirstLeafID(tree)
	}
	return tree, active
}

func fromWire(w *WireNode) Node {
	if w == nil {
		return nil
	}
	switch w.Type {
	case "leaf":
		l := &Leaf{ID: w.ID, ActiveTabID: w.ActiveTabID}
		for _, t := range w.Tabs {
			l.Tabs = append(l.Tabs, Tab{ID: t.ID, Title: t.Title})
		}
		if l.tabIndex(l.ActiveTabID) < 0 {
			if len(l.Tabs) > 0 {
				l.ActiveTabID = l.Tabs[0].ID
			} else {
				l.ActiveTabID = ""
			}
		}
		return l
	case "split":
		first := fromWire(w.First)
		second := fromWire(w.Second)
		if first == nil || second == nil {
			// A split missing a child collapses to whichever child exists.
			if first != nil {
				return first
			}
			return second
		}
		return &Split{
			ID:        w.ID,
			Direction: w.Direction,
			Ratio:     clampRatio(w.Ratio),
			First:     first,
			Second:    second,
		}
	}
	return nil
}

// MarshalRecord encodes the tree and active pane id as JSON.
func MarshalRecord(tree Node, activePaneID string) ([]byte, error) {
	data, err := json.Marshal(Serialize(tree, activePaneID))
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}

// UnmarshalRecord decodes a JSON layout record into a tree and active pane
// id. Empty input yields a fresh single-leaf layout.
func UnmarshalRecord(data []byte) (Node, string, error) {
	if len(data) == 0 {
		tree, active := Deserialize(nil)
		return tree, active, nil
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, "", fmt.Errorf("unmarshal layout: %w", err)
	}
	tree, active := Deserialize(&rec)
	return tree, active, nil
}
