package panes

import "github.com/google/uuid"

// SplitPane replaces the target leaf with a Split holding two new leaves,
// each starting with an identical copy of the original tab list, active tab
// and editing flag, at ratio 0.5. The second (new) leaf becomes the active
// pane and its id is returned. Splitting the tree's sole leaf is legal and
// there is no maximum depth. If the pane does not exist the input tree is
// returned with an empty active id.
func SplitPane(tree Node, paneID string, direction Direction) (Node, string) {
	var newActive string
	out := updateLeaf(tree, paneID, func(l *Leaf) Node {
		first := l.clone()
		first.ID = uuid.NewString()
		second := l.clone()
		second.ID = uuid.NewString()
		newActive = second.ID
		return &Split{
			ID:        uuid.NewString(),
			Direction: direction,
			Ratio:     DefaultRatio,
			First:     first,
			Second:    second,
		}
	})
	return out, newActive
}

// ClosePane removes the pane from the tree by promoting its sibling into the
// parent Split's position. Closing the last remaining pane is a guarded
// no-op: the tree never becomes empty. On success the returned active pane
// id is the first leaf of a first-child-first traversal of the new tree,
// deterministic regardless of which pane was closed; on no-op it is empty.
func ClosePane(tree Node, paneID string) (Node, string) {
	if _, ok := tree.(*Leaf); ok {
		return tree, ""
	}
	out, removed := removePane(tree, paneID)
	if !removed {
		return tree, ""
	}
	return out, FirstLeafID(out)
}

func removePane(tree Node, paneID string) (Node, bool) {
	s, ok := tree.(*Split)
	if !ok {
		return tree, false
	}
	if s.First.nodeID() == paneID {
		return s.Second, true
	}
	if s.Second.nodeID() == paneID {
		return s.First, true
	}
	if first, removed := removePane(s.First, paneID); removed {
		c := *s
		c.First = first
		return &c, true
	}
	if second, removed := removePane(s.Second, paneID); removed {
		c := *s
		c.Second = second
		return &c, true
	}
	return tree, false
}

// SetRatio updates the named split's ratio, clamped to
// [MinRatio, MaxRatio]. Out-of-range values are silently clamped, never
// rejected. No-op if the split does not exist.
func SetRatio(tree Node, splitID string, ratio float64) Node {
	s, ok := tree.(*Split)
	if !ok {
		return tree
	}
	if s.ID == splitID {
		c := *s
		c.Ratio = clampRatio(ratio)
		return &c
	}
	first := SetRatio(s.First, splitID, ratio)
	second := SetRatio(s.Second, splitID, ratio)
	if first == s.First && second == s.Second {
		return tree
	}
	c := *s
	c.First = first
	c.Second = second
	return &c
}

// SetEditing sets the pane's transient editing flag. The flag never
// survives serialization.
func SetEditing(tree Node, paneID string, editing bool) Node {
	return updateLeaf(tree, paneID, func(l *Leaf) Node {
		if l.Editing == editing {
			return l
		}
		c := *l
		c.Editing = editing
		return &c
	})
}

func clampRatio(r float64) float64 {
	if r < MinRatio {
		return MinRatio
	}
	if r > MaxRatio {
		return MaxRatio
	}
	return r
}
