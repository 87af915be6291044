package panes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafWithTabs(ids ...string) *Leaf {
	l := New()
	for _, id := range ids {
		l.Tabs = append(l.Tabs, Tab{ID: id, Title: strings.ToUpper(id)})
	}
	if len(ids) > 0 {
		l.ActiveTabID = ids[0]
	}
	return l
}

func tabIDs(l *Leaf) []string {
	ids := make([]string, len(l.Tabs))
	for i, t := range l.Tabs {
		ids[i] = t.ID
	}
	return ids
}

func TestOpenTabAppendsAndActivates(t *testing.T) {
	root := leafWithTabs("a")

	tree := OpenTab(root, root.ID, "b", "B")

	l := FindLeaf(tree, root.ID)
	require.NotNil(t, l)
	assert.Equal(t, []string{"a", "b"}, tabIDs(l))
	assert.Equal(t, "b", l.ActiveTabID)

	// The input value is untouched.
	assert.Equal(t, []string{"a"}, tabIDs(root))
	assert.Equal(t, "a", root.ActiveTabID)
}

func TestOpenTabExistingOnlySelects(t *testing.T) {
	root := leafWithTabs("a", "b")

	tree := OpenTab(root, root.ID, "a", "A")

	l := FindLeaf(tree, root.ID)
	assert.Equal(t, []string{"a", "b"}, tabIDs(l), "no duplicate tab per pane")
	assert.Equal(t, "a", l.ActiveTabID)
}

func TestOpenTabUnknownPaneIsNoop(t *testing.T) {
	root := leafWithTabs("a")
	tree := OpenTab(root, "nope", "b", "B")
	assert.Same(t, Node(root), tree)
}

func TestSelectTab(t *testing.T) {
	root := leafWithTabs("a", "b")

	tree := SelectTab(root, root.ID, "b")
	assert.Equal(t, "b", FindLeaf(tree, root.ID).ActiveTabID)

	// Selecting an absent tab changes nothing.
	tree2 := SelectTab(tree, root.ID, "zzz")
	assert.Same(t, tree, tree2)
}

func TestCloseTabSelectsSlidInNeighbor(t *testing.T) {
	// tabs [a,b,c], active b: closing b selects c, the tab that slid into
	// the closed index.
	root := leafWithTabs("a", "b", "c")
	root.ActiveTabID = "b"

	tree := CloseTab(root, root.ID, "b")

	l := FindLeaf(tree, root.ID)
	assert.Equal(t, []string{"a", "c"}, tabIDs(l))
	assert.Equal(t, "c", l.ActiveTabID)
}

func TestCloseTabAtEndSelectsNewLast(t *testing.T) {
	root := leafWithTabs("a", "b", "c")
	root.ActiveTabID = "c"

	tree := CloseTab(root, root.ID, "c")

	l := FindLeaf(tree, root.ID)
	assert.Equal(t, []string{"a", "b"}, tabIDs(l))
	assert.Equal(t, "b", l.ActiveTabID)
}

func TestCloseLastTabClearsActive(t *testing.T) {
	root := leafWithTabs("only")

	tree := CloseTab(root, root.ID, "only")

	l := FindLeaf(tree, root.ID)
	assert.Empty(t, l.Tabs)
	assert.Empty(t, l.ActiveTabID)
}

func TestCloseInactiveTabKeepsActive(t *testing.T) {
	root := leafWithTabs("a", "b", "c")
	root.ActiveTabID = "c"

	tree := CloseTab(root, root.ID, "a")

	l := FindLeaf(tree, root.ID)
	assert.Equal(t, []string{"b", "c"}, tabIDs(l))
	assert.Equal(t, "c", l.ActiveTabID)
}

func TestCloseOtherTabs(t *testing.T) {
	root := leafWithTabs("a", "b", "c")
	root.ActiveTabID = "a"

	tree := CloseOtherTabs(root, root.ID, "b")

	l := FindLeaf(tree, root.ID)
	assert.Equal(t, []string{"b"}, tabIDs(l))
	assert.Equal(t, "b", l.ActiveTabID)
}

func TestCloseAllTabs(t *testing.T) {
	root := leafWithTabs("a", "b")

	tree := CloseAllTabs(root, root.ID)

	l := FindLeaf(tree, root.ID)
	assert.Empty(t, l.Tabs)
	assert.Empty(t, l.ActiveTabID, "populated-no-selection is reachable only via close-all")
}

func TestReorderTabs(t *testing.T) {
	root := leafWithTabs("a", "b", "c", "d")

	tree := ReorderTabs(root, root.ID, 0, 2)
	assert.Equal(t, []string{"b", "c", "a", "d"}, tabIDs(FindLeaf(tree, root.ID)))

	// A move, not a swap.
	tree = ReorderTabs(root, root.ID, 3, 0)
	assert.Equal(t, []string{"d", "a", "b", "c"}, tabIDs(FindLeaf(tree, root.ID)))
}

func TestReorderTabsClampsIndices(t *testing.T) {
	root := leafWithTabs("a", "b", "c")

	tree := ReorderTabs(root, root.ID, -5, 99)
	assert.Equal(t, []string{"b", "c", "a"}, tabIDs(FindLeaf(tree, root.ID)))
}

func TestSetTabDirtyAppliesToEveryPane(t *testing.T) {
	root := leafWithTabs("shared")
	tree, _ := SplitPane(root, root.ID, Vertical)
	leaves := Leaves(tree)
	require.Len(t, leaves, 2)

	tree = SetTabDirty(tree, "shared", true)

	for _, l := range Leaves(tree) {
		assert.True(t, l.Tabs[0].Dirty, "page open in two panes is updated in lockstep")
	}

	// Closing one pane's copy does not affect the other's flag.
	tree = CloseTab(tree, Leaves(tree)[0].ID, "shared")
	assert.True(t, Leaves(tree)[1].Tabs[0].Dirty)
}

func TestSetTabTitleAppliesToEveryPane(t *testing.T) {
	root := leafWithTabs("p")
	tree, _ := SplitPane(root, root.ID, Horizontal)

	tree = SetTabTitle(tree, "p", "Renamed")

	for _, l := range Leaves(tree) {
		assert.Equal(t, "Renamed", l.Tabs[0].Title)
	}
}

func TestReplaceTabID(t *testing.T) {
	root := leafWithTabs("draft-1", "other")
	root.ActiveTabID = "draft-1"
	tree, _ := SplitPane(root, root.ID, Vertical)

	tree = ReplaceTabID(tree, "draft-1", "page-42")

	for _, l := range Leaves(tree) {
		assert.Equal(t, "page-42", l.Tabs[0].ID)
		assert.Equal(t, "page-42", l.ActiveTabID, "active pointer follows the id rewrite")
	}
}

func TestReplaceTabIDDropsOldWhenNewAlreadyOpen(t *testing.T) {
	root := leafWithTabs("draft-1", "page-42")
	root.ActiveTabID = "draft-1"

	tree := ReplaceTabID(root, "draft-1", "page-42")

	l := FindLeaf(tree, root.ID)
	assert.Equal(t, []string{"page-42"}, tabIDs(l), "ids stay unique per pane")
	assert.Equal(t, "page-42", l.ActiveTabID)
}

func TestCloseTabsMatching(t *testing.T) {
	root := leafWithTabs("keep-1", "drop-1", "keep-2", "drop-2")
	root.ActiveTabID = "drop-1"

	tree := CloseTabsMatching(root, func(id string) bool {
		return strings.HasPrefix(id, "drop-")
	})

	l := FindLeaf(tree, root.ID)
	assert.Equal(t, []string{"keep-1", "keep-2"}, tabIDs(l))
	// drop-1 sat at index 1; keep-2 slid into that position.
	assert.Equal(t, "keep-2", l.ActiveTabID)
}

func TestCloseTabsMatchingSurvivingActiveKept(t *testing.T) {
	root := leafWithTabs("a", "b", "c")
	root.ActiveTabID = "c"

	tree := CloseTabsMatching(root, func(id string) bool { return id == "a" })

	l := FindLeaf(tree, root.ID)
	assert.Equal(t, []string{"b", "c"}, tabIDs(l))
	assert.Equal(t, "c", l.ActiveTabID)
}

func TestCloseTabsMatchingEverything(t *testing.T) {
	root := leafWithTabs("a", "b")

	tree := CloseTabsMatching(root, func(string) bool { return true })

	l := FindLeaf(tree, root.ID)
	assert.Empty(t, l.Tabs)
	assert.Empty(t, l.ActiveTabID)
}

func TestCloseTabsMatchingNoMatchSharesInput(t *testing.T) {
	root := leafWithTabs("a", "b")
	tree := CloseTabsMatching(root, func(string) bool { return false })
	assert.Same(t, Node(root), tree)
}
