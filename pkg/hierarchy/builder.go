package hierarchy

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mattsolo1/grove-pages/pkg/models"
)

// SortMode selects the sibling comparator used when building a forest.
type SortMode string

const (
	// SortFoldersFirst orders folders before pages, then by title
	// (case-insensitive). This is the default.
	SortFoldersFirst SortMode = "folders-first"
	// SortExplicit orders siblings by their numeric SortOrder, falling back
	// to title for ties.
	SortExplicit SortMode = "explicit"
)

// Node is a single node in the derived page forest. The forest is rebuilt
// from the full page collection on every change and never persisted.
type Node struct {
	Page     *models.Page
	Children []*Node
}

// Builder converts flat page records into a sorted forest.
type Builder struct {
	mode     SortMode
	collator *collate.Collator
}

// NewBuilder creates a builder with the given sort mode. An unknown mode
// falls back to SortFoldersFirst.
func NewBuilder(mode SortMode) *Builder {
	if mode != SortExplicit {
		mode = SortFoldersFirst
	}
	return &Builder{
		mode:     mode,
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// BuildForest builds a rooted forest from flat parent-pointer records.
// A page whose parent is empty or references an id that is not present in
// the collection becomes a root. Parent cycles are broken deterministically:
// one member per cycle is promoted to a root, so every page stays reachable.
// Siblings are sorted recursively, so every subtree is independently
// ordered. The result is deterministic: building twice from the same input
// yields structurally equal forests.
func (b *Builder) BuildForest(pages []*models.Page) []*Node {
	nodes := make(map[string]*Node, len(pages))
	byID := make(map[string]*models.Page, len(pages))
	for _, p := range pages {
		nodes[p.ID] = &Node{Page: p}
		byID[p.ID] = p
	}

	var roots []*Node
	for _, p := range pages {
		node := nodes[p.ID]
		if parent, ok := nodes[p.Parent]; ok && p.Parent != p.ID && !breaksCycle(byID, p) {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}

	b.sortSiblings(roots)
	return roots
}

func (b *Builder) sortSiblings(siblings []*Node) {
	sort.SliceStable(siblings, func(i, j int) bool {
		return b.less(siblings[i].Page, siblings[j].Page)
	})
	for _, n := range siblings {
		b.sortSiblings(n.Children)
	}
}

func (b *Builder) less(p, q *models.Page) bool {
	if b.mode == SortExplicit {
		if p.SortOrder != q.SortOrder {
			return p.SortOrder < q.SortOrder
		}
		return b.collator.CompareString(p.Title, q.Title) < 0
	}
	if p.IsFolder != q.IsFolder {
		return p.IsFolder
	}
	return b.collator.CompareString(p.Title, q.Title) < 0
}

// breaksCycle reports whether p belongs to a parent cycle and is the member
// designated to become a root. Attaching every cycle member to its parent
// would leave the whole cycle unreachable from the forest, so exactly one
// member per cycle, the one with the smallest id, ignores its parent pointer.
// Pages that merely hang off a cycle keep their parent and surface under the
// promoted member.
func breaksCycle(byID map[string]*models.Page, p *models.Page) bool {
	visited := map[string]bool{p.ID: true}
	current := p
	for {
		parent, ok := byID[current.Parent]
		if !ok {
			return false
		}
		if parent.ID == p.ID {
			break
		}
		if visited[parent.ID] {
			return false
		}
		visited[parent.ID] = true
		current = parent
	}

	minID := p.ID
	current = p
	for {
		parent := byID[current.Parent]
		if parent.ID == p.ID {
			break
		}
		if parent.ID < minID {
			minID = parent.ID
		}
		current = parent
	}
	return minID == p.ID
}

// FindNode returns the first node with the given page id in a depth-first
// walk of the forest, or nil if no such page exists.
func FindNode(forest []*Node, id string) *Node {
	for _, root := range forest {
		if root.Page.ID == id {
			return root
		}
		if found := FindNode(root.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Flatten returns the pages of a forest in pre-order. Rebuilding a forest
// from its own flattening yields a structurally equal forest.
func Flatten(forest []*Node) []*models.Page {
	var pages []*models.Page
	for _, root := range forest {
		pages = append(pages, root.Page)
		pages = append(pages, Flatten(root.Children)...)
	}
	return pages
}

// Ancestors returns the chain of pages from the root-most ancestor down to
// the immediate parent of id, excluding id itself. Unknown ids and root
// pages yield an empty chain. Malformed data containing a parent cycle is
// walked at most once per id; the walk stops the moment an id repeats, so
// the remaining chain is simply treated as absent.
func Ancestors(pages []*models.Page, id string) []*models.Page {
	byID := make(map[string]*models.Page, len(pages))
	for _, p := range pages {
		byID[p.ID] = p
	}

	page, ok := byID[id]
	if !ok {
		return nil
	}

	visited := map[string]bool{id: true}
	var chain []*models.Page
	for page.HasParent() {
		parent, ok := byID[page.Parent]
		if !ok || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		chain = append([]*models.Page{parent}, chain...)
		page = parent
	}
	return chain
}
