package models

import "time"

// Page represents the metadata record for a single document in a workspace.
// The page store is the sole writer of these records; every other component
// treats them as read-only input.
type Page struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Parent    string    `json:"parent,omitempty" yaml:"parent,omitempty"` // empty = root
	IsFolder  bool      `json:"is_folder,omitempty" yaml:"folder,omitempty"`
	SortOrder int       `json:"sort_order,omitempty" yaml:"order,omitempty"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,flow,omitempty"`
	Created   time.Time `json:"created_at" yaml:"-"`
	Modified  time.Time `json:"modified_at" yaml:"-"`
}

// HasParent reports whether the page claims a parent. The claim may still be
// dangling; hierarchy.BuildForest treats unresolvable parents as roots.
func (p *Page) HasParent() bool {
	return p.Parent != ""
}
