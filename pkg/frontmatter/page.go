package frontmatter

import (
	"time"

	"github.com/mattsolo1/grove-pages/pkg/models"
)

// FromPage converts a store record into frontmatter for export.
func FromPage(p *models.Page) *Frontmatter {
	return &Frontmatter{
		ID:       p.ID,
		Title:    p.Title,
		Parent:   p.Parent,
		Folder:   p.IsFolder,
		Order:    p.SortOrder,
		Tags:     p.Tags,
		Created:  FormatTimestamp(p.Created),
		Modified: FormatTimestamp(p.Modified),
	}
}

// Page converts parsed frontmatter into a store record. Unparseable
// timestamps are left zero; the store fills them in on save.
func (fm *Frontmatter) Page() *models.Page {
	p := &models.Page{
		ID:        fm.ID,
		Title:     fm.Title,
		Parent:    fm.Parent,
		IsFolder:  fm.Folder,
		SortOrder: fm.Order,
		Tags:      fm.Tags,
	}
	if t, err := ParseTimestamp(fm.Created); err == nil {
		p.Created = t
	}
	if t, err := ParseTimestamp(fm.Modified); err == nil {
		p.Modified = t
	} else {
		p.Modified = time.Time{}
	}
	return p
}
