package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattsolo1/grove-pages/pkg/frontmatter"
	"github.com/mattsolo1/grove-pages/pkg/models"
)

// ScanDir reads every markdown file under dir and returns the page records
// found in their frontmatter. Files without frontmatter or without an id
// are skipped, as are unreadable files: a half-broken pages directory
// should still import the pages that are intact.
func ScanDir(dir string) ([]*models.Page, error) {
	var pages []*models.Page
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		fm, _, err := frontmatter.Parse(string(data))
		if err != nil || fm == nil || fm.ID == "" {
			return nil
		}
		pages = append(pages, fm.Page())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan pages dir: %w", err)
	}
	return pages, nil
}

// ImportDir scans dir and saves every page found into the store. Returns
// the number of pages imported.
func (s *Store) ImportDir(dir string) (int, error) {
	pages, err := ScanDir(dir)
	if err != nil {
		return 0, err
	}
	for _, p := range pages {
		if err := s.Save(p); err != nil {
			return 0, fmt.Errorf("import %s: %w", p.ID, err)
		}
	}
	return len(pages), nil
}

// ExportDir writes one markdown stub per stored page into dir, carrying the
// page record in its frontmatter. Existing files are overwritten; page
// bodies are not managed by the store and are left out.
func (s *Store) ExportDir(dir string) (int, error) {
	pages, err := s.List()
	if err != nil {
		return 0, fmt.Errorf("list pages: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create export dir: %w", err)
	}
	for _, p := range pages {
		fm := frontmatter.FromPage(p)
		content := frontmatter.BuildContent(fm, fmt.Sprintf("# %s\n", p.Title))
		path := filepath.Join(dir, p.ID+".md")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return 0, fmt.Errorf("export %s: %w", p.ID, err)
		}
	}
	return len(pages), nil
}
