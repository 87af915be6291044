package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mattsolo1/grove-pages/pkg/models"
)

// Store manages page metadata persistence. It is the sole writer of page
// records; everything else consumes them as read-only input.
type Store struct {
	db      *sql.DB
	dataDir string
}

// Open creates or opens the page store under dataDir.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "pages.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{
		db:      db,
		dataDir: dataDir,
	}

	if err := s.init(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	return s, nil
}

// init creates the database schema
func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		parent TEXT,
		is_folder BOOLEAN DEFAULT 0,
		sort_order INTEGER DEFAULT 0,
		tags TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		modified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_pages_parent ON pages(parent);
	CREATE INDEX IF NOT EXISTS idx_pages_title ON pages(title);

	CREATE TABLE IF NOT EXISTS layout (
		workspace TEXT PRIMARY KEY,
		record TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save inserts or replaces a page record.
func (s *Store) Save(p *models.Page) error {
	if p.ID == "" {
		return fmt.Errorf("page id cannot be empty")
	}
	if p.Title == "" {
		return fmt.Errorf("page title cannot be empty")
	}

	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	now := time.Now()
	if p.Created.IsZero() {
		p.Created = now
	}
	p.Modified = now

	query := `
	INSERT OR REPLACE INTO pages (id, title, parent, is_folder, sort_order, tags, created_at, modified_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.Exec(query, p.ID, p.Title, p.Parent, p.IsFolder, p.SortOrder, tags, p.Created, p.Modified)
	return err
}

// Get retrieves a page by id.
func (s *Store) Get(id string) (*models.Page, error) {
	query := `
	SELECT id, title, parent, is_folder, sort_order, tags, created_at, modified_at
	FROM pages WHERE id = ?
	`

	p, err := scanPage(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("page not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns every page record, ordered by parent then sort order then
// title. The flat result is the input to hierarchy.BuildForest.
func (s *Store) List() ([]*models.Page, error) {
	query := `
	SELECT id, title, parent, is_folder, sort_order, tags, created_at, modified_at
	FROM pages ORDER BY parent, sort_order, title
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, rows.Err()
}

// Rename updates a page's title.
func (s *Store) Rename(id, title string) error {
	if title == "" {
		return fmt.Errorf("page title cannot be empty")
	}
	res, err := s.db.Exec(
		"UPDATE pages SET title = ?, modified_at = ? WHERE id = ?",
		title, time.Now(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// Move reparents a page. An empty parent makes it a root. Moving a page
// under itself or under one of its own descendants is rejected, since that
// would orphan the whole subtree.
func (s *Store) Move(id, parent string) error {
	if parent != "" {
		if parent == id {
			return fmt.Errorf("cannot move page under itself")
		}
		pages, err := s.List()
		if err != nil {
			return fmt.Errorf("list pages: %w", err)
		}
		if isDescendant(pages, parent, id) {
			return fmt.Errorf("cannot move page under its own descendant")
		}
		if _, err := s.Get(parent); err != nil {
			return fmt.Errorf("target parent: %w", err)
		}
	}

	res, err := s.db.Exec(
		"UPDATE pages SET parent = ?, modified_at = ? WHERE id = ?",
		parent, time.Now(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// SetSortOrder updates a page's explicit sibling position.
func (s *Store) SetSortOrder(id string, order int) error {
	res, err := s.db.Exec(
		"UPDATE pages SET sort_order = ?, modified_at = ? WHERE id = ?",
		order, time.Now(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// Delete permanently removes a page. Children are not cascaded: they keep
// their dangling parent reference and surface as roots on the next forest
// build. Callers are expected to evict the page's tabs afterwards.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*models.Page, error) {
	p := &models.Page{}
	var tags sql.NullString
	var parent sql.NullString
	err := row.Scan(
		&p.ID, &p.Title, &parent, &p.IsFolder, &p.SortOrder,
		&tags, &p.Created, &p.Modified,
	)
	if err != nil {
		return nil, err
	}
	p.Parent = parent.String

	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &p.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}

	return p, nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("page not found: %s", id)
	}
	return nil
}

// isDescendant reports whether candidate is id itself or a descendant of id.
// The walk is bounded by a visited set so cyclic parent data cannot loop.
func isDescendant(pages []*models.Page, candidate, id string) bool {
	byID := make(map[string]*models.Page, len(pages))
	for _, p := range pages {
		byID[p.ID] = p
	}

	visited := make(map[string]bool)
	current := candidate
	for current != "" && !visited[current] {
		if current == id {
			return true
		}
		visited[current] = true
		p, ok := byID[current]
		if !ok {
			return false
		}
		current = p.Parent
	}
	return false
}
