package store

import (
	"database/sql"
	"fmt"
	"time"
)

// SaveLayout persists the serialized layout record for a workspace. The
// record is an opaque JSON blob produced by panes.MarshalRecord; the store
// does not interpret it.
func (s *Store) SaveLayout(workspace string, record []byte) error {
	if workspace == "" {
		workspace = "default"
	}
	query := `
	INSERT OR REPLACE INTO layout (workspace, record, updated_at)
	VALUES (?, ?, ?)
	`
	_, err := s.db.Exec(query, workspace, string(record), time.Now())
	if err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	return nil
}

// LoadLayout returns the persisted layout record for a workspace, or nil if
// none has been saved yet. A missing layout is not an error: the caller
// starts from a fresh single-pane layout.
func (s *Store) LoadLayout(workspace string) ([]byte, error) {
	if workspace == "" {
		workspace = "default"
	}
	var record string
	err := s.db.QueryRow(
		"SELECT record FROM layout WHERE workspace = ?", workspace,
	).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	return []byte(record), nil
}
