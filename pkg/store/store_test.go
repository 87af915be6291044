package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mattsolo1/grove-pages/pkg/models"
)

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")

	s, err := Open(dataDir)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	if s.dataDir != dataDir {
		t.Errorf("Expected dataDir %s, got %s", dataDir, s.dataDir)
	}

	// Check if database file was created
	dbFile := filepath.Join(dataDir, "pages.db")
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		t.Error("Expected database file to be created")
	}
}

func TestSaveAndGetPage(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	p := &models.Page{
		ID:    "page-1",
		Title: "First Page",
		Tags:  []string{"docs", "draft"},
	}

	if err := s.Save(p); err != nil {
		t.Fatalf("Failed to save page: %v", err)
	}

	if p.Created.IsZero() || p.Modified.IsZero() {
		t.Error("Expected save to fill in timestamps")
	}

	retrieved, err := s.Get("page-1")
	if err != nil {
		t.Fatalf("Failed to get page: %v", err)
	}

	if retrieved.Title != p.Title {
		t.Errorf("Expected title %s, got %s", p.Title, retrieved.Title)
	}
	if len(retrieved.Tags) != 2 || retrieved.Tags[0] != "docs" {
		t.Errorf("Expected tags %v, got %v", p.Tags, retrieved.Tags)
	}
	if retrieved.Parent != "" {
		t.Errorf("Expected empty parent, got %s", retrieved.Parent)
	}

	// Test Get non-existent
	if _, err := s.Get("non-existent"); err == nil {
		t.Error("Expected error when getting non-existent page")
	}
}

func TestSaveValidation(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Save(&models.Page{Title: "no id"}); err == nil {
		t.Error("Expected error saving page without id")
	}
	if err := s.Save(&models.Page{ID: "no-title"}); err == nil {
		t.Error("Expected error saving page without title")
	}
}

func TestListPages(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	pages := []*models.Page{
		{ID: "folder", Title: "Folder", IsFolder: true},
		{ID: "b", Title: "Beta", Parent: "folder", SortOrder: 2},
		{ID: "a", Title: "Alpha", Parent: "folder", SortOrder: 1},
	}
	for _, p := range pages {
		if err := s.Save(p); err != nil {
			t.Fatalf("Failed to save page: %v", err)
		}
	}

	listed, err := s.List()
	if err != nil {
		t.Fatalf("Failed to list pages: %v", err)
	}

	if len(listed) != len(pages) {
		t.Fatalf("Expected %d pages, got %d", len(pages), len(listed))
	}

	// Siblings come back ordered by sort_order.
	if listed[1].ID != "a" || listed[2].ID != "b" {
		t.Errorf("Expected children ordered a, b; got %s, %s", listed[1].ID, listed[2].ID)
	}
}

func TestRenamePage(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Save(&models.Page{ID: "p", Title: "Old"}); err != nil {
		t.Fatalf("Failed to save page: %v", err)
	}

	if err := s.Rename("p", "New"); err != nil {
		t.Fatalf("Failed to rename page: %v", err)
	}

	p, err := s.Get("p")
	if err != nil {
		t.Fatalf("Failed to get page: %v", err)
	}
	if p.Title != "New" {
		t.Errorf("Expected title New, got %s", p.Title)
	}

	if err := s.Rename("p", ""); err == nil {
		t.Error("Expected error renaming to empty title")
	}
	if err := s.Rename("missing", "X"); err == nil {
		t.Error("Expected error renaming non-existent page")
	}
}

func TestMovePage(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	pages := []*models.Page{
		{ID: "root", Title: "Root", IsFolder: true},
		{ID: "child", Title: "Child", Parent: "root"},
		{ID: "grandchild", Title: "Grandchild", Parent: "child"},
		{ID: "other", Title: "Other"},
	}
	for _, p := range pages {
		if err := s.Save(p); err != nil {
			t.Fatalf("Failed to save page: %v", err)
		}
	}

	// Normal reparent
	if err := s.Move("other", "root"); err != nil {
		t.Fatalf("Failed to move page: %v", err)
	}
	moved, _ := s.Get("other")
	if moved.Parent != "root" {
		t.Errorf("Expected parent root, got %s", moved.Parent)
	}

	// Move to root level
	if err := s.Move("other", ""); err != nil {
		t.Fatalf("Failed to move page to root: %v", err)
	}
	moved, _ = s.Get("other")
	if moved.Parent != "" {
		t.Errorf("Expected empty parent, got %s", moved.Parent)
	}

	// Rejected moves
	if err := s.Move("root", "root"); err == nil {
		t.Error("Expected error moving page under itself")
	}
	if err := s.Move("root", "grandchild"); err == nil {
		t.Error("Expected error moving page under its own descendant")
	}
	if err := s.Move("other", "missing"); err == nil {
		t.Error("Expected error moving under non-existent parent")
	}
}

func TestSetSortOrder(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Save(&models.Page{ID: "p", Title: "P"}); err != nil {
		t.Fatalf("Failed to save page: %v", err)
	}

	if err := s.SetSortOrder("p", 7); err != nil {
		t.Fatalf("Failed to set sort order: %v", err)
	}

	p, _ := s.Get("p")
	if p.SortOrder != 7 {
		t.Errorf("Expected sort order 7, got %d", p.SortOrder)
	}
}

func TestDeletePage(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	pages := []*models.Page{
		{ID: "parent", Title: "Parent", IsFolder: true},
		{ID: "child", Title: "Child", Parent: "parent"},
	}
	for _, p := range pages {
		if err := s.Save(p); err != nil {
			t.Fatalf("Failed to save page: %v", err)
		}
	}

	if err := s.Delete("parent"); err != nil {
		t.Fatalf("Failed to delete page: %v", err)
	}

	if _, err := s.Get("parent"); err == nil {
		t.Error("Expected error when getting deleted page")
	}

	// Children survive with their stale parent pointer; the hierarchy
	// builder surfaces them as roots.
	child, err := s.Get("child")
	if err != nil {
		t.Fatalf("Expected child to survive parent deletion: %v", err)
	}
	if child.Parent != "parent" {
		t.Errorf("Expected child to keep parent reference, got %s", child.Parent)
	}

	if err := s.Delete("missing"); err == nil {
		t.Error("Expected error deleting non-existent page")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	// Missing layout is not an error
	record, err := s.LoadLayout("main")
	if err != nil {
		t.Fatalf("LoadLayout returned error: %v", err)
	}
	if record != nil {
		t.Error("Expected nil record for unsaved workspace")
	}

	blob := []byte(`{"paneLayout":{"type":"leaf","id":"p1"},"activePaneId":"p1"}`)
	if err := s.SaveLayout("main", blob); err != nil {
		t.Fatalf("Failed to save layout: %v", err)
	}

	record, err = s.LoadLayout("main")
	if err != nil {
		t.Fatalf("Failed to load layout: %v", err)
	}
	if string(record) != string(blob) {
		t.Errorf("Expected record %s, got %s", blob, record)
	}

	// Saving again replaces the old record
	blob2 := []byte(`{"paneLayout":{"type":"leaf","id":"p2"},"activePaneId":"p2"}`)
	if err := s.SaveLayout("main", blob2); err != nil {
		t.Fatalf("Failed to replace layout: %v", err)
	}
	record, _ = s.LoadLayout("main")
	if string(record) != string(blob2) {
		t.Errorf("Expected replaced record %s, got %s", blob2, record)
	}

	// Empty workspace name falls back to default
	if err := s.SaveLayout("", blob); err != nil {
		t.Fatalf("Failed to save default layout: %v", err)
	}
	record, err = s.LoadLayout("default")
	if err != nil || string(record) != string(blob) {
		t.Error("Expected empty workspace name to map to default")
	}
}
