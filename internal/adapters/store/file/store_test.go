package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/itemd/internal/domain"
)

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s := New(dir)
	saved, err := s.Save(ctx, domain.Item{Name: "first", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	// A fresh store over the same directory must see the persisted item.
	reopened := New(dir)
	got, err := reopened.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get after reload returned error: %v", err)
	}
	if got != saved {
		t.Errorf("reloaded item = %+v, want %+v", got, saved)
	}
}

func TestLoad_MissingFileIsEmptyStore(t *testing.T) {
	s := New(t.TempDir())

	ids, err := s.ListIDs(context.Background())
	if err != nil {
		t.Fatalf("ListIDs returned error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("len(ids) = %d, want 0", len(ids))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "items.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s := New(dir)
	if _, err := s.List(context.Background()); err == nil {
		t.Error("List on corrupt file returned nil error")
	}
}

func TestDelete_Persists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s := New(dir)
	saved, err := s.Save(ctx, domain.Item{Name: "first", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := s.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	reopened := New(dir)
	if _, err := reopened.Get(ctx, saved.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	if _, err := s.Save(context.Background(), domain.Item{Name: "first", Email: "a@example.com"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind after save: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("store file missing after save: %v", err)
	}
}
