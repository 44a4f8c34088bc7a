package mem

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/bft-labs/itemd/internal/domain"
)

func TestSave_AssignsIDAndStatus(t *testing.T) {
	s := New()
	ctx := context.Background()

	saved, err := s.Save(ctx, domain.Item{Name: "first", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.ID == "" {
		t.Error("Save did not assign an id")
	}
	if saved.Status != domain.StatusNew {
		t.Errorf("Status = %v, want %v", saved.Status, domain.StatusNew)
	}

	got, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != saved {
		t.Errorf("Get = %+v, want %+v", got, saved)
	}
}

func TestSave_KeepsExistingID(t *testing.T) {
	s := New()
	ctx := context.Background()

	saved, err := s.Save(ctx, domain.Item{Name: "first", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	saved.Name = "renamed"
	updated, err := s.Save(ctx, saved)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("id changed on update: %s -> %s", saved.ID, updated.ID)
	}

	ids, err := s.ListIDs(ctx)
	if err != nil {
		t.Fatalf("ListIDs returned error: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("len(ids) = %d, want 1", len(ids))
	}
}

func TestGet_NotFound(t *testing.T) {
	s := New()

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	saved, err := s.Save(ctx, domain.Item{Name: "first", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := s.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := s.Delete(ctx, saved.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestList_ReturnsAllItems(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := s.Save(ctx, domain.Item{Name: fmt.Sprintf("item-%d", i), Email: "a@example.com"}); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 5 {
		t.Errorf("len(items) = %d, want 5", len(items))
	}
}

func TestConcurrentSaves(t *testing.T) {
	s := New()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := s.Save(ctx, domain.Item{Name: fmt.Sprintf("item-%d", i), Email: "a@example.com"}); err != nil {
				t.Errorf("Save returned error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	ids, err := s.ListIDs(ctx)
	if err != nil {
		t.Fatalf("ListIDs returned error: %v", err)
	}
	if len(ids) != n {
		t.Errorf("len(ids) = %d, want %d", len(ids), n)
	}
}
