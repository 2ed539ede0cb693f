package db

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"library_manager/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data", "library.db"))
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)

	books := store.Load(context.Background())
	if books == nil || len(books) != 0 {
		t.Fatalf("want empty collection, got %v", books)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	title := "Only Title"
	orig := []models.Book{
		models.NewBook("Dune", "Herbert", "SciFi", models.StatusReading, 1965),
		{Title: &title},
		models.NewBook("Emma", "Austen", "Classic", models.StatusCompleted, 1815),
	}

	if err := store.Save(ctx, orig); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if got := store.Load(ctx); !reflect.DeepEqual(got, orig) {
		t.Fatalf("mismatch:\ngot=%v\norig=%v", got, orig)
	}

	// Повторное сохранение полностью заменяет содержимое.
	if err := store.Save(ctx, orig[2:]); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	got := store.Load(ctx)
	if len(got) != 1 || got[0].DisplayTitle() != "Emma" {
		t.Fatalf("unexpected after overwrite: %v", got)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
