package storage

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"library_manager/internal/models"
)

func strPtr(s string) *string { return &s }

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "books.json"))

	orig := []models.Book{
		models.NewBook("Dune", "Herbert", "SciFi", models.StatusReading, 1965),
		models.NewBook("Emma", "Austen", "Classic", models.StatusUnread, 1815),
		{Title: strPtr("Partial")},
	}

	if err := store.Save(ctx, orig); err != nil {
		t.Fatalf("Save err=%v", err)
	}

	loaded := store.Load(ctx)
	if !reflect.DeepEqual(loaded, orig) {
		t.Fatalf("mismatch:\nloaded=%v\norig=%v", loaded, orig)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	for i := 0; i < 3; i++ {
		books := store.Load(context.Background())
		if books == nil || len(books) != 0 {
			t.Fatalf("attempt %d: want empty collection, got %v", i, books)
		}
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	for _, content := range []string{"{not json", "null", `{"title":"x"}`, ""} {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if books := NewFileStore(path).Load(context.Background()); len(books) != 0 {
			t.Fatalf("content %q: want empty collection, got %v", content, books)
		}
	}
}

func TestFileStoreFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.json")
	store := NewFileStore(path)

	if err := store.Save(ctx, nil); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("empty library must be saved as [], got %q", data)
	}

	if err := store.Save(ctx, []models.Book{models.NewBook("Dune", "Herbert", "SciFi", models.StatusReading, 1965)}); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), "\n        \"title\": \"Dune\"") {
		t.Fatalf("expected 4-space indentation, got:\n%s", data)
	}
	if !strings.Contains(string(data), "\"year\": 1965") {
		t.Fatalf("year must be stored as an integer, got:\n%s", data)
	}
}

func TestFileStoreReadsHandEditedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	doc := `[{"title": "Only Title"}, {"author": "Someone", "status": "Weird", "year": 2001}]`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	books := NewFileStore(path).Load(context.Background())
	if len(books) != 2 {
		t.Fatalf("len=%d want=2", len(books))
	}
	if books[0].Author != nil || books[0].DisplayAuthor() != "Unknown Author" {
		t.Fatalf("missing author should stay missing: %+v", books[0])
	}
	if books[1].StatusValue() != "Weird" || *books[1].Year != 2001 {
		t.Fatalf("unexpected record: %v", books[1])
	}
}

func TestFileStoreKeepsDriftedRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.json")
	doc := `[
    {"title": "Keep Me", "author": "A", "genre": "G", "status": "Reading", "year": 1999},
    {"title": "Hand Edited", "author": "B", "genre": "G", "status": "Unread", "year": "1965"},
    {"title": 123, "shelf": "top"},
    42
]`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)

	books := store.Load(ctx)
	if len(books) != 4 {
		t.Fatalf("loaded %d books, want 4", len(books))
	}
	if got := books[1].String(); got != "Hand Edited by B (G, 1965) - Unread" {
		t.Fatalf("drifted record displayed as %q", got)
	}
	if got := books[2].DisplayTitle(); got != "123" {
		t.Fatalf("numeric title displayed as %q", got)
	}

	books = append(books, models.NewBook("New", "C", "G", models.StatusUnread, 2024))
	if err := store.Save(ctx, books); err != nil {
		t.Fatal(err)
	}

	reloaded := store.Load(ctx)
	if len(reloaded) != 5 {
		t.Fatalf("reloaded %d books, want 5", len(reloaded))
	}
	want := []string{"Keep Me", "Hand Edited", "123", "Unknown Title", "New"}
	for i, title := range want {
		if got := reloaded[i].DisplayTitle(); got != title {
			t.Fatalf("book %d title=%q want %q", i, got, title)
		}
	}

	data, _ := os.ReadFile(path)
	for _, raw := range []string{`"year": "1965"`, `"title": 123`, `"shelf": "top"`, "    42"} {
		if !strings.Contains(string(data), raw) {
			t.Fatalf("saved document lost %s:\n%s", raw, data)
		}
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(models.NewBook("A", "B", "C", models.StatusUnread, 1))

	books := m.Load(ctx)
	books[0] = models.NewBook("X", "Y", "Z", models.StatusReading, 2)

	if got := m.Load(ctx)[0].DisplayTitle(); got != "A" {
		t.Fatalf("store mutated through loaded slice: %q", got)
	}
}
