package storage

import (
	"context"

	"library_manager/internal/models"
)

// MemoryStore — хранилище без диска, для тестов.
type MemoryStore struct {
	books []models.Book
	saves int
}

func NewMemoryStore(books ...models.Book) *MemoryStore {
	return &MemoryStore{books: append([]models.Book{}, books...)}
}

func (m *MemoryStore) Load(_ context.Context) []models.Book {
	return append([]models.Book{}, m.books...)
}

func (m *MemoryStore) Save(_ context.Context, books []models.Book) error {
	m.books = append([]models.Book{}, books...)
	m.saves++
	return nil
}

// Saves — сколько раз вызывался Save.
func (m *MemoryStore) Saves() int {
	return m.saves
}
