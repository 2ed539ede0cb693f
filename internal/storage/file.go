package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"library_manager/internal/models"
)

// indent — четыре пробела на уровень.
const indent = "    "

// FileStore хранит всю коллекцию одним JSON-массивом в одном файле.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load читает весь документ. Если файла нет или это не JSON-массив — библиотека пуста.
// Отдельные записи с неожиданными полями загружаются как есть (см. models.Book).
func (s *FileStore) Load(_ context.Context) []models.Book {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Book{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []models.Book{}
	}

	books := make([]models.Book, 0, len(items))
	for _, item := range items {
		var book models.Book
		if err := book.UnmarshalJSON(item); err != nil {
			return []models.Book{}
		}
		books = append(books, book)
	}
	return books
}

// Save перезаписывает файл всей коллекцией. Временного файла и rename нет:
// сбой записи может оставить обрезанный документ.
func (s *FileStore) Save(_ context.Context, books []models.Book) error {
	if books == nil {
		books = []models.Book{}
	}

	data, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("ошибка сериализации библиотеки: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", indent); err != nil {
		return fmt.Errorf("ошибка форматирования библиотеки: %w", err)
	}
	buf.WriteByte('\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("не удалось создать директорию хранения: %w", err)
		}
	}

	out, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("не удалось создать файл: %w", err)
	}
	defer out.Close()

	if _, err := buf.WriteTo(out); err != nil {
		return fmt.Errorf("ошибка записи файла: %w", err)
	}
	return out.Close()
}
