// Package library — операции каталога. Каждый вызов заново читает коллекцию
// из хранилища и, если что-то меняет, сразу сохраняет её целиком.
package library

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"library_manager/internal/models"
)

// Store — сохранённая коллекция. Load не возвращает ошибок: отсутствующее
// или битое хранилище читается как пустая библиотека.
type Store interface {
	Load(ctx context.Context) []models.Book
	Save(ctx context.Context, books []models.Book) error
}

type Library struct {
	store Store
}

func New(store Store) *Library {
	return &Library{store: store}
}

// Input — сырой ввод пользователя для новой книги.
type Input struct {
	Title  string
	Author string
	Genre  string
	Status string
	Year   string
}

// Added — сохранённая запись и поля, заменённые значениями по умолчанию.
type Added struct {
	Book          models.Book
	InvalidStatus bool
	InvalidYear   bool
}

// Stats — сводка по библиотеке. Книги с неизвестным статусом входят только в Total.
type Stats struct {
	Total     int
	Completed int
	Reading   int
	Unread    int
}

// ParseYear разбирает год; ok == false, если это не целое число.
func ParseYear(raw string) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return year, true
}

// Sanitize превращает ввод в запись: неизвестный статус становится Unread,
// неразборчивый год — 0.
func Sanitize(in Input) Added {
	status, ok := models.ParseStatus(in.Status)
	invalidStatus := !ok
	if invalidStatus {
		status = models.StatusUnread
	}

	year, ok := ParseYear(in.Year)
	invalidYear := !ok
	if invalidYear {
		year = 0
	}

	return Added{
		Book: models.NewBook(
			strings.TrimSpace(in.Title),
			strings.TrimSpace(in.Author),
			strings.TrimSpace(in.Genre),
			status,
			year,
		),
		InvalidStatus: invalidStatus,
		InvalidYear:   invalidYear,
	}
}

// Add добавляет очищенную запись в конец коллекции.
func (l *Library) Add(ctx context.Context, in Input) (Added, error) {
	added := Sanitize(in)

	books := l.store.Load(ctx)
	books = append(books, added.Book)
	if err := l.store.Save(ctx, books); err != nil {
		return Added{}, fmt.Errorf("ошибка добавления книги: %w", err)
	}
	return added, nil
}

// List возвращает коллекцию в порядке добавления.
func (l *Library) List(ctx context.Context) []models.Book {
	return l.store.Load(ctx)
}

// Search — книги, у которых название или автор содержит запрос без учёта регистра.
// Отсутствующие название и автор сравниваются как пустые строки.
func (l *Library) Search(ctx context.Context, query string) []models.Book {
	q := strings.ToLower(strings.TrimSpace(query))

	var results []models.Book
	for _, book := range l.store.Load(ctx) {
		if strings.Contains(strings.ToLower(book.MatchTitle()), q) ||
			strings.Contains(strings.ToLower(book.MatchAuthor()), q) {
			results = append(results, book)
		}
	}
	return results
}

// Delete удаляет книгу по номеру (с единицы), введённому пользователем.
// При неверном номере ничего не сохраняется.
func (l *Library) Delete(ctx context.Context, rawPosition string) (models.Book, error) {
	books := l.store.Load(ctx)
	if len(books) == 0 {
		return models.Book{}, ErrNoBooks
	}

	n, err := strconv.Atoi(strings.TrimSpace(rawPosition))
	if err != nil {
		return models.Book{}, ErrInvalidNumber
	}

	idx := n - 1
	if idx < 0 || idx >= len(books) {
		return models.Book{}, ErrOutOfRange
	}

	removed := books[idx]
	books = append(books[:idx], books[idx+1:]...)
	if err := l.store.Save(ctx, books); err != nil {
		return models.Book{}, fmt.Errorf("ошибка удаления книги: %w", err)
	}
	return removed, nil
}

// Stats считает книги по известным статусам. Сумма не обязана равняться Total.
func (l *Library) Stats(ctx context.Context) Stats {
	books := l.store.Load(ctx)

	stats := Stats{Total: len(books)}
	for _, book := range books {
		status := book.StatusValue()
		switch {
		case strings.EqualFold(status, string(models.StatusCompleted)):
			stats.Completed++
		case strings.EqualFold(status, string(models.StatusReading)):
			stats.Reading++
		case strings.EqualFold(status, string(models.StatusUnread)):
			stats.Unread++
		}
	}
	return stats
}
