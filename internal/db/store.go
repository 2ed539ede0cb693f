package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"library_manager/internal/models"
)

// Store — SQLite-вариант хранилища библиотеки.
// Как и JSON-документ, он читается и перезаписывается целиком.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("путь к SQLite пустой")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию БД: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия БД: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragma := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, stmt := range pragma {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ошибка PRAGMA: %w", err)
		}
	}
	return nil
}

// position хранит порядок вставки; по нему нумеруются книги при выводе.
func migrate(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS books (
	position INTEGER PRIMARY KEY,
	title TEXT,
	author TEXT,
	genre TEXT,
	status TEXT,
	year INTEGER
);
`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}
	return nil
}

// Load возвращает все книги по порядку. Ошибка чтения пишется в лог,
// а библиотека считается пустой.
func (s *Store) Load(ctx context.Context) []models.Book {
	books, err := s.listBooks(ctx)
	if err != nil {
		log.Printf("sqlite: %v", err)
		return []models.Book{}
	}
	return books
}

func (s *Store) listBooks(ctx context.Context) ([]models.Book, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT title, author, genre, status, year
FROM books
ORDER BY position
`)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения библиотеки: %w", err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var title, author, genre, status sql.NullString
		var year sql.NullInt64
		if err := rows.Scan(&title, &author, &genre, &status, &year); err != nil {
			return nil, fmt.Errorf("ошибка скана библиотеки: %w", err)
		}

		book := models.Book{
			Title:  nullString(title),
			Author: nullString(author),
			Genre:  nullString(genre),
			Status: nullString(status),
		}
		if year.Valid {
			y := int(year.Int64)
			book.Year = &y
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка rows: %w", err)
	}
	return books, nil
}

// Save заменяет содержимое таблицы в одной транзакции.
func (s *Store) Save(ctx context.Context, books []models.Book) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM books`); err != nil {
		return fmt.Errorf("ошибка очистки библиотеки: %w", err)
	}

	for i, book := range books {
		var year any
		if book.Year != nil {
			year = *book.Year
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO books (position, title, author, genre, status, year)
VALUES (?, ?, ?, ?, ?, ?)
`, i, sqlString(book.Title), sqlString(book.Author), sqlString(book.Genre), sqlString(book.Status), year)
		if err != nil {
			return fmt.Errorf("ошибка вставки книги: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка сохранения библиотеки: %w", err)
	}
	return nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func sqlString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
