package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Переменные окружения; их читают флаги командной строки.
const (
	EnvBackend    = "LIBRARY_BACKEND"
	EnvBooksFile  = "LIBRARY_FILE"
	EnvSQLitePath = "LIBRARY_SQLITE_PATH"
)

// Значения по умолчанию: books.json в рабочей директории.
const (
	DefaultBackend    = BackendJSON
	DefaultBooksFile  = "books.json"
	DefaultSQLitePath = "data/library.db"
)

// Config — настройки приложения, собранные из флагов и окружения.
type Config struct {
	Backend    string
	BooksFile  string
	SQLitePath string
}

// LoadDotEnv переносит .env в окружение процесса. Уже заданные переменные
// не перезаписываются; отсутствие файла — нормальный случай.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env не прочитан: %v", err)
	}
}

// Normalize подставляет значения по умолчанию, разрешает пути и проверяет backend.
func (c *Config) Normalize() (*Config, error) {
	backend := strings.ToLower(strings.TrimSpace(withDefault(c.Backend, DefaultBackend)))
	if backend != BackendJSON && backend != BackendSQLite {
		return nil, fmt.Errorf("неизвестный backend %q (ожидается %s или %s)", c.Backend, BackendJSON, BackendSQLite)
	}

	return &Config{
		Backend:    backend,
		BooksFile:  resolvePath(withDefault(c.BooksFile, DefaultBooksFile)),
		SQLitePath: resolvePath(withDefault(c.SQLitePath, DefaultSQLitePath)),
	}, nil
}

func withDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// resolvePath привязывает относительные пути к рабочей директории.
func resolvePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	if cwd, err := os.Getwd(); err == nil {
		return filepath.Clean(filepath.Join(cwd, p))
	}

	return p
}
