package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"library_manager/internal/config"
	"library_manager/internal/db"
	"library_manager/internal/library"
	"library_manager/internal/shell"
	"library_manager/internal/storage"
)

func main() {
	// 1. .env попадает в окружение до разбора флагов
	config.LoadDotEnv()

	// 2. Флаги и окружение, затем меню
	if err := newApp(os.Stdin, os.Stdout).RunContext(context.Background(), os.Args); err != nil {
		log.Fatalf("Fatal: %v", err)
	}
}

// newApp собирает CLI. Окружение читается только через EnvVars флагов.
func newApp(in io.Reader, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "library"
	app.Usage = "Personal library catalog."
	app.Writer = out
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "backend",
			Value:   config.DefaultBackend,
			Usage:   "storage backend: json or sqlite",
			EnvVars: []string{config.EnvBackend},
		},
		&cli.StringFlag{
			Name:    "file",
			Value:   config.DefaultBooksFile,
			Usage:   "path to the JSON library document",
			EnvVars: []string{config.EnvBooksFile},
		},
		&cli.StringFlag{
			Name:    "sqlite-path",
			Value:   config.DefaultSQLitePath,
			Usage:   "path to the SQLite database",
			EnvVars: []string{config.EnvSQLitePath},
		},
	}
	app.Action = func(c *cli.Context) error {
		// Проверка конфигурации — один раз, после флагов
		cfg, err := (&config.Config{
			Backend:    c.String("backend"),
			BooksFile:  c.String("file"),
			SQLitePath: c.String("sqlite-path"),
		}).Normalize()
		if err != nil {
			return fmt.Errorf("ошибка конфигурации: %w", err)
		}

		// Инициализация хранилища
		store, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		// Меню возвращает ошибку только при сбое записи
		return shell.New(library.New(store), in, out).Run(c.Context)
	}
	return app
}

func openStore(cfg *config.Config) (library.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := db.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("ошибка БД: %w", err)
		}
		log.Printf("SQLite: %s", cfg.SQLitePath)
		return store, func() { store.Close() }, nil
	default:
		store := storage.NewFileStore(cfg.BooksFile)
		log.Printf("Storage: %s", store.Path())
		return store, func() {}, nil
	}
}
