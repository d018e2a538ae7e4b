package sqlite

import (
	"database/sql"
	"fmt"

	// регистрация драйвера database/sql
	_ "github.com/mattn/go-sqlite3"

	"dayadmin/internal/infrastructure/migration"
)

type Storage struct {
	db *sql.DB
}

// New открывает файл базы и применяет миграции
func New(path string) (*Storage, error) {
	if err := migration.NewMigration(path, migration.DefaultEngine).Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}
