package wordbank

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/abhisek/vocabquiz/internal/quiz"
)

// SQLite is a word bank stored in a SQLite database file.
type SQLite struct {
	Path string
}

// NewSQLite returns a SQLite source.
func NewSQLite(path string) *SQLite {
	return &SQLite{Path: path}
}

func (s *SQLite) String() string {
	return "sqlite:" + s.Path
}

// Load reads every category and word in source order.
func (s *SQLite) Load(ctx context.Context) (quiz.RawData, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("open word bank: %w", err)
	}
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectWords)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	raw, err := collectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}
	return raw, nil
}

// Import replaces the database contents with raw, creating the file and
// schema when missing.
func (s *SQLite) Import(ctx context.Context, raw quiz.RawData) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range []string{sqliteCategoriesTable, sqliteWordsTable} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	for catPos, cat := range raw {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO categories (name, position) VALUES (?, ?)`,
			cat.Name, catPos,
		)
		if err != nil {
			return fmt.Errorf("insert category %q: %w", cat.Name, err)
		}
		catID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("category id: %w", err)
		}
		for pos, e := range cat.Entries {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO words (category_id, position, definition, answer) VALUES (?, ?, ?, ?)`,
				catID, pos, e.Definition, e.Answer,
			); err != nil {
				return fmt.Errorf("insert word %q: %w", e.Definition, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func (s *SQLite) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	return db, nil
}

// applyPragmas configures SQLite for a single local reader/writer.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
