package wordbank

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhisek/vocabquiz/internal/quiz"
)

const (
	pgCategoriesTable = `CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		position INTEGER NOT NULL
	)`

	pgWordsTable = `CREATE TABLE IF NOT EXISTS words (
		category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		definition TEXT NOT NULL,
		answer TEXT NOT NULL,
		PRIMARY KEY (category_id, position)
	)`
)

// Postgres is a word bank stored in a PostgreSQL database.
type Postgres struct {
	DSN string
}

// NewPostgres returns a PostgreSQL source for a connection string.
func NewPostgres(dsn string) *Postgres {
	return &Postgres{DSN: dsn}
}

// String hides credentials.
func (p *Postgres) String() string {
	cfg, err := pgxpool.ParseConfig(p.DSN)
	if err != nil {
		return "postgres"
	}
	return fmt.Sprintf("postgres://%s:%d/%s", cfg.ConnConfig.Host, cfg.ConnConfig.Port, cfg.ConnConfig.Database)
}

// Load reads every category and word in source order.
func (p *Postgres) Load(ctx context.Context) (quiz.RawData, error) {
	pool, err := p.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, selectWords)
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

// Import replaces the database contents with raw inside one transaction.
func (p *Postgres) Import(ctx context.Context, raw quiz.RawData) error {
	pool, err := p.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	for _, stmt := range []string{pgCategoriesTable, pgWordsTable} {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM words`); err != nil {
			return fmt.Errorf("clear words: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM categories`); err != nil {
			return fmt.Errorf("clear categories: %w", err)
		}

		for catPos, cat := range raw {
			var catID int64
			err := tx.QueryRow(ctx,
				`INSERT INTO categories (name, position) VALUES ($1, $2) RETURNING id`,
				cat.Name, catPos,
			).Scan(&catID)
			if err != nil {
				return fmt.Errorf("insert category %q: %w", cat.Name, err)
			}

			batch := &pgx.Batch{}
			for pos, e := range cat.Entries {
				batch.Queue(
					`INSERT INTO words (category_id, position, definition, answer) VALUES ($1, $2, $3, $4)`,
					catID, pos, e.Definition, e.Answer,
				)
			}
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("insert words for %q: %w", cat.Name, err)
			}
		}
		return nil
	})
}

func (p *Postgres) connect(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(p.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres DSN: %w", err)
	}
	cfg.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
