package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS books (
	isbn     TEXT PRIMARY KEY,
	title    TEXT NOT NULL,
	author   TEXT NOT NULL,
	price    REAL NOT NULL,
	quantity INTEGER NOT NULL
);`

// SQLiteRepo persists the inventory in a single local SQLite file.
type SQLiteRepo struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSQLiteRepo opens (creating if needed) the database file at path.
func NewSQLiteRepo(path string, timeout time.Duration) (*SQLiteRepo, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA busy_timeout = 5000;",
		sqliteSchema,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("prepare %s: %w", path, err)
		}
	}

	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SQLiteRepo{db: db, timeout: timeout}, nil
}

func (r *SQLiteRepo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *SQLiteRepo) Load(ctx context.Context) (Inventory, error) {
	const query = `SELECT isbn, title, author, price, quantity FROM books`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.QueryContext(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	inv := Inventory{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ISBN, &b.Title, &b.Author, &b.Price, &b.Quantity); err != nil {
			return nil, fmt.Errorf("%w: scan book: %v", ErrCorrupt, err)
		}
		inv[b.ISBN] = b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	return inv, nil
}

// Save replaces the table contents in one transaction.
func (r *SQLiteRepo) Save(ctx context.Context, inv Inventory) (err error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(timeoutCtx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(timeoutCtx, `DELETE FROM books`); err != nil {
		return fmt.Errorf("clear books: %w", err)
	}

	stmt, err := tx.PrepareContext(timeoutCtx,
		`INSERT INTO books (isbn, title, author, price, quantity) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for key, b := range inv {
		if _, err = stmt.ExecContext(timeoutCtx, key, b.Title, b.Author, b.Price, b.Quantity); err != nil {
			return fmt.Errorf("insert %s: %w", key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
