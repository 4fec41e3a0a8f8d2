// Package docstore caches fetched source documents in SQLite so corpus
// downloads are not repeated. It stores raw driver input only; the pipeline's
// vocabulary and matrices are never persisted.
package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/distsem/internal/textsource"
	"github.com/cognicore/distsem/pkg/distsem/internalerr"
)

// Store is a SQLite-backed document cache keyed by URL.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the cache at path with WAL mode enabled.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS documents (
	url TEXT PRIMARY KEY,
	title TEXT,
	body TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Put inserts or replaces a document, keyed by URL.
func (s *Store) Put(ctx context.Context, d textsource.Document) error {
	if d.URL == "" {
		return fmt.Errorf("put document: empty url: %w", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO documents (url, title, body, fetched_at) VALUES (?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET title=excluded.title, body=excluded.body, fetched_at=excluded.fetched_at`,
		d.URL, d.Title, d.Body, d.FetchedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// Get returns the cached document for url, if present.
func (s *Store) Get(ctx context.Context, url string) (textsource.Document, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT url, title, body, fetched_at FROM documents WHERE url = ?`, url)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return textsource.Document{}, false, nil
	}
	if err != nil {
		return textsource.Document{}, false, err
	}
	return doc, true, nil
}

// All returns every cached document ordered by URL.
func (s *Store) All(ctx context.Context) ([]textsource.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT url, title, body, fetched_at FROM documents ORDER BY url`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []textsource.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (textsource.Document, error) {
	var doc textsource.Document
	var fetchedAt string
	if err := row.Scan(&doc.URL, &doc.Title, &doc.Body, &fetchedAt); err != nil {
		return textsource.Document{}, err
	}
	if ts, err := time.Parse(time.RFC3339Nano, fetchedAt); err == nil {
		doc.FetchedAt = ts
	}
	return doc, nil
}
