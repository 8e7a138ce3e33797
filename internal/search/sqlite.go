package search

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/siamtrade/thai-customs-mcp/internal/logging"
)

// InitSQLiteDB opens (or creates) the SQLite database at the given path and
// ensures the FTS5 table exists with the intended tokenizer options. It drops
// any existing table named `chunks` to keep indexing idempotent per run.
func InitSQLiteDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		logging.FileOperation(context.Background(), "search", "create_index", path, err)
		return nil, err
	}

	// Recreate FTS5 table for chunks with title/content/path columns.
	// Use unicode61 tokenizer with extra token characters useful for HS codes.
	if _, err := db.Exec(`DROP TABLE IF EXISTS chunks;`); err != nil {
		logging.FileOperation(context.Background(), "search", "create_index", path, err)
		return nil, err
	}
	_, err = db.Exec(`
        CREATE VIRTUAL TABLE IF NOT EXISTS chunks
        USING fts5(
            title,
            content,
            path,
            tokenize = 'unicode61 remove_diacritics 2 tokenchars ''_/:#@-$.'''
        );
    `)
	logging.FileOperation(context.Background(), "search", "create_index", path, err)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLiteDB opens an existing index without recreating the chunks table.
func OpenSQLiteDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	logging.FileOperation(context.Background(), "search", "open_index", path, err)
	return db, err
}
