// Command indexer builds the full-text reference index ahead of time so the
// server can open it via INDEX_DB_PATH instead of indexing at startup.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/siamtrade/thai-customs-mcp/internal/search"
)

const (
	distDir      = "dist"
	databaseName = "index.db"
)

func main() {
	docsDir := flag.String("docs", "resources/docs", "directory holding the reference markdown documents")
	outDir := flag.String("out", distDir, "directory the index database is written to")
	flag.Parse()

	if _, err := os.Stat(*docsDir); err != nil {
		log.Fatalf("Failed to read documents directory %s: %v", *docsDir, err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory %s: %v", *outDir, err)
	}

	dbPath := filepath.Join(*outDir, databaseName)

	db, err := search.InitSQLiteDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize index at %s: %v", dbPath, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Warning: failed to close index database: %v", closeErr)
		}
	}()

	log.Printf("Indexing reference documents from %s...", *docsDir)

	if err := search.BuildIndex(db, os.DirFS(*docsDir)); err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}

	log.Printf("Index written to %s", dbPath)
}
