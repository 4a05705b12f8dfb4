package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Open opens the catalog database read-only. The handle is not safe for
// concurrent use; the pool is pinned to a single connection.
func Open(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?mode=ro"
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Force the lazy connection open so a missing or non-database file
	// fails here rather than mid-inference.
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to read catalog database: %w", err)
	}

	return db, nil
}

// quoteIdent quotes a table or column identifier for embedding in SQL.
// Identifiers come from the database's own metadata, so this guards against
// awkward characters, not hostile input.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
