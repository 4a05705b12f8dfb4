package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mholgate/shelfsearch/pkg/types"
)

// Schema names the table and columns that hold resource data in one
// particular catalog. It is recomputed on every extraction because the
// layout differs across app versions and is never persisted.
type Schema struct {
	Table       string
	IDColumn    string
	TitleColumn string

	// AuthorColumn and AbbrevColumn are empty when the table has no
	// matching column.
	AuthorColumn string
	AbbrevColumn string
}

// Known table names in priority order, oldest app versions last. Tables
// present in the database but absent from this list are tried afterwards,
// in metadata order.
var knownTables = []string{"Catalog", "Resources", "Records", "Resource"}

// Column name candidates per logical field, in priority order.
var (
	idColumns     = []string{"resourceid", "recordid", "resource_id", "record_id", "id"}
	titleColumns  = []string{"title", "name", "fullname"}
	authorColumns = []string{"author", "authors", "creator"}
	abbrevColumns = []string{"abbreviation", "abbrev", "shortname", "short_title", "alias"}
)

// InferSchema determines which table and columns represent resources. The
// first table providing both an id and a title column wins; author and
// abbreviation are optional extras.
func InferSchema(ctx context.Context, db *sql.DB) (Schema, error) {
	tables, err := listTables(ctx, db)
	if err != nil {
		return Schema{}, fmt.Errorf("failed to enumerate catalog tables: %w", err)
	}

	for _, table := range candidateOrder(tables) {
		columns, err := tableColumns(ctx, db, table)
		if err != nil {
			return Schema{}, fmt.Errorf("failed to read columns of %s: %w", table, err)
		}

		idCol := resolveField(columns, idColumns)
		titleCol := resolveField(columns, titleColumns)
		if idCol == "" || titleCol == "" {
			continue
		}

		return Schema{
			Table:        table,
			IDColumn:     idCol,
			TitleColumn:  titleCol,
			AuthorColumn: resolveField(columns, authorColumns),
			AbbrevColumn: resolveField(columns, abbrevColumns),
		}, nil
	}

	return Schema{}, fmt.Errorf("%w: no table with both an id and a title column", types.ErrSchemaNotFound)
}

// candidateOrder puts known table names first (in priority order, matched
// case-insensitively against what the database actually contains) and
// appends every remaining table in metadata order.
func candidateOrder(present []string) []string {
	used := make(map[string]bool, len(present))
	order := make([]string, 0, len(present))

	for _, known := range knownTables {
		for _, table := range present {
			if !used[table] && strings.EqualFold(table, known) {
				used[table] = true
				order = append(order, table)
			}
		}
	}
	for _, table := range present {
		if !used[table] {
			used[table] = true
			order = append(order, table)
		}
	}
	return order
}

// resolveField returns the first priority candidate present among the
// available names, matched case-insensitively. Priority order wins over
// column position. Empty result means the field is absent.
func resolveField(available []string, priorities []string) string {
	for _, want := range priorities {
		for _, name := range available {
			if strings.EqualFold(name, want) {
				return name
			}
		}
	}
	return ""
}

func listTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func tableColumns(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	// PRAGMA arguments cannot be bound; the identifier is quoted instead.
	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+quoteIdent(table)+")")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var columns []string
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}
