package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mholgate/shelfsearch/internal/collation"
	"github.com/mholgate/shelfsearch/pkg/types"
)

// Extract runs the projection query described by the inferred schema and
// normalizes the rows into resource records.
//
// Rows without a usable id or title are dropped. When the same id appears
// more than once, the first row wins; which duplicate is "first" follows
// the engine's unordered result sequence, which is stable for an unchanged
// file but otherwise unspecified. The result is sorted by title under the
// shared collator. Zero rows is a valid, empty catalog.
func Extract(ctx context.Context, db *sql.DB, schema Schema) ([]types.ResourceRecord, error) {
	query, hasAuthor, hasAbbrev := buildQuery(schema)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", schema.Table, err)
	}
	defer func() { _ = rows.Close() }()

	seen := make(map[string]bool)
	var records []types.ResourceRecord

	for rows.Next() {
		var idRaw, titleRaw, authorRaw, abbrevRaw any
		dest := []any{&idRaw, &titleRaw}
		if hasAuthor {
			dest = append(dest, &authorRaw)
		}
		if hasAbbrev {
			dest = append(dest, &abbrevRaw)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		id := strings.TrimSpace(coerceText(idRaw))
		title := strings.TrimSpace(coerceText(titleRaw))
		if id == "" || title == "" {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		records = append(records, types.ResourceRecord{
			ID:     id,
			Title:  title,
			Author: strings.TrimSpace(coerceText(authorRaw)),
			Abbrev: strings.TrimSpace(coerceText(abbrevRaw)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return collation.Less(records[i].Title, records[j].Title)
	})

	return records, nil
}

// buildQuery assembles the projection with quoted identifiers aliased to
// the logical field names.
func buildQuery(schema Schema) (query string, hasAuthor, hasAbbrev bool) {
	cols := []string{
		quoteIdent(schema.IDColumn) + " AS id",
		quoteIdent(schema.TitleColumn) + " AS title",
	}
	if schema.AuthorColumn != "" {
		cols = append(cols, quoteIdent(schema.AuthorColumn)+" AS author")
		hasAuthor = true
	}
	if schema.AbbrevColumn != "" {
		cols = append(cols, quoteIdent(schema.AbbrevColumn)+" AS abbrev")
		hasAbbrev = true
	}

	query = "SELECT " + strings.Join(cols, ", ") +
		" FROM " + quoteIdent(schema.Table) +
		" WHERE " + quoteIdent(schema.IDColumn) + " IS NOT NULL" +
		" AND " + quoteIdent(schema.TitleColumn) + " IS NOT NULL"
	return query, hasAuthor, hasAbbrev
}

// coerceText renders any SQLite storage class as text.
func coerceText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return "0"
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
