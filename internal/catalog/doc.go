// Package catalog reads resource records out of an Atheneum library
// catalog of unknown layout.
//
// The catalog schema has no contract: table and column names vary across
// app versions and installs. Instead of hardcoding one layout, the package
// infers the schema at read time:
//
//  1. Enumerate the tables actually present
//  2. Try known table names first, then everything else
//  3. Resolve each logical field (id, title, author, abbreviation) by a
//     case-insensitive priority list of historical column names
//  4. The first table providing both id and title wins
//
// Extraction projects the inferred columns, coerces any storage class to
// text, drops rows without id or title, deduplicates by id, and sorts by
// title with the shared collator.
//
// # Drivers
//
// The SQLite driver is chosen at build time: modernc.org/sqlite by default
// (pure Go), github.com/mattn/go-sqlite3 with the sqlite_cgo tag. The
// database is always opened read-only; this package never writes.
//
// # Usage
//
//	db, err := catalog.Open(loc.Path)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	schema, err := catalog.InferSchema(ctx, db)
//	if err != nil {
//	    return err // types.ErrSchemaNotFound when nothing qualifies
//	}
//	records, err := catalog.Extract(ctx, db, schema)
package catalog
