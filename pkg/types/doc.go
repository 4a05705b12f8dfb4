// Package types defines the shared data model for shelfsearch.
//
// The package contains only plain data structures and sentinel errors so
// that every internal package can depend on it without cycles:
//
//   - ResourceRecord: one normalized catalog entry
//   - CatalogLocation: a catalog file path plus its modification time
//   - CachePayload: the persisted extraction keyed by source path and mtime
//
// Invariants maintained by producers of these types:
//
//   - ResourceRecord.ID and Title are non-empty
//   - IDs are unique within one extraction
//   - record sequences are sorted by title using the shared collator
package types
