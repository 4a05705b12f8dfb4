package types

import "errors"

// Terminal load errors surfaced to the caller. Cache faults are never
// represented here; they degrade to a cold cache inside the cache store.
var (
	// ErrCatalogNotFound is returned when no catalog database candidate exists
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrAccessDenied is returned when the filesystem refuses a read for permission reasons
	ErrAccessDenied = errors.New("access denied")
	// ErrSchemaNotFound is returned when no table yields both an id and a title column
	ErrSchemaNotFound = errors.New("schema not found")
)
