package types

// ResourceRecord is one normalized catalog entry. Records are built only by
// the catalog reader and treated as immutable afterwards.
type ResourceRecord struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Abbrev string `json:"abbrev,omitempty"`
}

// CatalogLocation identifies a specific version of the catalog database.
// Two locations with equal Path and MtimeMillis are treated as the same
// content for caching purposes; mtime is not a content hash.
type CatalogLocation struct {
	Path        string
	MtimeMillis int64
}

// CachePayload is the JSON shape persisted by the cache store. It is valid
// only while SourcePath and SourceMtimeMillis match the live catalog.
type CachePayload struct {
	SourcePath        string           `json:"sourcePath"`
	SourceMtimeMillis int64            `json:"sourceMtimeMillis"`
	Records           []ResourceRecord `json:"records"`
}
