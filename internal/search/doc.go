// Package search builds a weighted multi-field fuzzy index over resource
// records and answers ranked queries.
//
// A query primarily matches on title text but can still surface records
// through their author, abbreviation, or identifier; the field weights fix
// that precedence. Matching ignores where in the field the match sits, and
// the admission threshold (lower = stricter) comes from configuration.
//
// # Basic Usage
//
//	ix := search.NewIndex(records, search.DefaultOptions())
//
//	hits := ix.Search("genesis", 10)
//	for _, r := range hits {
//	    fmt.Printf("%s  %s\n", r.ID, r.Title)
//	}
//
// # Matching Model
//
// The query is lowercased and split into tokens; tokens shorter than two
// runes are dropped, and a query with no usable tokens returns the head of
// the default title-sorted order. Every surviving token must match at
// least one field of a record for the record to appear at all.
//
// Per token and field, the fuzzy score is normalized against the token's
// self-match score so that distance reflects match quality rather than
// field length. A record is admitted when each token's best unweighted
// field distance clears the threshold; its ranking key discounts each
// field by its weight (title 1.0, author 0.6, abbreviation 0.3, id 0.2),
// so an identifier hit never outranks a decent title hit.
//
// # Lifecycle
//
// An Index is immutable and carries its own LRU query cache. Rebuild the
// index when the underlying records change; the cache dies with it.
package search
