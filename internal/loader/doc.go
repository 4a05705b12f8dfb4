// Package loader composes location, caching, inference, and extraction
// into one "load, using cache unless stale or forced" operation.
//
// # Basic Usage
//
//	l := loader.New(locator, store, cfg.CatalogPath, log)
//
//	res, err := l.Load(ctx, false)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d resources from %s (cached: %v)\n",
//	    len(res.Records), res.SourcePath, res.FromCache)
//
// # Load Pipeline
//
//  1. Resolve: find the catalog database (override or auto-discovery)
//  2. Cache check: unless forced, serve the persisted extraction when its
//     source path and mtime still match the resolved location
//  3. Extract: open the database read-only, infer the schema, project and
//     normalize the rows, close the handle
//  4. Persist: write the cache best-effort; a failed write is logged and
//     never fails the load that produced the records
//
// Refresh is Load with the cache read bypassed; the result still
// overwrites the cache.
//
// # Concurrency
//
// Concurrent Load and Refresh calls coalesce onto a single in-flight
// extraction, so the database handle is never shared between extractions.
package loader
