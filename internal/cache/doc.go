// Package cache persists one catalog extraction keyed by source path and
// modification time, so an unchanged multi-megabyte catalog is not
// re-parsed on every invocation.
//
// The cache is a pure optimization: every failure mode on the read side is
// a cold cache and every failure on the write side is logged and absorbed.
// Cache faults must never become load faults.
//
// # Basic Usage
//
//	store := cache.NewStore(cfg.CacheFile(), log)
//
//	if payload, ok := store.Read(); ok && cache.Fresh(payload, loc) {
//	    return payload.Records
//	}
//	// ...extract, then:
//	if err := store.Write(payload); err != nil {
//	    log.Warn().Err(err).Msg("failed to persist catalog cache")
//	}
//
// # Freshness
//
// Fresh compares the payload's source path and mtime against the resolved
// catalog location. mtime equality is best-effort: a content change that
// preserves mtime is not detected, and a forced refresh is the escape
// hatch. Writes go through an atomic rename so readers never observe a
// partially written file.
package cache
