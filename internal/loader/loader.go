package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/mholgate/shelfsearch/internal/cache"
	"github.com/mholgate/shelfsearch/internal/catalog"
	"github.com/mholgate/shelfsearch/internal/locator"
	"github.com/mholgate/shelfsearch/pkg/types"
)

// Result is one completed load.
type Result struct {
	Records    []types.ResourceRecord
	SourcePath string

	// FromCache reports whether the records came from the persisted cache
	// rather than a fresh extraction.
	FromCache bool
}

// Loader runs catalog loads. Concurrent Load calls are coalesced so that
// only one extraction ever runs against the database at a time; the
// underlying handle is not safe for concurrent use.
type Loader struct {
	locator  *locator.Locator
	store    *cache.Store
	override string
	log      zerolog.Logger

	group singleflight.Group
}

// New creates a Loader. override, when non-empty, pins the catalog path
// and disables auto-discovery.
func New(loc *locator.Locator, store *cache.Store, override string, log zerolog.Logger) *Loader {
	return &Loader{locator: loc, store: store, override: override, log: log}
}

// Load resolves the catalog and returns its records, reading the persisted
// cache when it is still fresh. force bypasses the cache read but still
// overwrites the cache with the new result. A request arriving while a
// load is in flight joins that load instead of opening the database again.
func (l *Loader) Load(ctx context.Context, force bool) (*Result, error) {
	v, err, _ := l.group.Do("catalog", func() (any, error) {
		return l.load(ctx, force)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

// Refresh is the rebuild entrypoint exposed to the UI collaborator.
func (l *Loader) Refresh(ctx context.Context) (*Result, error) {
	return l.Load(ctx, true)
}

// Resolve returns the catalog location without loading anything, for
// callers that only need the source path.
func (l *Loader) Resolve() (types.CatalogLocation, error) {
	return l.locator.Resolve(l.override)
}

func (l *Loader) load(ctx context.Context, force bool) (*Result, error) {
	start := time.Now()

	loc, err := l.locator.Resolve(l.override)
	if err != nil {
		return nil, err
	}

	if !force {
		if payload, ok := l.store.Read(); ok && cache.Fresh(payload, loc) {
			l.log.Debug().
				Int("records", len(payload.Records)).
				Str("source", loc.Path).
				Msg("catalog served from cache")
			return &Result{Records: payload.Records, SourcePath: loc.Path, FromCache: true}, nil
		}
	}

	records, err := l.extract(ctx, loc)
	if err != nil {
		return nil, err
	}

	// Best effort: a cache fault must never fail the load that produced
	// the records.
	if err := l.store.Write(types.CachePayload{
		SourcePath:        loc.Path,
		SourceMtimeMillis: loc.MtimeMillis,
		Records:           records,
	}); err != nil {
		l.log.Warn().Err(err).Msg("failed to persist catalog cache")
	}

	l.log.Info().
		Int("records", len(records)).
		Str("source", loc.Path).
		Bool("forced", force).
		Dur("duration", time.Since(start)).
		Msg("catalog extracted")

	return &Result{Records: records, SourcePath: loc.Path}, nil
}

// extract opens the database read-only for exactly one extraction; the
// deferred close releases the handle even when inference fails partway.
func (l *Loader) extract(ctx context.Context, loc types.CatalogLocation) ([]types.ResourceRecord, error) {
	db, err := catalog.Open(loc.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog at %s is unreadable: %w", loc.Path, err)
	}
	defer func() { _ = db.Close() }()

	schema, err := catalog.InferSchema(ctx, db)
	if err != nil {
		return nil, err
	}
	l.log.Debug().
		Str("table", schema.Table).
		Str("id", schema.IDColumn).
		Str("title", schema.TitleColumn).
		Msg("catalog schema inferred")

	return catalog.Extract(ctx, db, schema)
}
