package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"

	"github.com/mholgate/shelfsearch/pkg/types"
)

// Store reads and writes the persisted extraction at a fixed location.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Read returns the persisted payload, or ok=false for a cold cache. A
// missing file is a silent miss; a malformed or unreadable one is logged
// at warn and still reported as a miss, never as an error.
func (s *Store) Read() (types.CachePayload, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("cache unreadable, treating as cold")
		}
		return types.CachePayload{}, false
	}

	var payload types.CachePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("cache malformed, treating as cold")
		return types.CachePayload{}, false
	}
	if payload.SourcePath == "" || payload.SourceMtimeMillis <= 0 || payload.Records == nil {
		s.log.Warn().Str("path", s.path).Msg("cache payload has unexpected shape, treating as cold")
		return types.CachePayload{}, false
	}

	return payload, true
}

// Write persists the payload atomically, creating the cache directory if
// needed. Callers treat a returned error as log-and-continue; a failed
// write never fails the load that produced the payload.
func (s *Store) Write(payload types.CachePayload) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode cache payload: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Fresh reports whether the payload still describes the given location.
// mtime equality is best-effort: a content change that preserves mtime is
// not detected, and the refresh command is the escape hatch.
func Fresh(payload types.CachePayload, loc types.CatalogLocation) bool {
	return payload.SourcePath == loc.Path && payload.SourceMtimeMillis == loc.MtimeMillis
}
