package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mholgate/shelfsearch/pkg/types"
)

// catalogRelPath is the catalog's location inside one account folder.
const catalogRelPath = "LibraryCatalog/catalog.db"

// Locator resolves the catalog database location.
type Locator struct {
	baseDir string
	log     zerolog.Logger
}

// New creates a Locator. An empty baseDir selects the platform default.
func New(baseDir string, log zerolog.Logger) *Locator {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	return &Locator{baseDir: baseDir, log: log}
}

// DefaultBaseDir returns the Atheneum data directory for this platform.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "Atheneum", "Data")
	}
	return filepath.Join(home, ".local", "share", "atheneum", "data")
}

// Resolve returns the catalog location, preferring the override path when
// given. An override that does not exist fails immediately; auto-discovery
// is never attempted behind an explicit override.
func (l *Locator) Resolve(overridePath string) (types.CatalogLocation, error) {
	if overridePath != "" {
		return l.resolveOverride(overridePath)
	}
	return l.discover()
}

func (l *Locator) resolveOverride(path string) (types.CatalogLocation, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return types.CatalogLocation{}, fmt.Errorf("failed to expand catalog path %q: %w", path, err)
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if os.IsPermission(err) {
			return types.CatalogLocation{}, fmt.Errorf("%w: cannot read configured catalog at %s", types.ErrAccessDenied, expanded)
		}
		return types.CatalogLocation{}, fmt.Errorf("%w: configured catalog path %s does not exist", types.ErrCatalogNotFound, expanded)
	}
	if info.IsDir() {
		return types.CatalogLocation{}, fmt.Errorf("%w: configured catalog path %s is a directory", types.ErrCatalogNotFound, expanded)
	}

	return types.CatalogLocation{Path: expanded, MtimeMillis: info.ModTime().UnixMilli()}, nil
}

// discover scans one level of account folders under the base directory and
// collects every catalog file that exists.
func (l *Locator) discover() (types.CatalogLocation, error) {
	entries, err := os.ReadDir(l.baseDir)
	if err != nil {
		if os.IsPermission(err) {
			return types.CatalogLocation{}, fmt.Errorf("%w: cannot read %s", types.ErrAccessDenied, l.baseDir)
		}
		return types.CatalogLocation{}, fmt.Errorf("%w: Atheneum data directory %s does not exist; is the app installed?", types.ErrCatalogNotFound, l.baseDir)
	}

	var candidates []types.CatalogLocation
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(l.baseDir, entry.Name(), filepath.FromSlash(catalogRelPath))
		info, err := os.Stat(candidate)
		if err != nil {
			if os.IsPermission(err) {
				return types.CatalogLocation{}, fmt.Errorf("%w: cannot read %s", types.ErrAccessDenied, candidate)
			}
			continue
		}
		if info.IsDir() {
			continue
		}
		candidates = append(candidates, types.CatalogLocation{
			Path:        candidate,
			MtimeMillis: info.ModTime().UnixMilli(),
		})
	}

	if len(candidates) == 0 {
		return types.CatalogLocation{}, fmt.Errorf("%w: no library catalog under %s", types.ErrCatalogNotFound, l.baseDir)
	}

	// Newest catalog wins; ties keep directory order.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.MtimeMillis > best.MtimeMillis {
			best = c
		}
	}

	if len(candidates) > 1 {
		l.log.Debug().
			Int("candidates", len(candidates)).
			Str("selected", best.Path).
			Msg("multiple catalogs found, using newest")
	}

	return best, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
