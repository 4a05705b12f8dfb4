package locator

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholgate/shelfsearch/pkg/types"
)

// writeCatalog creates <base>/<account>/LibraryCatalog/catalog.db with the
// given mtime and returns its path.
func writeCatalog(t *testing.T, base, account string, mtime time.Time) string {
	t.Helper()
	dir := filepath.Join(base, account, "LibraryCatalog")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "catalog.db")
	require.NoError(t, os.WriteFile(path, []byte("not a real db"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestResolve_SingleCandidate(t *testing.T) {
	base := t.TempDir()
	mtime := time.Now().Add(-time.Hour).Truncate(time.Second)
	path := writeCatalog(t, base, "user123", mtime)

	loc, err := New(base, zerolog.Nop()).Resolve("")
	require.NoError(t, err)
	assert.Equal(t, path, loc.Path)
	assert.Equal(t, mtime.UnixMilli(), loc.MtimeMillis)
}

func TestResolve_NewestCandidateWins(t *testing.T) {
	base := t.TempDir()
	t1 := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	t2 := time.Now().Add(-1 * time.Hour).Truncate(time.Second)
	writeCatalog(t, base, "older-account", t1)
	newest := writeCatalog(t, base, "newer-account", t2)

	loc, err := New(base, zerolog.Nop()).Resolve("")
	require.NoError(t, err)
	assert.Equal(t, newest, loc.Path)
	assert.Equal(t, t2.UnixMilli(), loc.MtimeMillis)
}

func TestResolve_NoCandidates(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "emptyaccount"), 0o755))

	_, err := New(base, zerolog.Nop()).Resolve("")
	assert.ErrorIs(t, err, types.ErrCatalogNotFound)
}

func TestResolve_BaseDirMissing(t *testing.T) {
	base := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := New(base, zerolog.Nop()).Resolve("")
	require.ErrorIs(t, err, types.ErrCatalogNotFound)
	assert.Contains(t, err.Error(), "is the app installed")
}

func TestResolve_OverrideExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.db")
	require.NoError(t, os.WriteFile(path, []byte("db"), 0o644))

	loc, err := New(t.TempDir(), zerolog.Nop()).Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, loc.Path)
}

func TestResolve_OverrideMissingSkipsDiscovery(t *testing.T) {
	// A perfectly good catalog exists under the base dir, but an explicit
	// override that doesn't exist must fail without falling back to it.
	base := t.TempDir()
	writeCatalog(t, base, "user123", time.Now())

	_, err := New(base, zerolog.Nop()).Resolve(filepath.Join(base, "nope.db"))
	assert.ErrorIs(t, err, types.ErrCatalogNotFound)
}

func TestResolve_OverrideHomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "catalog.db"), []byte("db"), 0o644))

	loc, err := New(t.TempDir(), zerolog.Nop()).Resolve("~/catalog.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "catalog.db"), loc.Path)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/x/y.db", filepath.Join(home, "x", "y.db")},
		{"~", home},
		{"/abs/path.db", "/abs/path.db"},
		{"relative.db", "relative.db"},
		{"~user/x.db", "~user/x.db"},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
