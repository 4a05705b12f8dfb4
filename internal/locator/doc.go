// Package locator finds the Atheneum library-catalog database on disk.
//
// Without an explicit override, the locator scans the app's base data
// directory for account folders and probes the known catalog path inside
// each. When several accounts or app versions coexist, the most recently
// modified catalog wins, so no configuration is needed in the common case.
//
// # Basic Usage
//
//	loc := locator.New("", log) // platform default base directory
//
//	found, err := loc.Resolve(cfg.CatalogPath)
//	if err != nil {
//	    return err // wraps ErrCatalogNotFound or ErrAccessDenied
//	}
//	fmt.Println(found.Path)
//
// # Resolution Rules
//
// An explicit override path (after "~/" expansion) must exist: a missing
// override fails with ErrCatalogNotFound immediately, auto-discovery is
// never attempted behind it. Discovery reads one level of account folders
// under the base directory and probes LibraryCatalog/catalog.db in each;
// zero hits is ErrCatalogNotFound, multiple hits select the newest mtime
// with ties keeping directory order.
package locator
