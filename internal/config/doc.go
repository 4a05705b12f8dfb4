// Package config loads shelfsearch configuration from the environment and
// an optional YAML config file.
//
// Every key can be set as SHELFSEARCH_<KEY> in the environment or as <key>
// in ~/.config/shelfsearch/config.yaml. Environment values win. A missing
// config file is not an error; a malformed one is.
//
// # Keys
//
//   - catalog_path: explicit catalog database path, disables discovery
//   - base_dir: base data directory scanned during discovery
//   - cache_dir: directory holding the extraction cache file
//   - fuzzy_threshold: match admission threshold in [0, 1], lower is
//     stricter; unset, non-numeric, or out-of-range values fall back to
//     the default
package config
