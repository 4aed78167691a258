// Package config loads and validates the reconciliation run configuration.
//
// Configuration is layered: a YAML file (config.yaml next to the executable,
// or FINREC_CONFIG_FILE) provides deployment defaults, and FINREC_* environment
// variables override it. The per-source column mappings that bind logical
// fields to physical CSV column names live here as data, not code; they are
// fixed at deployment time and validated on load.
package config
