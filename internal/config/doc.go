// Package config loads, normalizes, and validates Hoarder configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the TMDB_API_KEY environment fallback. SaveAPIKey
// persists a credential entered at the prompt back into the same file.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
