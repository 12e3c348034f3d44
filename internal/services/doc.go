// Package services defines shared utilities consumed by the per-file pipeline
// and its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run correlation identifiers, the source path
//     and the pipeline step for logging.
//   - Structured error markers plus the Wrap helper that let the batch driver
//     tell a skipped file (no metadata, no credential) from a failed one.
//
// Use these helpers when wiring new pipeline steps so error handling and
// observability stay uniform across the batch.
package services
