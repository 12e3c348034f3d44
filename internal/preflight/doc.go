// Package preflight provides readiness checks for TMDB and the filesystem
// locations Hoarder writes to.
//
// The CLI "config validate --check" command runs them and prints one row per
// check. Each check is gated by its config toggle; disabled features are
// skipped.
package preflight
