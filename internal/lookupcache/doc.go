// Package lookupcache remembers TMDB answers in a small SQLite database so
// reruns over the same files do not repeat network searches.
//
// Only the first candidate of a successful search is stored, keyed by the
// case-folded query. Entries expire after the configured TTL.
package lookupcache
