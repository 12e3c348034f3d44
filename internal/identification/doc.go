// Package identification turns video file names into canonical movie titles.
//
// File names are cleaned of release noise into a search query, the query is
// sent to a Lookup (TMDB in production, a fake in tests), and the first
// candidate becomes the TitleRecord used for naming. Absence of a usable
// answer is an ordinary outcome reported through services error markers.
package identification
