// Package tmdb provides the minimal TMDB API client used to identify video
// files.
//
// It authenticates requests and exposes movie search only. A token-bucket
// limiter keeps parallel batches under TMDB's request ceiling. Options allow
// tests to supply custom HTTP clients without modifying production code.
package tmdb
