// Package batch expands command-line inputs into files and runs each file
// through classification, metadata extraction, planning and the move on a
// bounded worker pool, reporting exactly one Result per file.
package batch
