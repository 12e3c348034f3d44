// Package naming keeps generated file names unique within a run and safe for
// the filesystem.
//
// Counter assigns each file sharing a disambiguation key a distinct ordinal;
// Suffix turns the ordinal into the "-NN" token appended to the base name.
// SanitizeTitle reduces movie titles to dot-separated tokens.
package naming
