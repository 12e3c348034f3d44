// Package main hosts the Hoarder CLI entrypoint and command graph.
//
// The root command renames or organizes the files named on the command line;
// the config subcommands scaffold, check and update the configuration file.
// Per-file results go to stdout and structured logs to stderr so the two can
// be redirected independently.
package main
