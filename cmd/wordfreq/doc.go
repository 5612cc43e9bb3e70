// Package main hosts the wordfreq CLI entrypoint and command graph.
//
// Running wordfreq without a subcommand starts the interactive prompt loop.
// The count subcommand reports on a single file non-interactively, stopwords
// lists the active stop-word set, and config scaffolds or checks the TOML
// configuration. This package only wires configuration, logging, and the
// internal packages together; counting and reporting live under internal/.
package main
