// Package app loads configuration and builds the dependency graph shared by
// the CLI subcommands.
package app
