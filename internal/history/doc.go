// Package history persists completed calculations to a per-profile SQLite
// database so past results survive between runs.
package history
