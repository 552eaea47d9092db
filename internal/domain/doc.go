// Package domain holds promptcalc's core types, storage and client
// interfaces, and the sentinel errors shared across packages.
package domain
