// Package store provides file-based persistence for promptcalc's secrets.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking, and writes go
// through a temp-file-then-rename path. Stored files live under the user's
// configured profile directory.
//
// The package includes:
//   - The per-profile symmetric key (KeyStore)
//   - The sealed API credential (CredentialStore)
package store
