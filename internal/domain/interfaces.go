package domain

import "context"

// KeyStore owns the profile's symmetric encryption key.
type KeyStore interface {
	// GetOrCreate returns the persisted key, generating and persisting a
	// fresh one on first use. Idempotent once the key file exists.
	GetOrCreate() ([]byte, error)
}

// CredentialStore persists the single API key, encrypted at rest.
type CredentialStore interface {
	// Save seals plaintext under the profile key and replaces any prior
	// credential wholesale.
	Save(plaintext string) error

	// Load returns (credential, true, nil) when a usable credential exists.
	// A missing file and an undecryptable one are both (_, false, nil);
	// callers treat them identically and re-prompt.
	Load() (string, bool, error)

	// Delete removes the stored credential; a no-op when absent.
	Delete() error
}

// CalculationClient asks the remote model to evaluate arithmetic.
type CalculationClient interface {
	Compute(ctx context.Context, a, b float64, op Operator, credential string) (float64, error)

	// Validate confirms the credential works by sending a throwaway prompt.
	Validate(ctx context.Context, credential string) error
}

// HistoryStore records successfully completed calculations.
type HistoryStore interface {
	Append(ctx context.Context, e HistoryEntry) error
	List(ctx context.Context) ([]HistoryEntry, error)
	Clear(ctx context.Context) error
	Close() error
}
