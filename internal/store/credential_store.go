package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"

	"promptcalc/internal/domain"
)

const (
	credentialFile = "credential.enc"

	// The current supported version of the sealed blob format on disk.
	credentialFormatVersion = 1
)

// Returned when the ciphertext has been modified, corrupted, or sealed
// under a different key. Never crosses the package boundary: Load collapses
// it into "absent".
var errUndecryptable = errors.New("credential undecryptable or corrupted")

// sealedBlob is the on-disk JSON structure holding the nonce and ciphertext.
type sealedBlob struct {
	V      int    `json:"v"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// CredentialStore persists one API key sealed under the profile key.
// It holds a reference to the KeyStore but does not own the key file.
type CredentialStore struct {
	dir  string
	keys domain.KeyStore
	log  *slog.Logger
	mu   sync.Mutex
}

func NewCredentialStore(dir string, keys domain.KeyStore, log *slog.Logger) *CredentialStore {
	if log == nil {
		log = slog.Default()
	}
	return &CredentialStore{dir: dir, keys: keys, log: log}
}

var _ domain.CredentialStore = (*CredentialStore)(nil)

// Save seals the credential and replaces the stored blob wholesale.
func (s *CredentialStore) Save(plaintext string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.keys.GetOrCreate()
	if err != nil {
		return err
	}
	blob, err := seal(key, []byte(plaintext))
	if err != nil {
		return err
	}
	if err := writeFile(s.path(), blob, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}

// Load returns the stored credential. Absence and any decryption failure
// look identical to the caller; the distinguishable cause is only logged.
func (s *CredentialStore) Load() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := readFile(s.path())
	if err != nil {
		return "", false, fmt.Errorf("read credential file: %w", err)
	}
	if blob == nil {
		return "", false, nil
	}

	key, err := s.keys.GetOrCreate()
	if err != nil {
		return "", false, err
	}
	plaintext, err := open(key, blob)
	if err != nil {
		s.log.Warn("stored credential unreadable, treating as absent", "error", err)
		return "", false, nil
	}
	return string(plaintext), true, nil
}

// Delete removes the credential file; a no-op when absent.
func (s *CredentialStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}

func (s *CredentialStore) path() string { return filepath.Join(s.dir, credentialFile) }

// seal encrypts raw under key with a random nonce and encodes the blob.
func seal(key, raw []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, nil)
	return json.Marshal(sealedBlob{V: credentialFormatVersion, Nonce: nonce, Cipher: ct})
}

// open decodes and decrypts a sealed blob. All failure modes collapse into
// errUndecryptable so Load can treat them uniformly.
func open(key, blob []byte) ([]byte, error) {
	var b sealedBlob
	if err := json.Unmarshal(blob, &b); err != nil {
		return nil, errUndecryptable
	}
	if b.V > credentialFormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errUndecryptable, b.V)
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errUndecryptable
	}
	if len(b.Nonce) != aead.NonceSize() {
		return nil, errUndecryptable
	}
	pt, err := aead.Open(nil, b.Nonce, b.Cipher, nil)
	if err != nil {
		return nil, errUndecryptable
	}
	return pt, nil
}
