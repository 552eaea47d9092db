package store

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"

	"promptcalc/internal/domain"
)

const keyFile = "calculator.key"

// KeyStore owns the profile's symmetric key on disk. The key is raw bytes
// at a fixed path, created once and never rotated; deleting the file
// externally orphans any previously sealed credential.
type KeyStore struct {
	dir string
	mu  sync.Mutex
}

func NewKeyStore(dir string) *KeyStore { return &KeyStore{dir: dir} }

var _ domain.KeyStore = (*KeyStore)(nil)

// GetOrCreate returns the key file's bytes, generating a fresh random key
// of chacha20poly1305.KeySize on first use.
func (s *KeyStore) GetOrCreate() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, keyFile)
	b, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	if b != nil {
		// Whatever is on disk is the profile's key. A wrong-length file
		// surfaces later as an AEAD construction failure.
		return b, nil
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := writeFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return key, nil
}
