package store_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"promptcalc/internal/domain"
	"promptcalc/internal/store"
)

func TestKeyStore_CreateIsIdempotent(t *testing.T) {
	home := t.TempDir()

	var ks domain.KeyStore = store.NewKeyStore(home)

	first, err := ks.GetOrCreate()
	if err != nil {
		t.Fatalf("create key: %v", err)
	}
	if len(first) != 32 {
		t.Fatalf("key length = %d, want 32", len(first))
	}

	second, err := ks.GetOrCreate()
	if err != nil {
		t.Fatalf("reload key: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("key changed between calls")
	}
}

func TestKeyStore_ReturnsExistingBytes(t *testing.T) {
	home := t.TempDir()

	want := bytes.Repeat([]byte{7}, 32)
	if err := os.WriteFile(filepath.Join(home, "calculator.key"), want, 0o600); err != nil {
		t.Fatalf("seed key file: %v", err)
	}

	got, err := store.NewKeyStore(home).GetOrCreate()
	if err != nil {
		t.Fatalf("load key: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("existing key bytes were not returned unchanged")
	}
}
