// Package cryptox seals locally cached credentials (bearer token and profile
// blob) so they are not stored in plaintext on disk. The sealing key is
// machine-local; this protects against casual file reads, not against an
// attacker with the key file.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	sealKeyOnce sync.Once
	sealKey     []byte
	sealKeyErr  error
	sealKeyPath string // Can be set via SetKeyPath before first use
)

// ErrSealCorrupt reports ciphertext that is too short or fails authentication.
var ErrSealCorrupt = errors.New("cryptox: sealed data corrupt")

// SetKeyPath configures where to load the sealing key material from.
// Must be called before the first Seal/Open operation.
// If not set, the key is read from the BLOODLINK_SEAL_KEY environment
// variable, or generated ephemerally as a development fallback.
func SetKeyPath(path string) {
	sealKeyPath = path
}

// loadKey derives a 32-byte key from the configured key material using
// SHA-256, matching chacha20poly1305's key size.
func loadKey() ([]byte, error) {
	var material []byte

	if sealKeyPath != "" {
		data, err := loadOrGenerateKeyFile(sealKeyPath)
		if err != nil {
			return nil, err
		}
		material = data
	} else if envKey := os.Getenv("BLOODLINK_SEAL_KEY"); envKey != "" {
		material = []byte(envKey)
	} else {
		// Development fallback: ephemeral key. Cached credentials will not
		// survive a restart, forcing a fresh login.
		material = make([]byte, chacha20poly1305.KeySize)
		if _, err := rand.Read(material); err != nil {
			return nil, fmt.Errorf("failed to generate ephemeral seal key: %w", err)
		}
	}

	hash := sha256.Sum256(material)
	return hash[:], nil
}

// loadOrGenerateKeyFile reads the key file, creating it with fresh random
// material on first run.
func loadOrGenerateKeyFile(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create seal key directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		material := make([]byte, chacha20poly1305.KeySize)
		if _, err := rand.Read(material); err != nil {
			return nil, fmt.Errorf("failed to generate seal key: %w", err)
		}
		if err := os.WriteFile(path, material, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write seal key file: %w", err)
		}
		return material, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seal key file: %w", err)
	}
	return data, nil
}

func getKey() ([]byte, error) {
	sealKeyOnce.Do(func() {
		sealKey, sealKeyErr = loadKey()
	})
	return sealKey, sealKeyErr
}

// Seal encrypts plaintext with chacha20poly1305 using the configured key.
// The random nonce is prepended to the returned ciphertext.
func Seal(plaintext []byte) ([]byte, error) {
	key, err := getKey()
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal. Tampered or truncated input yields
// ErrSealCorrupt so callers can treat it as a fail-closed condition.
func Open(sealed []byte) ([]byte, error) {
	key, err := getKey()
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	if len(sealed) < aead.NonceSize() {
		return nil, ErrSealCorrupt
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrSealCorrupt
	}

	return plaintext, nil
}
