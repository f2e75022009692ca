// Package file implements a credstore.Store backed by a single sealed JSON
// document on disk.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rangira/bloodlink/pkg/cryptox"
)

type document struct {
	Token   string          `json:"token,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

// Store holds the credential document in memory and mirrors every mutation
// to disk. The file is sealed with cryptox and written atomically via a
// temp-file rename, so a crash mid-write leaves the previous state intact.
type Store struct {
	path string

	mu  sync.Mutex
	doc document
}

// New opens (or initializes) the credential file at path. An unreadable or
// unsealable file is treated as empty rather than an error: stored
// credentials are a cache, and losing them only forces a fresh login.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}

	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	plain, err := cryptox.Open(raw)
	if err != nil {
		// Sealed with another key or corrupted. Start empty.
		return s, nil
	}
	if err := json.Unmarshal(plain, &s.doc); err != nil {
		return s, nil
	}

	return s, nil
}

func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.Token, s.doc.Token != ""
}

func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Token = token
	return s.save()
}

func (s *Store) Profile() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.doc.Profile) == 0 {
		return nil, false
	}

	out := make([]byte, len(s.doc.Profile))
	copy(out, s.doc.Profile)
	return out, true
}

func (s *Store) SetProfile(profile []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Profile = append([]byte(nil), profile...)
	return s.save()
}

// Clear wipes both entries with a single file rewrite.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = document{}
	return s.save()
}

func (s *Store) Close() error { return nil }

// save seals and writes the whole document. Callers must hold s.mu.
func (s *Store) save() error {
	plain, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	sealed, err := cryptox.Seal(plain)
	if err != nil {
		return fmt.Errorf("failed to seal credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credential file: %w", err)
	}

	return nil
}
