// Package sqlite implements a credstore.Store backed by a small SQLite
// database. Values are sealed with cryptox before they hit the database so
// the file carries no plaintext credentials.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rangira/bloodlink/pkg/cryptox"
	_ "modernc.org/sqlite"
)

const (
	keyToken   = "token"
	keyProfile = "profile"
)

type Store struct {
	db *sql.DB
}

// NewStore opens the credential database at dsn and applies pending
// migrations.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate credential store: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Token() (string, bool) {
	value, ok := s.get(keyToken)
	if !ok {
		return "", false
	}
	return string(value), true
}

func (s *Store) SetToken(token string) error {
	return s.set(keyToken, []byte(token))
}

func (s *Store) Profile() ([]byte, bool) {
	return s.get(keyProfile)
}

func (s *Store) SetProfile(profile []byte) error {
	return s.set(keyProfile, profile)
}

// Clear deletes both rows in a single statement.
func (s *Store) Clear() error {
	_, err := s.db.ExecContext(context.Background(), `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

// get reads and unseals one entry. Any failure, including a value sealed
// with a different key, reads as absent: the store never surfaces errors on
// the read path.
func (s *Store) get(key string) ([]byte, bool) {
	var sealed []byte
	err := s.db.QueryRowContext(
		context.Background(),
		`SELECT value FROM credentials WHERE key = ?`,
		key,
	).Scan(&sealed)
	if err != nil {
		return nil, false
	}

	plain, err := cryptox.Open(sealed)
	if err != nil {
		return nil, false
	}
	if len(plain) == 0 {
		return nil, false
	}

	return plain, true
}

func (s *Store) set(key string, value []byte) error {
	sealed, err := cryptox.Seal(value)
	if err != nil {
		return fmt.Errorf("failed to seal credential: %w", err)
	}

	_, err = s.db.ExecContext(
		context.Background(),
		`INSERT INTO credentials (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, sealed,
	)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}
