package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ispolnov/spendcli/internal/dbx"
)

// tokenKey is the single row the session table ever holds.
const tokenKey = "access_token"

// SQLiteStore keeps the credential token in the client's local SQLite
// database so a login survives process restarts.
type SQLiteStore struct {
	db dbx.DBTX
}

func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, tokenKey, token)
	if err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Read(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, tokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) IsAuthenticated(ctx context.Context) bool {
	token, err := s.Read(ctx)
	return err == nil && token != ""
}
