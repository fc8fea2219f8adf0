package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"eduforum/internal/client/session"
	"eduforum/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// SQLiteStore is a session.Store backed by the local client database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

var _ session.Store = (*SQLiteStore)(nil)

func (s *SQLiteStore) Get(ctx context.Context) (string, *session.UserSnapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM session WHERE key IN (?, ?)`, keyToken, keyUser)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read session: %w", err)
	}
	defer rows.Close()

	var token string
	var userRaw []byte
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return "", nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		switch key {
		case keyToken:
			token = string(value)
		case keyUser:
			userRaw = value
		}
	}
	if err := rows.Err(); err != nil {
		return "", nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	if token == "" {
		return "", nil, nil
	}

	var user *session.UserSnapshot
	if len(userRaw) > 0 {
		user = &session.UserSnapshot{}
		if err := json.Unmarshal(userRaw, user); err != nil {
			return "", nil, fmt.Errorf("failed to decode user snapshot: %w", err)
		}
	}
	return token, user, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string, user *session.UserSnapshot) error {
	userRaw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, kv := range []struct {
			key   string
			value []byte
		}{
			{keyToken, []byte(token)},
			{keyUser, userRaw},
		} {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO session (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, kv.key, kv.value)
			if err != nil {
				return fmt.Errorf("failed to set session[%s]: %w", kv.key, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyUser)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
