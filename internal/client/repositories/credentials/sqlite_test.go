package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"eduforum/internal/client/session"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := OpenDatabase(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func countSessionRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	return n
}

func TestSQLiteStore_EmptyByDefault(t *testing.T) {
	s := setupStore(t)

	token, user, err := s.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestSQLiteStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	u := &session.UserSnapshot{ID: "u1", Username: "alice", Email: "alice@example.org", Role: "teacher"}
	require.NoError(t, s.Set(ctx, "tok-1", u))

	token, got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.NotNil(t, got)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "teacher", got.Role)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Set(ctx, "tok-1", &session.UserSnapshot{ID: "u1", Username: "alice"}))
	require.NoError(t, s.Set(ctx, "tok-2", &session.UserSnapshot{ID: "u1", Username: "alice2"}))

	token, got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
	require.Equal(t, "alice2", got.Username)
}

func TestSQLiteStore_ClearRemovesBothKeys(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Set(ctx, "tok-1", &session.UserSnapshot{ID: "u1", Username: "alice"}))
	require.NoError(t, s.Clear(ctx))

	token, user, err := s.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
	require.Zero(t, countSessionRows(t, s.db), "no partial state may remain after clear")
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := "file:reopen_test?mode=memory&cache=shared"

	db, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Set(ctx, "tok-1", &session.UserSnapshot{ID: "u1", Username: "alice"}))

	// A second handle on the same database sees the persisted credential.
	db2, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close(); _ = db.Close() })

	token, user, err := NewSQLiteStore(db2).Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.NotNil(t, user)
	require.Equal(t, "alice", user.Username)
}
