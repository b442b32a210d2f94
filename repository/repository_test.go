package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akinalp/vynk/database"
	"github.com/stretchr/testify/require"
)

// newTestDB, geçici dizinde migration'ları uygulanmış gerçek bir SQLite açar.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "vynk.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedServer, bot sürecinin yaptığı gibi servers tablosuna satır ekler.
func seedServer(t *testing.T, db *database.DB, id, name string, roleID *string) {
	t.Helper()
	_, err := db.Conn.ExecContext(context.Background(),
		`INSERT INTO servers (id, name, owner_id, verified_role_id) VALUES (?, ?, ?, ?)`,
		id, name, "owner-"+id, roleID,
	)
	require.NoError(t, err)
}

func strPtr(s string) *string { return &s }
