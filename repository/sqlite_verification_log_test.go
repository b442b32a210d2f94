package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akinalp/vynk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationLogRepo_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteVerificationLogRepo(db.Conn)
	ctx := context.Background()

	seedServer(t, db, "100", "Alpha", strPtr("999"))
	seedServer(t, db, "200", "Beta", strPtr("888"))

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	entries := []*models.VerificationLog{
		{ServerID: "100", UserID: "a", UserIP: strPtr("1.1.1.1"), VerifiedAt: base},
		{ServerID: "100", UserID: "b", UserIP: nil, VerifiedAt: base.Add(2 * time.Second)},
		{ServerID: "100", UserID: "c", UserIP: strPtr("3.3.3.3"), VerifiedAt: base.Add(time.Second)},
		{ServerID: "200", UserID: "z", VerifiedAt: base.Add(time.Hour)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
		assert.NotZero(t, e.ID)
	}

	logs, err := repo.ListByServer(ctx, "100", models.VerificationLogLimit)
	require.NoError(t, err)
	require.Len(t, logs, 3)

	assert.Equal(t, "b", logs[0].UserID)
	assert.Nil(t, logs[0].UserIP)
	assert.Equal(t, "c", logs[1].UserID)
	assert.Equal(t, "a", logs[2].UserID)
	assert.True(t, logs[2].VerifiedAt.Equal(base))
	assert.Equal(t, "1.1.1.1", *logs[2].UserIP)
}

func TestVerificationLogRepo_SameInstantOrderedByIDDesc(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteVerificationLogRepo(db.Conn)
	ctx := context.Background()

	seedServer(t, db, "100", "Alpha", strPtr("999"))

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, user := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.VerificationLog{ServerID: "100", UserID: user, VerifiedAt: at}))
	}

	logs, err := repo.ListByServer(ctx, "100", models.VerificationLogLimit)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{logs[0].UserID, logs[1].UserID, logs[2].UserID})
}

func TestVerificationLogRepo_Limit(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteVerificationLogRepo(db.Conn)
	ctx := context.Background()

	seedServer(t, db, "100", "Alpha", strPtr("999"))

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < models.VerificationLogLimit+5; i++ {
		require.NoError(t, repo.Create(ctx, &models.VerificationLog{
			ServerID:   "100",
			UserID:     "u",
			VerifiedAt: base.Add(time.Duration(i) * time.Millisecond),
		}))
	}

	logs, err := repo.ListByServer(ctx, "100", models.VerificationLogLimit)
	require.NoError(t, err)
	require.Len(t, logs, models.VerificationLogLimit)

	// En eski 5 kayıt dışarıda kalmalı.
	assert.True(t, logs[len(logs)-1].VerifiedAt.Equal(base.Add(5*time.Millisecond)))
}

func TestVerificationLogRepo_EmptyServer(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteVerificationLogRepo(db.Conn)

	logs, err := repo.ListByServer(context.Background(), "unknown", models.VerificationLogLimit)
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestVerificationLogRepo_DefaultsVerifiedAt(t *testing.T) {
	db := newTestDB(t)
	repo := &sqliteVerificationLogRepo{
		db:  db.Conn,
		now: func() time.Time { return time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC) },
	}

	seedServer(t, db, "100", "Alpha", strPtr("999"))

	entry := &models.VerificationLog{ServerID: "100", UserID: "7"}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.Equal(t, time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC), entry.VerifiedAt)
}

func TestVerificationLogRepo_DriverErrorsPropagate(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewSQLiteVerificationLogRepo(conn)
	ctx := context.Background()
	boom := errors.New("database is locked")

	mock.ExpectQuery(`INSERT INTO verification_logs`).WillReturnError(boom)
	err = repo.Create(ctx, &models.VerificationLog{ServerID: "100", UserID: "7"})
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(`SELECT id, server_id, user_id, user_ip, verified_at`).
		WithArgs("100", models.VerificationLogLimit).
		WillReturnError(boom)
	_, err = repo.ListByServer(ctx, "100", models.VerificationLogLimit)
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}
