package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerRepo_ListInstalled(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteServerRepo(db.Conn)
	ctx := context.Background()

	servers, err := repo.ListInstalled(ctx)
	require.NoError(t, err)
	assert.Empty(t, servers)
	assert.NotNil(t, servers)

	seedServer(t, db, "100", "Alpha", nil)
	seedServer(t, db, "300", "Gamma", strPtr("999"))

	servers, err = repo.ListInstalled(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.ServerListItem{
		{ID: "100", Name: "Alpha"},
		{ID: "300", Name: "Gamma"},
	}, servers)
}

func TestServerRepo_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteServerRepo(db.Conn)
	ctx := context.Background()

	seedServer(t, db, "100", "Alpha", strPtr("999"))

	s, err := repo.GetByID(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", s.Name)
	assert.Equal(t, "owner-100", s.OwnerID)
	require.NotNil(t, s.VerifiedRoleID)
	assert.Equal(t, "999", *s.VerifiedRoleID)
	assert.Nil(t, s.LogChannelID)
	assert.Nil(t, s.WelcomeMessage)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestServerRepo_UpdateConfig_FullOverwrite(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteServerRepo(db.Conn)
	ctx := context.Background()

	seedServer(t, db, "100", "Alpha", nil)

	require.NoError(t, repo.UpdateConfig(ctx, "100", &models.ServerConfig{
		VerifiedRoleID: strPtr("999"),
		LogChannelID:   strPtr("555"),
		WelcomeMessage: strPtr("hi"),
	}))

	s, err := repo.GetByID(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "999", *s.VerifiedRoleID)
	assert.Equal(t, "555", *s.LogChannelID)
	assert.Equal(t, "hi", *s.WelcomeMessage)

	// Sadece rol gönderildi: diğer iki alan NULL olmalı.
	require.NoError(t, repo.UpdateConfig(ctx, "100", &models.ServerConfig{
		VerifiedRoleID: strPtr("1000"),
	}))

	s, err = repo.GetByID(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "1000", *s.VerifiedRoleID)
	assert.Nil(t, s.LogChannelID)
	assert.Nil(t, s.WelcomeMessage)
}

func TestServerRepo_UpdateConfig_UnknownServerIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteServerRepo(db.Conn)
	ctx := context.Background()

	err := repo.UpdateConfig(ctx, "ghost", &models.ServerConfig{VerifiedRoleID: strPtr("1")})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestServerRepo_DriverErrorsPropagate(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewSQLiteServerRepo(conn)
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM servers`)).WillReturnError(boom)
	_, err = repo.ListInstalled(ctx)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(`SELECT id, name, owner_id`).WithArgs("100").WillReturnError(boom)
	_, err = repo.GetByID(ctx, "100")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, pkg.ErrNotFound)

	mock.ExpectExec(`UPDATE servers SET verified_role_id`).WillReturnError(boom)
	err = repo.UpdateConfig(ctx, "100", &models.ServerConfig{})
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServerRepo_ScanErrorPropagates(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	repo := NewSQLiteServerRepo(conn)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow("100", "Alpha").
		RowError(0, errors.New("row corrupted"))
	mock.ExpectQuery(`SELECT id, name FROM servers`).WillReturnRows(rows)

	_, err = repo.ListInstalled(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
