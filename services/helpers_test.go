package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/akinalp/vynk/database"
	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg/cache"
	"github.com/akinalp/vynk/pkg/discord"
	"github.com/akinalp/vynk/repository"
	"github.com/stretchr/testify/require"
)

// stubDiscord, discord.Client'ın test implementasyonu.
type stubDiscord struct {
	mu sync.Mutex

	token       string
	exchangeErr error
	user        *models.DiscordUser
	userErr     error
	guilds      []models.DiscordGuild
	guildsErr   error

	exchangeCalls int
	guildsToken   string
}

var _ discord.Client = (*stubDiscord)(nil)

func newStubDiscord() *stubDiscord {
	avatar := "abc"
	return &stubDiscord{
		token: "tok-1",
		user:  &models.DiscordUser{ID: "7", Username: "alice", Avatar: &avatar},
	}
}

func (s *stubDiscord) AuthCodeURL() string {
	return "https://discord.com/oauth2/authorize?client_id=cid&response_type=code&scope=identify+guilds"
}

func (s *stubDiscord) ExchangeCode(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchangeCalls++
	if s.exchangeErr != nil {
		return "", s.exchangeErr
	}
	return s.token, nil
}

func (s *stubDiscord) CurrentUser(_ context.Context, _ string) (*models.DiscordUser, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	return s.user, nil
}

func (s *stubDiscord) CurrentUserGuilds(_ context.Context, token string) ([]models.DiscordGuild, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guildsToken = token
	if s.guildsErr != nil {
		return nil, s.guildsErr
	}
	return s.guilds, nil
}

type testStore struct {
	db       *database.DB
	servers  repository.ServerRepository
	logs     repository.VerificationLogRepository
	sessions repository.SessionRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "vynk.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c := cache.New[string, *models.Session](time.Hour, time.Hour)
	t.Cleanup(c.Close)

	return &testStore{
		db:       db,
		servers:  repository.NewSQLiteServerRepo(db.Conn),
		logs:     repository.NewSQLiteVerificationLogRepo(db.Conn),
		sessions: repository.NewMemorySessionRepo(c),
	}
}

func (s *testStore) seedServer(t *testing.T, id, name string, roleID *string) {
	t.Helper()
	_, err := s.db.Conn.ExecContext(context.Background(),
		`INSERT INTO servers (id, name, owner_id, verified_role_id) VALUES (?, ?, ?, ?)`,
		id, name, "owner", roleID,
	)
	require.NoError(t, err)
}

func (s *testStore) countLogs(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.Conn.QueryRow(`SELECT COUNT(*) FROM verification_logs`).Scan(&n))
	return n
}

func strPtr(s string) *string { return &s }
