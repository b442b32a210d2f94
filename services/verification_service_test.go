package services

import (
	"context"
	"testing"
	"time"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_Success(t *testing.T) {
	store := newTestStore(t)
	store.seedServer(t, "100", "Alpha", strPtr("999"))
	svc := NewVerificationService(store.servers, store.logs, metrics.New())
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	res, err := svc.Verify(ctx, "100", "7", "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, &models.VerifyResult{Message: "Verification successful", RoleID: "999"}, res)

	logs, err := svc.ListLogs(ctx, "100")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "7", logs[0].UserID)
	require.NotNil(t, logs[0].UserIP)
	assert.Equal(t, "1.2.3.4", *logs[0].UserIP)
	assert.True(t, logs[0].VerifiedAt.After(before))
}

func TestVerify_EmptyIPStoredAsNull(t *testing.T) {
	store := newTestStore(t)
	store.seedServer(t, "100", "Alpha", strPtr("999"))
	svc := NewVerificationService(store.servers, store.logs, nil)
	ctx := context.Background()

	_, err := svc.Verify(ctx, "100", "7", "")
	require.NoError(t, err)

	logs, err := svc.ListLogs(ctx, "100")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Nil(t, logs[0].UserIP)
}

func TestVerify_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		serverID string
		userID   string
		wantErr  error
	}{
		{"missing user id", "100", "", pkg.ErrMissingUserID},
		{"unknown server", "nope", "7", pkg.ErrServerNotConfigured},
		{"role unset", "200", "7", pkg.ErrServerNotConfigured},
		{"role empty string", "300", "7", pkg.ErrServerNotConfigured},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			store.seedServer(t, "100", "Alpha", strPtr("999"))
			store.seedServer(t, "200", "Beta", nil)
			store.seedServer(t, "300", "Gamma", strPtr(""))
			svc := NewVerificationService(store.servers, store.logs, nil)

			res, err := svc.Verify(context.Background(), tc.serverID, tc.userID, "1.2.3.4")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, pkg.ErrBadRequest)

			// Reddedilen doğrulama kayıt bırakmaz.
			assert.Zero(t, store.countLogs(t))
		})
	}
}

func TestListLogs_NewestFirstAndCapped(t *testing.T) {
	store := newTestStore(t)
	store.seedServer(t, "100", "Alpha", strPtr("999"))
	svc := NewVerificationService(store.servers, store.logs, nil)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < models.VerificationLogLimit+1; i++ {
		require.NoError(t, store.logs.Create(ctx, &models.VerificationLog{
			ServerID:   "100",
			UserID:     "u",
			VerifiedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	logs, err := svc.ListLogs(ctx, "100")
	require.NoError(t, err)
	require.Len(t, logs, models.VerificationLogLimit)
	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].VerifiedAt.After(logs[i-1].VerifiedAt))
	}

	empty, err := svc.ListLogs(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
