package repository

import (
	"context"

	"github.com/akinalp/vynk/models"
)

// VerificationLogRepository, append-only doğrulama kayıtları.
// Update/Delete bilinçli olarak yoktur.
type VerificationLogRepository interface {
	// Create, yeni kayıt ekler ve log.ID'yi doldurur.
	// log.VerifiedAt sıfırsa şu anki UTC zaman yazılır.
	Create(ctx context.Context, log *models.VerificationLog) error

	// ListByServer, sunucunun en yeni limit kaydını verified_at azalan sırada döner.
	ListByServer(ctx context.Context, serverID string, limit int) ([]models.VerificationLog, error)
}
