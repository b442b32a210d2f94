package repository

import (
	"context"

	"github.com/akinalp/vynk/models"
)

// SessionRepository, OAuth sonrası oluşturulan sunucu tarafı oturumlar.
// Süresi dolan oturum GetByID'de pkg.ErrNotFound döner.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	DeleteByID(ctx context.Context, id string) error
}
