// Package repository — SessionRepository'nin in-memory implementasyonu.
//
// Oturumlar kalıcı değildir: süreç yeniden başlarsa herkes tekrar login olur.
// Depolama pkg/cache.TTLCache; her oturum kendi ExpiresAt'ine göre düşer.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/pkg/cache"
)

// ErrSessionExpired, ExpiresAt'i geçmiş bir oturum kaydedilmeye çalışıldığında döner.
var ErrSessionExpired = errors.New("session already expired")

// SessionCache, oturum store'unun alttaki cache tipi.
type SessionCache = cache.TTLCache[string, *models.Session]

type memorySessionRepo struct {
	cache *SessionCache
	now   func() time.Time
}

// NewMemorySessionRepo, constructor. Cache'in yaşam döngüsü (Close) çağırana aittir.
func NewMemorySessionRepo(c *SessionCache) SessionRepository {
	return &memorySessionRepo{cache: c, now: time.Now}
}

func (r *memorySessionRepo) Create(_ context.Context, session *models.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return ErrSessionExpired
	}

	r.cache.SetWithTTL(session.ID, session, ttl)
	return nil
}

func (r *memorySessionRepo) GetByID(_ context.Context, id string) (*models.Session, error) {
	session, ok := r.cache.Get(id)
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return session, nil
}

func (r *memorySessionRepo) DeleteByID(_ context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}
