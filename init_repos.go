// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// SQLite repository'leri aynı *sql.DB pool'unu paylaşır; oturumlar
// in-memory TTL cache'te tutulur.
package main

import (
	"database/sql"
	"time"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg/cache"
	"github.com/akinalp/vynk/repository"
)

// sessionCleanupInterval, süresi dolmuş oturumların map'ten silinme aralığı.
const sessionCleanupInterval = 10 * time.Minute

// Repositories, tüm repository instance'larını tutan container struct.
type Repositories struct {
	Server          repository.ServerRepository
	VerificationLog repository.VerificationLogRepository
	Session         repository.SessionRepository

	sessionCache *repository.SessionCache
}

// initRepositories, tüm repository'leri oluşturur.
func initRepositories(db *sql.DB, sessionTTL time.Duration) *Repositories {
	sessionCache := cache.New[string, *models.Session](sessionTTL, sessionCleanupInterval)

	return &Repositories{
		Server:          repository.NewSQLiteServerRepo(db),
		VerificationLog: repository.NewSQLiteVerificationLogRepo(db),
		Session:         repository.NewMemorySessionRepo(sessionCache),
		sessionCache:    sessionCache,
	}
}

// Close, arka plan goroutine'lerini durdurur.
func (r *Repositories) Close() {
	r.sessionCache.Close()
}
