// Package repository — ServerRepository interface.
//
// servers tablosundaki satırları bot süreci oluşturur; bu API sadece
// listeler, okur ve doğrulama ayarlarını günceller. Create/Delete yoktur.
package repository

import (
	"context"

	"github.com/akinalp/vynk/models"
)

// ServerRepository, sunucu veritabanı işlemleri için interface.
type ServerRepository interface {
	// ListInstalled, botun kurulu olduğu tüm sunucuların (id, name) listesi.
	ListInstalled(ctx context.Context) ([]models.ServerListItem, error)

	// GetByID, sunucu satırını döner. Yoksa pkg.ErrNotFound.
	GetByID(ctx context.Context, serverID string) (*models.Server, error)

	// UpdateConfig, üç doğrulama alanını birlikte üzerine yazar.
	// Satır yoksa hata dönmez — etkilenen satır sayısı kontrol edilmez.
	UpdateConfig(ctx context.Context, serverID string, cfg *models.ServerConfig) error
}
