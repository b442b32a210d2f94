package services

import (
	"context"
	"errors"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/repository"
)

// ServerConfigService, sunucu başına doğrulama ayarlarını okur/yazar.
//
// Çağıranın o sunucuda yönetici olup olmadığı burada kontrol edilmez;
// handler katmanı sadece geçerli bir oturum ister.
type ServerConfigService interface {
	GetConfig(ctx context.Context, serverID string) (*models.ServerConfig, error)

	// UpdateConfig tam üzerine yazmadır. Bilinmeyen serverID için de başarılı döner.
	UpdateConfig(ctx context.Context, serverID string, cfg *models.ServerConfig) error
}

type serverConfigService struct {
	serverRepo repository.ServerRepository
}

// NewServerConfigService, constructor.
func NewServerConfigService(serverRepo repository.ServerRepository) ServerConfigService {
	return &serverConfigService{serverRepo: serverRepo}
}

func (s *serverConfigService) GetConfig(ctx context.Context, serverID string) (*models.ServerConfig, error) {
	server, err := s.serverRepo.GetByID(ctx, serverID)
	if errors.Is(err, pkg.ErrNotFound) {
		return nil, pkg.ErrServerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &models.ServerConfig{
		VerifiedRoleID: server.VerifiedRoleID,
		LogChannelID:   server.LogChannelID,
		WelcomeMessage: server.WelcomeMessage,
	}, nil
}

func (s *serverConfigService) UpdateConfig(ctx context.Context, serverID string, cfg *models.ServerConfig) error {
	if cfg == nil {
		cfg = &models.ServerConfig{}
	}
	return s.serverRepo.UpdateConfig(ctx, serverID, cfg)
}
