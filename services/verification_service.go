package services

import (
	"context"
	"errors"
	"log"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/pkg/metrics"
	"github.com/akinalp/vynk/repository"
)

// VerificationService, doğrulama olaylarını işler ve kayıtlarını listeler.
//
// Rolü Discord'da vermez: başarılı yanıttaki role_id'yi bot süreci uygular.
type VerificationService interface {
	// Verify, sunucunun doğrulama rolü ayarlıysa kayıt ekler ve rolü döner.
	// userIP boşsa kayıtta NULL olarak saklanır.
	Verify(ctx context.Context, serverID, userID, userIP string) (*models.VerifyResult, error)

	// ListLogs, en yeni models.VerificationLogLimit kaydı döner.
	ListLogs(ctx context.Context, serverID string) ([]models.VerificationLog, error)
}

type verificationService struct {
	serverRepo repository.ServerRepository
	logRepo    repository.VerificationLogRepository
	metrics    *metrics.Metrics
}

// NewVerificationService, constructor. m nil olabilir.
func NewVerificationService(
	serverRepo repository.ServerRepository,
	logRepo repository.VerificationLogRepository,
	m *metrics.Metrics,
) VerificationService {
	return &verificationService{serverRepo: serverRepo, logRepo: logRepo, metrics: m}
}

func (s *verificationService) Verify(ctx context.Context, serverID, userID, userIP string) (*models.VerifyResult, error) {
	if userID == "" {
		s.metrics.ObserveVerification(metrics.VerifyInvalid)
		return nil, pkg.ErrMissingUserID
	}

	server, err := s.serverRepo.GetByID(ctx, serverID)
	if errors.Is(err, pkg.ErrNotFound) {
		s.metrics.ObserveVerification(metrics.VerifyNotConfigured)
		return nil, pkg.ErrServerNotConfigured
	}
	if err != nil {
		return nil, err
	}

	cfg := models.ServerConfig{VerifiedRoleID: server.VerifiedRoleID}
	if !cfg.HasVerifiedRole() {
		s.metrics.ObserveVerification(metrics.VerifyNotConfigured)
		return nil, pkg.ErrServerNotConfigured
	}

	entry := &models.VerificationLog{
		ServerID: serverID,
		UserID:   userID,
	}
	if userIP != "" {
		entry.UserIP = &userIP
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.metrics.ObserveVerification(metrics.VerifySuccess)
	log.Printf("[verify] user %s verified in server %s", userID, serverID)

	return &models.VerifyResult{
		Message: "Verification successful",
		RoleID:  *server.VerifiedRoleID,
	}, nil
}

func (s *verificationService) ListLogs(ctx context.Context, serverID string) ([]models.VerificationLog, error) {
	return s.logRepo.ListByServer(ctx, serverID, models.VerificationLogLimit)
}
