// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (DB) / Discord istemcisi arasında oturur.
// Service http.Request/Response bilmez, doğrudan SQL çalıştırmaz.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/pkg/discord"
	"github.com/akinalp/vynk/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionIssuer, session JWT'lerinin iss claim'i.
const sessionIssuer = "vynk"

// AuthService, Discord OAuth akışı ve oturum yönetimi.
type AuthService interface {
	// LoginURL, Discord consent ekranının URL'i.
	LoginURL() string

	// HandleCallback, code → token → kimlik adımlarını yürütür ve başarılıysa
	// oturum oluşturur. Oturum yaratan tek yer burasıdır.
	HandleCallback(ctx context.Context, code string) (*models.Session, error)

	// IssueSessionToken, oturumu işaret eden imzalı cookie değerini üretir.
	IssueSessionToken(session *models.Session) (string, error)

	// Authenticate, cookie değerini doğrular ve oturumu store'dan çözer.
	Authenticate(ctx context.Context, token string) (*models.Session, error)

	// Logout, cookie değeri geçerliyse sunucu tarafı oturumu siler. Her zaman idempotent.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	discord     discord.Client
	sessionRepo repository.SessionRepository
	secret      []byte
	ttl         time.Duration
	now         func() time.Time
}

// NewAuthService, constructor.
func NewAuthService(
	discordClient discord.Client,
	sessionRepo repository.SessionRepository,
	secret string,
	ttl time.Duration,
) AuthService {
	return &authService{
		discord:     discordClient,
		sessionRepo: sessionRepo,
		secret:      []byte(secret),
		ttl:         ttl,
		now:         time.Now,
	}
}

func (s *authService) LoginURL() string {
	return s.discord.AuthCodeURL()
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*models.Session, error) {
	if code == "" {
		return nil, pkg.ErrMissingCode
	}

	accessToken, err := s.discord.ExchangeCode(ctx, code)
	if err != nil {
		log.Printf("[auth] token exchange failed: %v", err)
		return nil, fmt.Errorf("%w: %w", pkg.ErrTokenExchangeFailed, err)
	}

	user, err := s.discord.CurrentUser(ctx, accessToken)
	if err != nil {
		log.Printf("[auth] identity fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %w", pkg.ErrIdentityFetchFailed, err)
	}

	now := s.now()
	session := &models.Session{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Username:    user.Username,
		Avatar:      user.Avatar,
		AccessToken: accessToken,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	log.Printf("[auth] session created for user %s", user.ID)
	return session, nil
}

func (s *authService) IssueSessionToken(session *models.Session) (string, error) {
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.UserID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, pkg.ErrUnauthenticated
	}

	session, err := s.sessionRepo.GetByID(ctx, claims.ID)
	if errors.Is(err, pkg.ErrNotFound) {
		return nil, pkg.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	if session.UserID != claims.Subject {
		return nil, pkg.ErrUnauthenticated
	}

	return session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.parse(token)
	if err != nil {
		// Geçersiz/süresi dolmuş cookie: silinecek oturum yok.
		return nil
	}

	return s.sessionRepo.DeleteByID(ctx, claims.ID)
}

// parse, HS256 imzasını, exp'yi ve jti varlığını doğrular.
func (s *authService) parse(token string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid session token", pkg.ErrUnauthorized)
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, fmt.Errorf("%w: invalid session claims", pkg.ErrUnauthorized)
	}
	return claims, nil
}
