// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// İki katman var:
//   - Kind error'lar (ErrNotFound, ErrBadRequest, ...) HTTP status'u belirler.
//   - Named error'lar (ErrMissingCode, ...) client'a gösterilecek mesajı taşır
//     ve bir kind'a unwrap olur.
//
//	errors.Is(pkg.ErrMissingCode, pkg.ErrBadRequest) // true
package pkg

import "errors"

// Kind error'lar — handler katmanı bunları HTTP status code'larına map'ler.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrBadRequest      = errors.New("bad request")
	ErrUpstream        = errors.New("upstream failure")
	ErrTooManyRequests = errors.New("too many requests")
	ErrInternal        = errors.New("internal error")
)

// DomainError, client'a dönen mesajı ve HTTP eşlemesi için kind'ı taşır.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Kind }

// NewError, verilen kind altında yeni bir DomainError oluşturur.
func NewError(kind error, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// Auth ve kaynak akışlarının named error'ları.
var (
	ErrUnauthenticated     = NewError(ErrUnauthorized, "Not authenticated")
	ErrMissingCode         = NewError(ErrBadRequest, "No code provided")
	ErrTokenExchangeFailed = NewError(ErrUpstream, "Failed to get access token")
	ErrIdentityFetchFailed = NewError(ErrUpstream, "Failed to get user info")
	ErrUpstreamGuilds      = NewError(ErrUpstream, "Failed to get servers")
	ErrServerNotFound      = NewError(ErrNotFound, "Server not found")
	ErrMissingUserID       = NewError(ErrBadRequest, "User ID required")
	ErrServerNotConfigured = NewError(ErrBadRequest, "Server not configured for verification")
	ErrInvalidBody         = NewError(ErrBadRequest, "invalid request body")
)
