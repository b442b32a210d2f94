package handlers

import (
	"context"

	"github.com/akinalp/vynk/models"
)

// contextKey, context'e eklenen değerler için özel tip.
// String key çakışmalarını önler.
type contextKey string

// SessionContextKey, middleware'ın doğrulanmış oturumu koyduğu key.
const SessionContextKey contextKey = "session"

// WithSession, oturumu context'e ekler.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// SessionFromContext, context'teki oturumu döner.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionContextKey).(*models.Session)
	return session, ok && session != nil
}
