// Package main — Handler katmanı başlatma.
//
// Handler'lar "thin" dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/akinalp/vynk/config"
	"github.com/akinalp/vynk/handlers"
	"github.com/akinalp/vynk/pkg/metrics"
	"github.com/akinalp/vynk/pkg/ratelimit"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Server       *handlers.ServerHandler
	Verification *handlers.VerificationHandler
}

// initHandlers, tüm handler'ları service ve rate limiter dependency'leri ile oluşturur.
// verifyLimiter nil olabilir (VERIFY_RATE_PER_MINUTE=0).
func initHandlers(svcs *Services, verifyLimiter *ratelimit.IPRateLimiter, m *metrics.Metrics, cfg *config.Config) *Handlers {
	cookie := handlers.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Server.SecureCookies(),
	}

	return &Handlers{
		Auth:   handlers.NewAuthHandler(svcs.Auth, cookie, cfg.Server.FrontendURL),
		Server: handlers.NewServerHandler(svcs.Guild, svcs.ServerConfig),
		Verification: handlers.NewVerificationHandler(
			svcs.Verification,
			verifyLimiter,
			cfg.RateLimit.TrustProxyHeaders,
			m,
		),
	}
}
