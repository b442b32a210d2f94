// Package main — HTTP route registration.
//
// initRoutes, tüm endpoint'leri mux'a bağlar. Oturum gerektiren route'lar
// session middleware'ı ile sarılır; verify bilinçli olarak public'tir.
package main

import (
	"net/http"

	"github.com/akinalp/vynk/handlers"
	"github.com/akinalp/vynk/middleware"
	"github.com/akinalp/vynk/pkg/metrics"
	"github.com/akinalp/vynk/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	cookieName string,
	m *metrics.Metrics,
) {
	sessionMw := middleware.NewSessionMiddleware(authService, cookieName)

	auth := func(handler http.HandlerFunc) http.Handler {
		return sessionMw.Require(handler)
	}

	// Status
	mux.HandleFunc("GET /{$}", handlers.Home)
	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /metrics", m.Handler())

	// Auth
	mux.HandleFunc("GET /auth/discord", h.Auth.DiscordLogin)
	mux.HandleFunc("GET /auth/callback", h.Auth.Callback)
	mux.HandleFunc("GET /auth/logout", h.Auth.Logout)
	mux.Handle("GET /auth/user", auth(h.Auth.Me))

	// Servers
	mux.Handle("GET /api/servers", auth(h.Server.ListServers))
	mux.Handle("GET /api/server/{serverId}/config", auth(h.Server.GetConfig))
	mux.Handle("POST /api/server/{serverId}/config", auth(h.Server.UpdateConfig))

	// Verification — verify public, logs oturum ister
	mux.HandleFunc("POST /api/server/{serverId}/verify", h.Verification.Verify)
	mux.Handle("GET /api/server/{serverId}/logs", auth(h.Verification.Logs))
}
