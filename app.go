// Package main — uygulama wire-up'ı.
//
// newApp, config + DB bağlantısından tam bir http.Handler kurar:
// repository → service → handler → route → middleware chain.
// main.go ve uçtan uca test'ler aynı fonksiyonu kullanır.
package main

import (
	"database/sql"
	"net/http"

	"github.com/akinalp/vynk/config"
	"github.com/akinalp/vynk/middleware"
	"github.com/akinalp/vynk/pkg/discord"
	"github.com/akinalp/vynk/pkg/metrics"
	"github.com/akinalp/vynk/pkg/ratelimit"
	"github.com/rs/cors"
)

// App, kurulmuş handler zinciri ve kapatılması gereken kaynaklar.
type App struct {
	Handler http.Handler

	repos         *Repositories
	verifyLimiter *ratelimit.IPRateLimiter
}

// newApp, tüm katmanları birbirine bağlar. Global değişken yok.
func newApp(cfg *config.Config, db *sql.DB) *App {
	m := metrics.New()

	discordClient := discord.NewClient(discord.Options{
		ClientID:     cfg.Discord.ClientID,
		ClientSecret: cfg.Discord.ClientSecret,
		RedirectURI:  cfg.Server.RedirectURI(),
		APIBase:      cfg.Discord.APIBase,
		AuthorizeURL: cfg.Discord.AuthorizeURL,
		Timeout:      cfg.Discord.HTTPTimeout,
	}, m)

	repos := initRepositories(db, cfg.Session.TTL)
	svcs := initServices(repos, discordClient, m, cfg)

	verifyLimiter := ratelimit.NewIPRateLimiter(cfg.RateLimit.VerifyPerMinute, cfg.RateLimit.VerifyBurst)
	h := initHandlers(svcs, verifyLimiter, m, cfg)

	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth, cfg.Session.CookieName, m)

	// Frontend ayrı origin'de; cookie taşınabilmesi için AllowCredentials şart.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		Debug:            cfg.Server.Debug,
	})

	// Dıştan içe: log → metrik → panic recovery → CORS → mux.
	// Recover metriklerin içinde kalır, böylece panic'ler 500 olarak sayılır.
	var handler http.Handler = corsHandler.Handler(mux)
	handler = middleware.Recover(handler)
	handler = m.Instrument(handler)
	handler = middleware.Logging(handler)

	return &App{
		Handler:       handler,
		repos:         repos,
		verifyLimiter: verifyLimiter,
	}
}

// Close, arka plan goroutine'lerini (session cache, rate limiter) durdurur.
func (a *App) Close() {
	a.repos.Close()
	if a.verifyLimiter != nil {
		a.verifyLimiter.Close()
	}
}
