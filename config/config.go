// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Değerler struct tag'leri ile tanımlanır (caarlos0/env) — her alt bölüm
// ayrı bir struct, böylece tek bir Config nesnesi taşınır.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server    ServerConfig
	Discord   DiscordConfig
	Session   SessionConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
}

// ServerConfig, HTTP server ve public URL ayarları.
type ServerConfig struct {
	Host        string `env:"HOST" envDefault:"0.0.0.0"`
	Port        int    `env:"PORT" envDefault:"5000"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`
	BackendURL  string `env:"BACKEND_URL,required"`                                 // OAuth redirect URI bunun üzerine kurulur
	FrontendURL string `env:"FRONTEND_URL" envDefault:"https://your-frontend.netlify.app"` // callback sonrası yönlendirme + CORS origin
}

// DiscordConfig, Discord OAuth2 uygulama ayarları.
type DiscordConfig struct {
	ClientID     string        `env:"DISCORD_CLIENT_ID,required"`
	ClientSecret string        `env:"DISCORD_CLIENT_SECRET,required"`
	APIBase      string        `env:"DISCORD_API_BASE" envDefault:"https://discord.com/api/v10"`
	AuthorizeURL string        `env:"DISCORD_AUTHORIZE_URL" envDefault:"https://discord.com/oauth2/authorize"`
	HTTPTimeout  time.Duration `env:"DISCORD_HTTP_TIMEOUT" envDefault:"10s"`
}

// SessionConfig, oturum cookie'si ayarları.
type SessionConfig struct {
	Secret     string        `env:"SECRET_KEY,required"` // Cookie imzalama anahtarı — GİZLİ TUTULMALI
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"vynk_session"`
}

// DatabaseConfig, SQLite ayarları.
type DatabaseConfig struct {
	URL string `env:"DATABASE_URL" envDefault:"sqlite:///vynk.db"`
}

// RateLimitConfig, public verify endpoint'i için IP bazlı limit.
type RateLimitConfig struct {
	VerifyPerMinute   int  `env:"VERIFY_RATE_PER_MINUTE" envDefault:"30"` // 0 → devre dışı
	VerifyBurst       int  `env:"VERIFY_RATE_BURST" envDefault:"10"`
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler — dosya yoksa sessizce devam eder.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return parse(env.Options{})
}

// parse, verilen env.Options ile Config'i doldurur ve doğrular.
// Testler Options.Environment ile process env'ine dokunmadan çağırır.
func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Server.BackendURL = strings.TrimRight(cfg.Server.BackendURL, "/")
	cfg.Server.FrontendURL = strings.TrimRight(cfg.Server.FrontendURL, "/")
	cfg.Discord.APIBase = strings.TrimRight(cfg.Discord.APIBase, "/")

	if err := requireAbsoluteURL("BACKEND_URL", cfg.Server.BackendURL); err != nil {
		return nil, err
	}
	if err := requireAbsoluteURL("FRONTEND_URL", cfg.Server.FrontendURL); err != nil {
		return nil, err
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.Session.TTL)
	}
	if cfg.RateLimit.VerifyPerMinute < 0 || cfg.RateLimit.VerifyBurst < 0 {
		return nil, fmt.Errorf("VERIFY_RATE_PER_MINUTE and VERIFY_RATE_BURST must not be negative")
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:5000").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedirectURI, Discord'a bildirilen OAuth callback adresi.
func (c *ServerConfig) RedirectURI() string {
	return c.BackendURL + "/auth/callback"
}

// SecureCookies, backend https üzerinden servis ediliyorsa true.
// Frontend farklı origin'de olduğu için bu durumda cookie SameSite=None olmalı.
func (c *ServerConfig) SecureCookies() bool {
	return strings.HasPrefix(c.BackendURL, "https://")
}

// Path, DATABASE_URL'den SQLite dosya yolunu çıkarır ("sqlite:///vynk.db" → "vynk.db").
func (c *DatabaseConfig) Path() string {
	return strings.TrimPrefix(c.URL, "sqlite:///")
}

func requireAbsoluteURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid %s: %q is not an absolute URL", name, raw)
	}
	return nil
}
