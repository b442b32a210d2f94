// Package main — Service katmanı başlatma.
//
// initServices, service implementasyonlarını repository'ler ve Discord
// istemcisi ile constructor injection yoluyla oluşturur.
package main

import (
	"github.com/akinalp/vynk/config"
	"github.com/akinalp/vynk/pkg/discord"
	"github.com/akinalp/vynk/pkg/metrics"
	"github.com/akinalp/vynk/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth         services.AuthService
	Guild        services.GuildService
	ServerConfig services.ServerConfigService
	Verification services.VerificationService
}

// initServices, tüm service'leri oluşturur.
func initServices(repos *Repositories, discordClient discord.Client, m *metrics.Metrics, cfg *config.Config) *Services {
	return &Services{
		Auth:         services.NewAuthService(discordClient, repos.Session, cfg.Session.Secret, cfg.Session.TTL),
		Guild:        services.NewGuildService(discordClient, repos.Server),
		ServerConfig: services.NewServerConfigService(repos.Server),
		Verification: services.NewVerificationService(repos.Server, repos.VerificationLog, m),
	}
}
