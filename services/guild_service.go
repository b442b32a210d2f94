package services

import (
	"context"
	"fmt"
	"log"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/pkg/discord"
	"github.com/akinalp/vynk/repository"
)

// GuildService, kullanıcının yönetebileceği sunucuları listeler.
type GuildService interface {
	// ListManageable, oturumdaki kullanıcının guild'leri ile botun kurulu
	// olduğu sunucuların kesişimini döner; sadece administrator bit'i olanlar.
	ListManageable(ctx context.Context, session *models.Session) ([]models.ManageableServer, error)
}

type guildService struct {
	discord    discord.Client
	serverRepo repository.ServerRepository
}

// NewGuildService, constructor.
func NewGuildService(discordClient discord.Client, serverRepo repository.ServerRepository) GuildService {
	return &guildService{discord: discordClient, serverRepo: serverRepo}
}

func (s *guildService) ListManageable(ctx context.Context, session *models.Session) ([]models.ManageableServer, error) {
	if session == nil || session.AccessToken == "" {
		return nil, pkg.ErrUnauthenticated
	}

	guilds, err := s.discord.CurrentUserGuilds(ctx, session.AccessToken)
	if err != nil {
		log.Printf("[servers] guild fetch failed for user %s: %v", session.UserID, err)
		return nil, fmt.Errorf("%w: %w", pkg.ErrUpstreamGuilds, err)
	}

	installed, err := s.serverRepo.ListInstalled(ctx)
	if err != nil {
		return nil, err
	}

	return FilterManageable(guilds, installed), nil
}

// FilterManageable, guild'leri Discord'un sırasını koruyarak filtreler:
// id kurulu sunucular arasında olmalı ve permissions'ta 0x8 set olmalı.
// Owner bayrağı tek başına yetmez.
func FilterManageable(guilds []models.DiscordGuild, installed []models.ServerListItem) []models.ManageableServer {
	installedIDs := make(map[string]struct{}, len(installed))
	for _, s := range installed {
		installedIDs[s.ID] = struct{}{}
	}

	result := make([]models.ManageableServer, 0)
	for _, g := range guilds {
		if _, ok := installedIDs[g.ID]; !ok {
			continue
		}
		if !g.Permissions.Has(models.PermAdministrator) {
			continue
		}
		result = append(result, models.ManageableServer{
			ID:    g.ID,
			Name:  g.Name,
			Icon:  g.Icon,
			Owner: g.Owner,
		})
	}

	return result
}
