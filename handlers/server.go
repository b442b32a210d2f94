package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/services"
)

// maxBodyBytes, JSON gövdeleri için üst sınır.
const maxBodyBytes = 64 << 10

// ServerHandler, sunucu listesi ve sunucu ayarı endpoint'leri.
// Hepsi oturum ister; sunucu bazlı yetki kontrolü yapılmaz.
type ServerHandler struct {
	guildService  services.GuildService
	configService services.ServerConfigService
}

// NewServerHandler, constructor.
func NewServerHandler(guildService services.GuildService, configService services.ServerConfigService) *ServerHandler {
	return &ServerHandler{
		guildService:  guildService,
		configService: configService,
	}
}

// ListServers godoc
// GET /api/servers
func (h *ServerHandler) ListServers(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	servers, err := h.guildService.ListManageable(r.Context(), session)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, servers)
}

// GetConfig godoc
// GET /api/server/{serverId}/config
func (h *ServerHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configService.GetConfig(r.Context(), r.PathValue("serverId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, cfg)
}

// UpdateConfig godoc
// POST /api/server/{serverId}/config
//
// Tam üzerine yazma: gövdede olmayan alanlar NULL olur.
func (h *ServerHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg *models.ServerConfig
	if err := decodeObject(w, r, &cfg); err != nil || cfg == nil {
		pkg.Error(w, pkg.ErrInvalidBody)
		return
	}

	if err := h.configService.UpdateConfig(r.Context(), r.PathValue("serverId"), cfg); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Configuration updated successfully"})
}

// decodeObject, boyutu sınırlı gövdeyi dst'ye decode eder.
// dst pointer-to-pointer verilirse "null" gövde nil bırakır.
func decodeObject(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
