// Package models — Server (Discord guild) domain modeli.
//
// "servers" tablosundaki satırlar bot bir sunucuya eklendiğinde bot süreci
// tarafından oluşturulur. Bu API satır oluşturmaz, sadece okur ve
// doğrulama ayarlarını günceller.
package models

import "time"

// Server, botun kurulu olduğu bir Discord sunucusunu temsil eder.
type Server struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OwnerID        string    `json:"owner_id"`
	VerifiedRoleID *string   `json:"verified_role_id"`
	LogChannelID   *string   `json:"log_channel_id"`
	WelcomeMessage *string   `json:"welcome_message"`
	CreatedAt      time.Time `json:"created_at"`
}

// ServerListItem, kurulu sunucu listesindeki tek kayıt (id + isim).
type ServerListItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServerConfig, sunucunun doğrulama ayarları.
// GET /api/server/{id}/config yanıtı ve POST gövdesi aynı şekildedir.
//
// POST tam üzerine yazmadır: gövdede olmayan alan nil olarak decode edilir
// ve DB'de NULL olur.
type ServerConfig struct {
	VerifiedRoleID *string `json:"verified_role_id"`
	LogChannelID   *string `json:"log_channel_id"`
	WelcomeMessage *string `json:"welcome_message"`
}

// HasVerifiedRole, doğrulama için rol ayarlanmış mı?
// Boş string de "ayarlanmamış" sayılır.
func (c *ServerConfig) HasVerifiedRole() bool {
	return c.VerifiedRoleID != nil && *c.VerifiedRoleID != ""
}

// ManageableServer, GET /api/servers yanıtındaki tek kayıt.
type ManageableServer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Icon  *string `json:"icon"`
	Owner bool    `json:"owner"`
}
