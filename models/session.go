package models

import "time"

// Session, Discord OAuth sonrası oluşturulan sunucu tarafı oturum kaydı.
//
// Kalıcı değildir — TTL'li in-memory store'da yaşar.
// Tarayıcı sadece imzalı cookie içinde ID'yi taşır; access token asla
// client'a gönderilmez.
type Session struct {
	ID          string    `json:"-"`
	UserID      string    `json:"id"`
	Username    string    `json:"username"`
	Avatar      *string   `json:"avatar"` // Discord avatar hash'i, yoksa nil
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"-"`
	ExpiresAt   time.Time `json:"-"`
}

// CurrentUser, GET /auth/user yanıtı.
type CurrentUser struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
}

// User, oturumdaki kullanıcı bilgisini döner.
func (s *Session) User() CurrentUser {
	return CurrentUser{ID: s.UserID, Username: s.Username, Avatar: s.Avatar}
}
