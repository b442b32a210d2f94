// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler ince olmalı: request'i parse et, service'i çağır, sonucu yaz.
// İş mantığı service katmanında, SQL repository katmanında yaşar.
package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/services"
)

// CookieConfig, session cookie'sinin özellikleri.
type CookieConfig struct {
	Name string
	TTL  time.Duration
	// Secure true ise cookie sadece https'te gider ve SameSite=None olur
	// (frontend farklı origin'de). false ise SameSite=Lax.
	Secure bool
}

// AuthHandler, Discord OAuth ve oturum endpoint'leri.
type AuthHandler struct {
	authService services.AuthService
	cookie      CookieConfig
	frontendURL string
}

// NewAuthHandler, constructor.
func NewAuthHandler(authService services.AuthService, cookie CookieConfig, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
		frontendURL: frontendURL,
	}
}

// DiscordLogin godoc
// GET /auth/discord
func (h *AuthHandler) DiscordLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.authService.LoginURL(), http.StatusFound)
}

// Callback godoc
// GET /auth/callback?code=
//
// Başarıda session cookie set edilir ve frontend'in sunucu listesine yönlendirilir.
// Herhangi bir adım başarısızsa oturum oluşmaz, 400 döner.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	session, err := h.authService.HandleCallback(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	token, err := h.authService.IssueSessionToken(session)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.cookie.TTL.Seconds())))
	http.Redirect(w, r, h.frontendURL+"/servers.html", http.StatusFound)
}

// Logout godoc
// GET /auth/logout
//
// Oturum olsun olmasın her zaman 200 döner.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.cookie.Name); err == nil {
		if err := h.authService.Logout(r.Context(), c.Value); err != nil {
			log.Printf("[auth] logout cleanup failed: %v", err)
		}
	}

	http.SetCookie(w, h.sessionCookie("", -1))
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me godoc
// GET /auth/user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthenticated)
		return
	}

	pkg.JSON(w, http.StatusOK, session.User())
}

// sessionCookie, maxAge < 0 ise cookie'yi silen bir Set-Cookie üretir.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.cookie.Secure {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: sameSite,
	}
}
