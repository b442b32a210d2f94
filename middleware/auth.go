// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Go'da middleware bir fonksiyondur: func(next http.Handler) http.Handler.
// Middleware kendi işini yapar, sonra next'i çağırır; hata varsa zincir burada durur.
package middleware

import (
	"net/http"

	"github.com/akinalp/vynk/handlers"
	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/services"
)

// SessionMiddleware, session cookie'sini doğrulayan middleware.
type SessionMiddleware struct {
	authService services.AuthService
	cookieName  string
}

// NewSessionMiddleware, constructor.
func NewSessionMiddleware(authService services.AuthService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		authService: authService,
		cookieName:  cookieName,
	}
}

// Require, geçerli bir oturum zorunlu kılar.
// Cookie yoksa, imza/süre geçersizse veya oturum store'da yoksa → 401.
// Geçerliyse oturum context'e eklenir; handler'lar handlers.SessionFromContext ile okur.
func (m *SessionMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			pkg.Error(w, pkg.ErrUnauthenticated)
			return
		}

		session, err := m.authService.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithSession(r.Context(), session)))
	})
}
