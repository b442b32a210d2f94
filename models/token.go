package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims, session cookie'sindeki imzalı JWT'nin payload'ı.
//
// Cookie sadece oturumu işaret eder: ID (jti) = session id, Subject (sub) =
// Discord user id. Access token ve profil bilgisi sunucu tarafında kalır.
type SessionClaims struct {
	jwt.RegisteredClaims
}
