package models

import "time"

// VerificationLogLimit, log listesinde dönen maksimum kayıt sayısı.
const VerificationLogLimit = 100

// VerificationLog, bir kullanıcının sunucuda doğrulandığı anın kaydı.
// Append-only: bu API kayıtları asla güncellemez veya silmez.
type VerificationLog struct {
	ID         int64     `json:"-"`
	ServerID   string    `json:"-"`
	UserID     string    `json:"user_id"`
	UserIP     *string   `json:"user_ip"`
	VerifiedAt time.Time `json:"verified_at"`
}

// VerifyRequest, POST /api/server/{id}/verify gövdesi.
type VerifyRequest struct {
	UserID string `json:"user_id"`
}

// VerifyResult, başarılı doğrulama yanıtı. RoleID'yi bot süreci uygular.
type VerifyResult struct {
	Message string `json:"message"`
	RoleID  string `json:"role_id"`
}
