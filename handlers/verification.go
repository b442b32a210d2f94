package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
	"github.com/akinalp/vynk/pkg/metrics"
	"github.com/akinalp/vynk/pkg/ratelimit"
	"github.com/akinalp/vynk/services"
)

// VerificationHandler, doğrulama ve doğrulama kayıtları endpoint'leri.
type VerificationHandler struct {
	verificationService services.VerificationService
	limiter             *ratelimit.IPRateLimiter
	trustProxy          bool
	metrics             *metrics.Metrics
}

// NewVerificationHandler, constructor.
// limiter nil ise rate limiting devre dışıdır.
func NewVerificationHandler(
	verificationService services.VerificationService,
	limiter *ratelimit.IPRateLimiter,
	trustProxy bool,
	m *metrics.Metrics,
) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
		limiter:             limiter,
		trustProxy:          trustProxy,
		metrics:             m,
	}
}

// Verify godoc
// POST /api/server/{serverId}/verify
//
// Public endpoint (bot/doğrulama sayfası çağırır). IP bazlı rate limit uygulanır.
func (h *VerificationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r, h.trustProxy)

	if h.limiter != nil && !h.limiter.Allow(ip) {
		retryAfter := h.limiter.RetryAfterSeconds(ip)
		h.metrics.ObserveVerification(metrics.VerifyRateLimited)
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			fmt.Sprintf("too many verification attempts, please try again in %s",
				ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	var req *models.VerifyRequest
	if err := decodeObject(w, r, &req); err != nil || req == nil {
		h.metrics.ObserveVerification(metrics.VerifyInvalid)
		pkg.Error(w, pkg.ErrInvalidBody)
		return
	}

	result, err := h.verificationService.Verify(r.Context(), r.PathValue("serverId"), req.UserID, ip)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, result)
}

// Logs godoc
// GET /api/server/{serverId}/logs
func (h *VerificationHandler) Logs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.verificationService.ListLogs(r.Context(), r.PathValue("serverId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, logs)
}
