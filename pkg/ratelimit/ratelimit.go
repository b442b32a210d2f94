// Package ratelimit — IPRateLimiter: public endpoint'ler için IP bazlı
// token-bucket rate limiting.
//
// Her IP için ayrı bir golang.org/x/time/rate Limiter tutulur. Uzun süre
// görülmeyen IP'lerin bucket'ları arka plan goroutine'i ile temizlenir.
//
// pkg/ratelimit hiçbir proje içi pakete bağımlı değildir (leaf dependency),
// böylece handlers ↔ middleware arasında import cycle oluşmaz.
package ratelimit

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL, bu kadar süre istek görmeyen IP'nin bucket'ı silinir.
const idleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter, IP bazlı token bucket.
//
//	limiter := ratelimit.NewIPRateLimiter(30, 10) // dakikada 30, anlık 10
//	if !limiter.Allow(ip) { return 429 }
type IPRateLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	limit       rate.Limit
	burst       int
	now         func() time.Time
	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// NewIPRateLimiter, dakikada perMinute istek ve burst kadar anlık istek
// izni veren bir limiter oluşturur. perMinute <= 0 ise nil döner —
// çağıranlar nil limiter'ı "devre dışı" olarak yorumlar.
func NewIPRateLimiter(perMinute, burst int) *IPRateLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	rl := &IPRateLimiter{
		buckets:     make(map[string]*bucket),
		limit:       rate.Limit(float64(perMinute) / 60.0),
		burst:       burst,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow, ip için bir token tüketmeyi dener. false → caller 429 dönmeli.
func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	return rl.bucketFor(ip, now).limiter.AllowN(now, 1)
}

// RetryAfterSeconds, bir sonraki token'a kadar beklenmesi gereken süre (saniye, yukarı yuvarlanmış).
// HTTP Retry-After header değeri olarak kullanılır.
func (rl *IPRateLimiter) RetryAfterSeconds(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[ip]
	if !ok {
		return 0
	}

	now := rl.now()
	tokens := b.limiter.TokensAt(now)
	if tokens >= 1 {
		return 0
	}
	// Float artıkları 60.0000001 → 61 yapmasın.
	wait := (1 - tokens) / float64(rl.limit)
	return int(math.Ceil(wait - 1e-9))
}

// Close, temizleme goroutine'ini durdurur.
func (rl *IPRateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.stopCleanup) })
}

func (rl *IPRateLimiter) bucketFor(ip string, now time.Time) *bucket {
	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[ip] = b
	}
	b.lastSeen = now
	return b
}

func (rl *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *IPRateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, b := range rl.buckets {
		if now.Sub(b.lastSeen) > idleTTL {
			delete(rl.buckets, ip)
		}
	}
}

// ExtractIP, request'ten client IP adresini çıkarır.
//
// trustProxy true ise önce X-Forwarded-For (ilk değer), sonra X-Real-IP
// okunur — sadece reverse proxy arkasında açılmalı, aksi halde client
// header'ı sahteleyebilir. Varsayılan: RemoteAddr'ın host kısmı.
func ExtractIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormatRetryMessage, kalan süreyi okunabilir formata çevirir.
// Örn: 120 → "2 minute(s)", 45 → "45 second(s)"
func FormatRetryMessage(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d minute(s)", seconds/60)
	}
	return fmt.Sprintf("%d second(s)", seconds)
}
