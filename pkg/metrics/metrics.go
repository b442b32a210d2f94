// Package metrics — Prometheus metrikleri.
//
// Global default registry yerine uygulamaya özel bir *prometheus.Registry
// kullanılır; test'ler birbirinin sayaçlarını görmez.
//
// Metrikler:
//   - http_requests_total{method,route,status}
//   - http_request_duration_seconds{method,route,status}
//   - http_in_flight_requests
//   - vynk_discord_requests_total{endpoint,outcome}
//   - vynk_verifications_total{outcome}
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label değerleri.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Verification outcome label değerleri.
const (
	VerifySuccess       = "success"
	VerifyNotConfigured = "not_configured"
	VerifyInvalid       = "invalid"
	VerifyRateLimited   = "rate_limited"
)

// routeOther, mux'a eşleşmeyen istekler için route label'ı.
// Ham path kullanılmaz, aksi halde label cardinality sınırsız büyür.
const routeOther = "other"

// Metrics, uygulamanın tüm collector'larını tutar.
// Nil *Metrics üzerindeki Observe* çağrıları no-op'tur.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	discordRequests     *prometheus.CounterVec
	verifications       *prometheus.CounterVec
}

// New, yeni bir registry oluşturur ve tüm metrikleri kaydeder.
// Go runtime ve process collector'ları da eklenir.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		discordRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vynk_discord_requests_total",
				Help: "Outbound Discord API calls by endpoint and outcome.",
			},
			[]string{"endpoint", "outcome"},
		),
		verifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vynk_verifications_total",
				Help: "Verification attempts by outcome.",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.discordRequests,
		m.verifications,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler, /metrics endpoint'i.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveDiscord, bir Discord API çağrısını sayar.
func (m *Metrics) ObserveDiscord(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.discordRequests.WithLabelValues(endpoint, outcome).Inc()
}

// ObserveVerification, bir doğrulama denemesini sayar.
func (m *Metrics) ObserveVerification(outcome string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(outcome).Inc()
}

// Instrument, RPS / latency / in-flight ölçen middleware.
//
// Route label'ı ServeMux'un eşleştirdiği pattern'dir (r.Pattern) —
// mux request'i yerinde günceller, bu yüzden next döndükten sonra okunur.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		duration := time.Since(start).Seconds()
		route := RouteLabel(r.Pattern)
		status := strconv.Itoa(sw.code)

		m.httpRequestDuration.WithLabelValues(r.Method, route, status).Observe(duration)
		m.httpRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
	})
}

// RouteLabel, "GET /api/server/{serverId}/config" gibi bir mux pattern'inden
// method önekini atar. Boş pattern → "other".
func RouteLabel(pattern string) string {
	if pattern == "" {
		return routeOther
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}

// statusWriter, yanıt kodunu yakalamak için ResponseWriter sarmalayıcısı.
type statusWriter struct {
	http.ResponseWriter
	code        int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.code = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap, http.ResponseController'ın alttaki writer'a ulaşması için.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
