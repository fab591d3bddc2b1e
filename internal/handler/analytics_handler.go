package handler

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// AnalyticsHandler serves the sales report.
type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  zerolog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service service.AnalyticsService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger.With().Str("handler", "analytics").Logger(),
	}
}

// Sales handles GET /api/analytics/sales requests.
func (h *AnalyticsHandler) Sales(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.SalesReport(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and database health.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
	logger  zerolog.Logger
}

// NewHealthHandler creates a health handler that pings db within timeout.
func NewHealthHandler(db Pinger, timeout time.Duration, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		timeout: timeout,
		logger:  logger.With().Str("handler", "health").Logger(),
	}
}

// Check handles GET /health requests.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error().Err(err).Msg("database ping failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "database": "unreachable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "database": "ok"})
}
