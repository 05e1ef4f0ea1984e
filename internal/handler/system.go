package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"teamdir/internal/config"
	"teamdir/internal/httputil"
)

// Pinger checks store reachability; satisfied by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the status, health and info endpoints
type SystemHandler struct {
	config *config.Config
	store  Pinger
	logger *slog.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(cfg *config.Config, store Pinger, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		config: cfg,
		store:  store,
		logger: logger,
	}
}

// StatusResponse is the root endpoint payload
type StatusResponse struct {
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Root reports application status
// GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, StatusResponse{
		Message:   "Hello World",
		Status:    "running",
		Timestamp: time.Now(),
		Version:   h.config.AppVersion,
	})
}

// Health reports service and store health
// GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			h.logger.Error("store ping failed", "error", err)
			httputil.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
			})
			return
		}
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Info reports application configuration
// GET /info
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"app_name":    h.config.AppName,
		"version":     h.config.AppVersion,
		"environment": h.config.Environment,
		"debug":       h.config.Debug,
	})
}
