package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	h "gdhealth/internal/delivery/http/helpers"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

type HealthController struct {
	Logger *zap.Logger
	DB     Pinger
}

func NewHealthController(logger *zap.Logger, db Pinger) *HealthController {
	return &HealthController{Logger: logger, DB: db}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 503 {object} helpers.APIResponse "error.code: internal_error"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()
	if err := c.DB.PingContext(ctx); err != nil {
		c.Logger.Warn("health check failed", zap.Error(err))
		h.WriteJSONError(w, http.StatusServiceUnavailable, h.ErrCodeInternalError, "database unavailable")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
}
