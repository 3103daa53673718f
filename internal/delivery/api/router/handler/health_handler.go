package handler

import (
	"net/http"
	"time"

	"healthplanner/config"
	"healthplanner/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Version is stamped at build time with -ldflags "-X ...handler.Version=...".
var Version = "dev"

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	serviceName string
	now         func() time.Time
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		serviceName: cfg.Env.ServiceName,
		now:         time.Now,
	}
}

// Check reports that the service is up.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   h.serviceName + " is running",
		Timestamp: h.now().UTC(),
		Version:   Version,
	})
}
