package router

import (
	"github.com/labstack/echo/v4"

	"github.com/gearshed/gearshed/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of business
// logic, kept separate from the catalog routes.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint, used by load balancers and monitors.
	r.GET("/status", h.Health.CheckHealth)
}
