package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/userdept/admin-system/internal/core/ports"
)

// DashboardHandler serves the aggregate counters for the landing view.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/v1/dashboard/stats.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope{data=ports.DashboardStats}
// @Failure      401  {object}  Envelope
// @Router       /api/v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, stats)
}
