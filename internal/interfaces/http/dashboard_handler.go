package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zapcom/resource-pulse-api/internal/application/analytics"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
)

// DashboardHandler maneja el overview compuesto del dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Overview del dashboard; secciones financial/hr según el rol
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardOverview
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context(), GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}
