package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zapcom/resource-pulse-api/internal/application/analytics"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
)

// AnalyticsHandler maneja los endpoints de analítica de staffing (protegido).
type AnalyticsHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Allocation godoc
// @Summary      Tendencia mensual, distribución por estado y utilización por departamento
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AllocationAnalyticsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/analytics/allocation [get]
func (h *AnalyticsHandler) Allocation(c *fiber.Ctx) error {
	out, err := h.uc.AllocationAnalytics(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// Skills godoc
// @Summary      Top 20 skills por número de recursos
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SkillDemand
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/analytics/skills [get]
func (h *AnalyticsHandler) Skills(c *fiber.Ctx) error {
	out, err := h.uc.SkillDemand(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// Bench godoc
// @Summary      Desglose del banquillo por motivo + costo mensual
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BenchAnalyticsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/analytics/bench [get]
func (h *AnalyticsHandler) Bench(c *fiber.Ctx) error {
	out, err := h.uc.BenchAnalytics(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}
