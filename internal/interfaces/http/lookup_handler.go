package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/application/usecase"
)

// LookupHandler catálogos de solo lectura (protegido).
type LookupHandler struct {
	uc *usecase.LookupUseCase
}

// NewLookupHandler construye el handler.
func NewLookupHandler(uc *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// Departments godoc
// @Summary      Listar departamentos
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepartmentDTO
// @Router       /api/departments [get]
func (h *LookupHandler) Departments(c *fiber.Ctx) error {
	out, err := h.uc.Departments(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// Skills godoc
// @Summary      Listar skills
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SkillDTO
// @Router       /api/skills [get]
func (h *LookupHandler) Skills(c *fiber.Ctx) error {
	out, err := h.uc.Skills(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// Clients godoc
// @Summary      Listar clientes
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientDTO
// @Router       /api/clients [get]
func (h *LookupHandler) Clients(c *fiber.Ctx) error {
	out, err := h.uc.Clients(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}
