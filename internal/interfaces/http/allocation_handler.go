package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/application/usecase"
	"github.com/zapcom/resource-pulse-api/internal/domain"
)

// AllocationHandler maneja el alta de asignaciones recurso-proyecto (protegido).
type AllocationHandler struct {
	uc *usecase.AllocationUseCase
}

// NewAllocationHandler construye el handler.
func NewAllocationHandler(uc *usecase.AllocationUseCase) *AllocationHandler {
	return &AllocationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear asignación (marca el recurso como Billable)
// @Tags         allocations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAllocationRequest  true  "Datos de la asignación"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/allocations [post]
func (h *AllocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAllocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "Allocation created successfully", ID: id})
}
