package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/application/usecase"
	"github.com/zapcom/resource-pulse-api/internal/domain"
)

// ResourceHandler maneja las peticiones HTTP de recursos (protegido).
type ResourceHandler struct {
	uc *usecase.ResourceUseCase
}

// NewResourceHandler construye el handler.
func NewResourceHandler(uc *usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

// List godoc
// @Summary      Listar recursos con departamento y skills
// @Tags         resources
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ResourceListItem
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/resources [get]
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear recurso con sus skills
// @Tags         resources
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResourceRequest  true  "Datos del recurso"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/resources [post]
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResourceRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "Resource created successfully", ID: id})
}

// Update godoc
// @Summary      Actualizar recurso (reemplazo opcional del set de skills)
// @Tags         resources
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del recurso"
// @Param        body  body  dto.UpdateResourceRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resources/{id} [put]
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid resource id"})
	}
	var in dto.UpdateResourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.uc.Update(c.Context(), int64(id), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Resource not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(dto.CreatedResponse{Message: "Resource updated successfully", ID: int64(id)})
}
