package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/application/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler descarga del roster en xlsx (protegido).
type ExportHandler struct {
	uc *export.ResourceExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ResourceExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Resources godoc
// @Summary      Exportar el roster de recursos a xlsx
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "Filtrar por estado"
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/export/resources [get]
func (h *ExportHandler) Resources(c *fiber.Ctx) error {
	data, filename, err := h.uc.BuildWorkbook(c.Context(), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
