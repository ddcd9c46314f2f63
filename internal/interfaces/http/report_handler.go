package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/application/usecase"
)

// ReportHandler listados y series del módulo enterprise (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// queryProjectID lee el filtro opcional project_id; nil si no viene.
func queryProjectID(c *fiber.Ctx) *int64 {
	v := c.QueryInt("project_id", 0)
	if v <= 0 {
		return nil
	}
	id := int64(v)
	return &id
}

// ProjectsHealth godoc
// @Summary      Salud por proyecto con entregables y escalaciones abiertas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProjectHealthRow
// @Router       /api/projects/health [get]
func (h *ReportHandler) ProjectsHealth(c *fiber.Ctx) error {
	out, err := h.uc.ProjectsHealth(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// Deliverables godoc
// @Summary      Listar entregables
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        project_id  query  int     false  "Filtrar por proyecto"
// @Param        status      query  string  false  "Filtrar por estado"
// @Success      200  {array}  dto.DeliverableRow
// @Router       /api/deliverables [get]
func (h *ReportHandler) Deliverables(c *fiber.Ctx) error {
	out, err := h.uc.Deliverables(c.Context(), queryProjectID(c), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// EngineeringMetrics godoc
// @Summary      Métricas de ingeniería por día y proyecto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        project_id  query  int  false  "Filtrar por proyecto"
// @Param        days        query  int  false  "Ventana en días"  default(30)
// @Success      200  {array}  dto.EngineeringMetricRow
// @Router       /api/metrics/engineering [get]
func (h *ReportHandler) EngineeringMetrics(c *fiber.Ctx) error {
	out, err := h.uc.EngineeringMetrics(c.Context(), queryProjectID(c), c.QueryInt("days", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// QAMetrics godoc
// @Summary      Métricas de QA por día y proyecto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        project_id  query  int  false  "Filtrar por proyecto"
// @Param        days        query  int  false  "Ventana en días"  default(30)
// @Success      200  {array}  dto.QAMetricRow
// @Router       /api/metrics/qa [get]
func (h *ReportHandler) QAMetrics(c *fiber.Ctx) error {
	out, err := h.uc.QAMetrics(c.Context(), queryProjectID(c), c.QueryInt("days", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// Escalations godoc
// @Summary      Listar escalaciones (estado Open por defecto)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        project_id  query  int     false  "Filtrar por proyecto"
// @Param        status      query  string  false  "Estado"  default(Open)
// @Success      200  {array}  dto.EscalationRow
// @Router       /api/escalations [get]
func (h *ReportHandler) Escalations(c *fiber.Ctx) error {
	out, err := h.uc.Escalations(c.Context(), queryProjectID(c), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// FinancialOverview godoc
// @Summary      Agregados financieros por mes (solo hr/leadership)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "Ventana en meses"  default(6)
// @Success      200  {array}   dto.FinancialMonthRow
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/financial/overview [get]
func (h *ReportHandler) FinancialOverview(c *fiber.Ctx) error {
	out, err := h.uc.FinancialOverview(c.Context(), c.QueryInt("months", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// DepartmentPerformance godoc
// @Summary      Desempeño por departamento
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepartmentPerformanceRow
// @Router       /api/departments/performance [get]
func (h *ReportHandler) DepartmentPerformance(c *fiber.Ctx) error {
	out, err := h.uc.DepartmentPerformance(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// HRResources godoc
// @Summary      Vista de recursos con salario (solo hr)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.HRResourceRow
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/hr/resources [get]
func (h *ReportHandler) HRResources(c *fiber.Ctx) error {
	out, err := h.uc.HRResources(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}

// CompanyKpis godoc
// @Summary      KPIs corporativos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(90)
// @Success      200  {array}  dto.CompanyKpiRow
// @Router       /api/kpis/company [get]
func (h *ReportHandler) CompanyKpis(c *fiber.Ctx) error {
	out, err := h.uc.CompanyKpis(c.Context(), c.QueryInt("days", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(out)
}
