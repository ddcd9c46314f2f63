package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zapcom/resource-pulse-api/internal/application/analytics"
	"github.com/zapcom/resource-pulse-api/internal/application/auth"
	"github.com/zapcom/resource-pulse-api/internal/application/export"
	"github.com/zapcom/resource-pulse-api/internal/application/usecase"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ResourceUC   *usecase.ResourceUseCase
	ProjectUC    *usecase.ProjectUseCase
	AllocationUC *usecase.AllocationUseCase
	LookupUC     *usecase.LookupUseCase
	ReportUC     *usecase.ReportUseCase
	AnalyticsUC  *analytics.AnalyticsUseCase
	DashboardUC  *analytics.DashboardUseCase
	ExportUC     *export.ResourceExportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Solo resource_manager puede escribir
	manageOnly := RequireRole(entity.RoleResourceManager)

	// Resources
	resourceHandler := NewResourceHandler(deps.ResourceUC)
	protected.Get("/resources", resourceHandler.List)
	protected.Post("/resources", manageOnly, resourceHandler.Create)
	protected.Put("/resources/:id", manageOnly, resourceHandler.Update)

	// Projects (el reporte /projects/health se registra antes del listado)
	reportHandler := NewReportHandler(deps.ReportUC)
	projectHandler := NewProjectHandler(deps.ProjectUC)
	protected.Get("/projects/health", reportHandler.ProjectsHealth)
	protected.Get("/projects", projectHandler.List)
	protected.Post("/projects", manageOnly, projectHandler.Create)

	// Allocations
	allocationHandler := NewAllocationHandler(deps.AllocationUC)
	protected.Post("/allocations", manageOnly, allocationHandler.Create)

	// Analytics
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/analytics/allocation", analyticsHandler.Allocation)
	protected.Get("/analytics/skills", analyticsHandler.Skills)
	protected.Get("/analytics/bench", analyticsHandler.Bench)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/overview", dashboardHandler.Overview)

	// Reportes enterprise
	protected.Get("/deliverables", reportHandler.Deliverables)
	protected.Get("/metrics/engineering", reportHandler.EngineeringMetrics)
	protected.Get("/metrics/qa", reportHandler.QAMetrics)
	protected.Get("/escalations", reportHandler.Escalations)
	protected.Get("/financial/overview", RequireRole(entity.RoleHR, entity.RoleLeadership), reportHandler.FinancialOverview)
	protected.Get("/departments/performance", reportHandler.DepartmentPerformance)
	protected.Get("/hr/resources", RequireRole(entity.RoleHR), reportHandler.HRResources)
	protected.Get("/kpis/company", reportHandler.CompanyKpis)

	// Lookups
	lookupHandler := NewLookupHandler(deps.LookupUC)
	protected.Get("/departments", lookupHandler.Departments)
	protected.Get("/skills", lookupHandler.Skills)
	protected.Get("/clients", lookupHandler.Clients)

	// Export
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/export/resources", exportHandler.Resources)
}
