package usecase

import (
	"context"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

// Ventanas por defecto de los reportes, en días/meses.
const (
	defaultMetricDays    = 30
	defaultKpiDays       = 90
	defaultFinanceMonths = 6
)

// ReportUseCase listados y series del módulo enterprise: entregables, métricas,
// escalaciones, finanzas, desempeño por departamento, vista HR y KPIs.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// ProjectsHealth salud por proyecto activo, ordenada por score descendente.
func (uc *ReportUseCase) ProjectsHealth(ctx context.Context) ([]dto.ProjectHealthRow, error) {
	return uc.reportRepo.ProjectsHealth(ctx)
}

// Deliverables entregables filtrables por proyecto y estado.
func (uc *ReportUseCase) Deliverables(ctx context.Context, projectID *int64, status string) ([]dto.DeliverableRow, error) {
	return uc.reportRepo.Deliverables(ctx, projectID, status)
}

// EngineeringMetrics métricas de ingeniería de los últimos `days` días (30 por defecto).
func (uc *ReportUseCase) EngineeringMetrics(ctx context.Context, projectID *int64, days int) ([]dto.EngineeringMetricRow, error) {
	if days <= 0 {
		days = defaultMetricDays
	}
	return uc.reportRepo.EngineeringMetrics(ctx, projectID, days)
}

// QAMetrics métricas de QA de los últimos `days` días (30 por defecto).
func (uc *ReportUseCase) QAMetrics(ctx context.Context, projectID *int64, days int) ([]dto.QAMetricRow, error) {
	if days <= 0 {
		days = defaultMetricDays
	}
	return uc.reportRepo.QAMetrics(ctx, projectID, days)
}

// Escalations escalaciones por estado (Open por defecto) y proyecto.
func (uc *ReportUseCase) Escalations(ctx context.Context, projectID *int64, status string) ([]dto.EscalationRow, error) {
	if status == "" {
		status = "Open"
	}
	return uc.reportRepo.Escalations(ctx, projectID, status)
}

// FinancialOverview agregados mensuales de los últimos `months` meses (6 por defecto).
func (uc *ReportUseCase) FinancialOverview(ctx context.Context, months int) ([]dto.FinancialMonthRow, error) {
	if months <= 0 {
		months = defaultFinanceMonths
	}
	return uc.reportRepo.FinancialOverview(ctx, months)
}

// DepartmentPerformance desempeño por departamento.
func (uc *ReportUseCase) DepartmentPerformance(ctx context.Context) ([]dto.DepartmentPerformanceRow, error) {
	return uc.reportRepo.DepartmentPerformance(ctx)
}

// HRResources vista de recursos con salario, ordenada por nombre.
func (uc *ReportUseCase) HRResources(ctx context.Context) ([]dto.HRResourceRow, error) {
	return uc.reportRepo.HRResources(ctx)
}

// CompanyKpis hechos de KPI de los últimos `days` días (90 por defecto).
func (uc *ReportUseCase) CompanyKpis(ctx context.Context, days int) ([]dto.CompanyKpiRow, error) {
	if days <= 0 {
		days = defaultKpiDays
	}
	return uc.reportRepo.CompanyKpis(ctx, days)
}
