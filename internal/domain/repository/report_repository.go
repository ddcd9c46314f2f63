package repository

import (
	"context"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
)

// ReportRepository listados y series de solo lectura del módulo enterprise.
// projectID nil = sin filtro por proyecto.
type ReportRepository interface {
	ProjectsHealth(ctx context.Context) ([]dto.ProjectHealthRow, error)
	Deliverables(ctx context.Context, projectID *int64, status string) ([]dto.DeliverableRow, error)
	EngineeringMetrics(ctx context.Context, projectID *int64, days int) ([]dto.EngineeringMetricRow, error)
	QAMetrics(ctx context.Context, projectID *int64, days int) ([]dto.QAMetricRow, error)
	Escalations(ctx context.Context, projectID *int64, status string) ([]dto.EscalationRow, error)
	FinancialOverview(ctx context.Context, months int) ([]dto.FinancialMonthRow, error)
	DepartmentPerformance(ctx context.Context) ([]dto.DepartmentPerformanceRow, error)
	HRResources(ctx context.Context) ([]dto.HRResourceRow, error)
	CompanyKpis(ctx context.Context, days int) ([]dto.CompanyKpiRow, error)
}
