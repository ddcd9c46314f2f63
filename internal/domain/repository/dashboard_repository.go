package repository

import (
	"context"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
)

// DashboardRepository consultas de agregación para el overview compuesto.
type DashboardRepository interface {
	ProjectHealth(ctx context.Context) (*dto.ProjectHealthSummary, error)
	ResourceUtilization(ctx context.Context) (*dto.ResourceUtilizationSummary, error)
	DeliverablesSummary(ctx context.Context) (*dto.DeliverablesSummary, error)
	// EngineeringSummary promedios de los últimos `days` días.
	EngineeringSummary(ctx context.Context, days int) (*dto.EngineeringSummary, error)
	QASummary(ctx context.Context, days int) (*dto.QASummary, error)
	// FinancialSummary agregados de los últimos `months` meses.
	FinancialSummary(ctx context.Context, months int) (*dto.FinancialSummary, error)
	HRSummary(ctx context.Context) (*dto.HRSummary, error)
}
