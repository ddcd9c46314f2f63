package analytics

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

// Ventanas fijas del overview.
const (
	overviewMetricDays    = 30 // métricas de ingeniería y QA
	overviewFinanceMonths = 3  // resumen financiero
)

// DashboardUseCase compone el overview del dashboard: secciones comunes para
// todos los roles más financial (hr/leadership) y hr_metrics (hr).
//
// Las consultas van en secuencia sobre una misma conexión del pool; el modelo
// de request de este servicio es una secuencia corta y fija de statements.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// Overview reúne todas las secciones en un solo objeto. El gating por rol es
// una función pura del claim verificado: no se vuelve a consultar al usuario.
func (uc *DashboardUseCase) Overview(ctx context.Context, role string) (*dto.DashboardOverview, error) {
	projectHealth, err := uc.dashboardRepo.ProjectHealth(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: project health: %w", err)
	}
	utilization, err := uc.dashboardRepo.ResourceUtilization(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resource utilization: %w", err)
	}
	deliverables, err := uc.dashboardRepo.DeliverablesSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: deliverables: %w", err)
	}
	engineering, err := uc.dashboardRepo.EngineeringSummary(ctx, overviewMetricDays)
	if err != nil {
		return nil, fmt.Errorf("dashboard: engineering metrics: %w", err)
	}
	qa, err := uc.dashboardRepo.QASummary(ctx, overviewMetricDays)
	if err != nil {
		return nil, fmt.Errorf("dashboard: qa metrics: %w", err)
	}

	overview := &dto.DashboardOverview{
		ProjectHealth:       projectHealth,
		ResourceUtilization: utilization,
		Deliverables:        deliverables,
		EngineeringMetrics:  engineering,
		QAMetrics:           qa,
	}

	if role == entity.RoleHR || role == entity.RoleLeadership {
		financial, err := uc.dashboardRepo.FinancialSummary(ctx, overviewFinanceMonths)
		if err != nil {
			return nil, fmt.Errorf("dashboard: financial summary: %w", err)
		}
		overview.Financial = financial
	}
	if role == entity.RoleHR {
		hr, err := uc.dashboardRepo.HRSummary(ctx)
		if err != nil {
			return nil, fmt.Errorf("dashboard: hr metrics: %w", err)
		}
		overview.HRMetrics = hr
	}

	return overview, nil
}
