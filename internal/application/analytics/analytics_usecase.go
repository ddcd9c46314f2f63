// Package analytics contiene los casos de uso de analítica de staffing y el
// overview compuesto del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

// AnalyticsUseCase agregados de asignación, skills y banquillo.
// Fuente de datos: AnalyticsRepository (consultas read-only); aquí solo se
// componen las respuestas.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// AllocationAnalytics tendencia mensual + distribución por estado + utilización
// por departamento, en tres consultas secuenciales.
func (uc *AnalyticsUseCase) AllocationAnalytics(ctx context.Context) (*dto.AllocationAnalyticsResponse, error) {
	trends, err := uc.analyticsRepo.MonthlyTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocation analytics: monthly trends: %w", err)
	}
	statuses, err := uc.analyticsRepo.StatusDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocation analytics: status distribution: %w", err)
	}
	departments, err := uc.analyticsRepo.DepartmentUtilization(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocation analytics: department utilization: %w", err)
	}
	return &dto.AllocationAnalyticsResponse{
		MonthlyTrends:         emptyIfNil(trends),
		StatusDistribution:    emptyIfNil(statuses),
		DepartmentUtilization: emptyIfNil(departments),
	}, nil
}

// SkillDemand top 20 skills por número de recursos que las tienen.
func (uc *AnalyticsUseCase) SkillDemand(ctx context.Context) ([]dto.SkillDemand, error) {
	skills, err := uc.analyticsRepo.SkillDemand(ctx)
	if err != nil {
		return nil, fmt.Errorf("skill demand: %w", err)
	}
	return emptyIfNil(skills), nil
}

// BenchAnalytics desglose del banquillo + costo mensual. Sin recursos en
// banquillo devuelve lista vacía y costo 0, nunca null ni división por cero.
func (uc *AnalyticsUseCase) BenchAnalytics(ctx context.Context) (*dto.BenchAnalyticsResponse, error) {
	breakdown, err := uc.analyticsRepo.BenchBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("bench analytics: breakdown: %w", err)
	}
	cost, err := uc.analyticsRepo.BenchMonthlyCost(ctx)
	if err != nil {
		return nil, fmt.Errorf("bench analytics: monthly cost: %w", err)
	}
	return &dto.BenchAnalyticsResponse{
		BenchBreakdown: emptyIfNil(breakdown),
		MonthlyCost:    cost,
	}, nil
}

// emptyIfNil normaliza slices nil a vacíos para que el JSON sea [] y no null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
