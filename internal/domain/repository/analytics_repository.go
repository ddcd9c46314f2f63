package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
)

// AnalyticsRepository consultas de agregación de solo lectura sobre recursos.
// Cada método es una consulta de forma fija sin efectos de escritura.
type AnalyticsRepository interface {
	// MonthlyTrends buckets de los últimos 6 meses calendario, incluido el actual.
	MonthlyTrends(ctx context.Context) ([]dto.MonthlyTrend, error)
	// StatusDistribution conteo y porcentaje por estado, ordenado por conteo.
	StatusDistribution(ctx context.Context) ([]dto.StatusCount, error)
	// DepartmentUtilization porcentaje billable por departamento (null si está vacío).
	DepartmentUtilization(ctx context.Context) ([]dto.DepartmentUtilization, error)
	// SkillDemand top 20 skills con al menos un recurso que la tenga.
	SkillDemand(ctx context.Context) ([]dto.SkillDemand, error)
	// BenchBreakdown desglose por motivo de banquillo con días promedio.
	BenchBreakdown(ctx context.Context) ([]dto.BenchReasonBreakdown, error)
	// BenchMonthlyCost suma de salary/12 de los recursos en banquillo con salario
	// conocido; 0 si no hay ninguno.
	BenchMonthlyCost(ctx context.Context) (decimal.Decimal, error)
}
