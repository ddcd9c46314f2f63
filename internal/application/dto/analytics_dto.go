package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTrend bucket mensual de la tendencia de asignación.
// Los recursos no guardan historial de estado, así que cada bucket reporta el
// conteo actual por estado con la etiqueta de mes correcta.
type MonthlyTrend struct {
	Month     time.Time `json:"month"`
	Billable  int64     `json:"billable"`
	Benched   int64     `json:"benched"`
	Shadow    int64     `json:"shadow"`
	Associate int64     `json:"associate"`
	Total     int64     `json:"total"`
}

// StatusCount conteo y porcentaje de recursos por estado.
// Percentage es nil solo si la tabla de recursos está vacía.
type StatusCount struct {
	Status     string           `json:"status"`
	Count      int64            `json:"count"`
	Percentage *decimal.Decimal `json:"percentage"`
}

// DepartmentUtilization utilización por departamento.
// Utilization es nil (no cero) para departamentos sin recursos.
type DepartmentUtilization struct {
	Department  string           `json:"department"`
	Total       int64            `json:"total"`
	Billable    int64            `json:"billable"`
	Utilization *decimal.Decimal `json:"utilization"`
}

// AllocationAnalyticsResponse respuesta de GET /api/analytics/allocation.
type AllocationAnalyticsResponse struct {
	MonthlyTrends         []MonthlyTrend          `json:"monthly_trends"`
	StatusDistribution    []StatusCount           `json:"status_distribution"`
	DepartmentUtilization []DepartmentUtilization `json:"department_utilization"`
}

// SkillDemand demanda de una skill: recursos que la tienen + proficiency promedio.
type SkillDemand struct {
	Skill          string           `json:"skill"`
	Count          int64            `json:"count"`
	MarketDemand   *string          `json:"market_demand"`
	AvgProficiency *decimal.Decimal `json:"avg_proficiency"`
}

// BenchReasonBreakdown desglose del banquillo por motivo.
type BenchReasonBreakdown struct {
	Reason     string           `json:"reason"`
	Count      int64            `json:"count"`
	Percentage *decimal.Decimal `json:"percentage"`
	AvgDays    *decimal.Decimal `json:"avg_days"`
}

// BenchAnalyticsResponse respuesta de GET /api/analytics/bench.
// MonthlyCost es 0 (no null) cuando no hay recursos en banquillo con salario.
type BenchAnalyticsResponse struct {
	BenchBreakdown []BenchReasonBreakdown `json:"bench_breakdown"`
	MonthlyCost    decimal.Decimal        `json:"monthly_cost"`
}
