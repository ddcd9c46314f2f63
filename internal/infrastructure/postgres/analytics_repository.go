package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregaciones de solo lectura sobre recursos y skills.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// MonthlyTrends genera los últimos 6 meses calendario (incluido el actual) con
// los conteos por estado. No hay historial de estado, así que cada bucket
// reporta el conteo vigente bajo la etiqueta del mes.
func (r *AnalyticsRepo) MonthlyTrends(ctx context.Context) ([]dto.MonthlyTrend, error) {
	const query = `
		SELECT date_trunc('month', CURRENT_DATE) - make_interval(months => gs.offset_months) AS month,
		       counts.billable, counts.benched, counts.shadow, counts.associate, counts.total
		FROM generate_series(5, 0, -1) AS gs(offset_months)
		CROSS JOIN (
			SELECT COUNT(*) FILTER (WHERE status = 'Billable')  AS billable,
			       COUNT(*) FILTER (WHERE status = 'Benched')   AS benched,
			       COUNT(*) FILTER (WHERE status = 'Shadow')    AS shadow,
			       COUNT(*) FILTER (WHERE status = 'Associate') AS associate,
			       COUNT(*)                                     AS total
			FROM resources WHERE is_active = true
		) counts
		ORDER BY month`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("monthly trends: %w", err)
	}
	defer rows.Close()

	list := []dto.MonthlyTrend{}
	for rows.Next() {
		var t dto.MonthlyTrend
		if err := rows.Scan(&t.Month, &t.Billable, &t.Benched, &t.Shadow, &t.Associate, &t.Total); err != nil {
			return nil, fmt.Errorf("scan monthly trend: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// StatusDistribution conteo por estado con porcentaje sobre el total activo.
// NULLIF evita la división por cero cuando no hay recursos.
func (r *AnalyticsRepo) StatusDistribution(ctx context.Context) ([]dto.StatusCount, error) {
	const query = `
		SELECT status, COUNT(*) AS count,
		       ROUND(COUNT(*)::decimal / NULLIF(SUM(COUNT(*)) OVER (), 0) * 100, 1) AS percentage
		FROM resources
		WHERE is_active = true
		GROUP BY status
		ORDER BY count DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("status distribution: %w", err)
	}
	defer rows.Close()

	list := []dto.StatusCount{}
	for rows.Next() {
		var s dto.StatusCount
		if err := rows.Scan(&s.Status, &s.Count, &s.Percentage); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// DepartmentUtilization porcentaje billable por departamento. Los departamentos
// sin recursos activos salen con utilization null.
func (r *AnalyticsRepo) DepartmentUtilization(ctx context.Context) ([]dto.DepartmentUtilization, error) {
	const query = `
		SELECT d.name AS department,
		       COUNT(r.id) AS total,
		       COUNT(r.id) FILTER (WHERE r.status = 'Billable') AS billable,
		       ROUND(COUNT(r.id) FILTER (WHERE r.status = 'Billable')::decimal
		             / NULLIF(COUNT(r.id), 0) * 100, 1) AS utilization
		FROM departments d
		LEFT JOIN resources r ON r.department_id = d.id AND r.is_active = true
		GROUP BY d.name
		ORDER BY d.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("department utilization: %w", err)
	}
	defer rows.Close()

	list := []dto.DepartmentUtilization{}
	for rows.Next() {
		var u dto.DepartmentUtilization
		if err := rows.Scan(&u.Department, &u.Total, &u.Billable, &u.Utilization); err != nil {
			return nil, fmt.Errorf("scan department utilization: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// SkillDemand top 20 skills por número de recursos que las tienen.
func (r *AnalyticsRepo) SkillDemand(ctx context.Context) ([]dto.SkillDemand, error) {
	const query = `
		SELECT s.name AS skill, COUNT(rs.resource_id) AS count,
		       s.market_demand,
		       ROUND(AVG(rs.proficiency_level), 1) AS avg_proficiency
		FROM skills s
		JOIN resource_skills rs ON rs.skill_id = s.id
		JOIN resources r ON r.id = rs.resource_id AND r.is_active = true
		GROUP BY s.name, s.market_demand
		ORDER BY count DESC, s.name
		LIMIT 20`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("skill demand: %w", err)
	}
	defer rows.Close()

	list := []dto.SkillDemand{}
	for rows.Next() {
		var s dto.SkillDemand
		if err := rows.Scan(&s.Skill, &s.Count, &s.MarketDemand, &s.AvgProficiency); err != nil {
			return nil, fmt.Errorf("scan skill demand: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// BenchBreakdown desglose del banquillo por motivo, con porcentaje sobre el
// total en banquillo y días promedio desde bench_start_date. Los recursos sin
// motivo registrado quedan fuera del desglose.
func (r *AnalyticsRepo) BenchBreakdown(ctx context.Context) ([]dto.BenchReasonBreakdown, error) {
	const query = `
		SELECT bench_reason AS reason,
		       COUNT(*) AS count,
		       ROUND(COUNT(*)::decimal / NULLIF(SUM(COUNT(*)) OVER (), 0) * 100, 1) AS percentage,
		       ROUND(AVG(CURRENT_DATE - bench_start_date), 1) AS avg_days
		FROM resources
		WHERE status = 'Benched' AND is_active = true AND bench_reason IS NOT NULL
		GROUP BY bench_reason
		ORDER BY count DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("bench breakdown: %w", err)
	}
	defer rows.Close()

	list := []dto.BenchReasonBreakdown{}
	for rows.Next() {
		var b dto.BenchReasonBreakdown
		if err := rows.Scan(&b.Reason, &b.Count, &b.Percentage, &b.AvgDays); err != nil {
			return nil, fmt.Errorf("scan bench breakdown: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// BenchMonthlyCost suma de salary/12 de los recursos en banquillo; 0 si no hay.
func (r *AnalyticsRepo) BenchMonthlyCost(ctx context.Context) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(ROUND(SUM(salary / 12), 2), 0)
		FROM resources
		WHERE status = 'Benched' AND is_active = true AND salary IS NOT NULL`
	var cost decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&cost); err != nil {
		return decimal.Zero, fmt.Errorf("bench monthly cost: %w", err)
	}
	return cost, nil
}
