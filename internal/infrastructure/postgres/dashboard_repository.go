package postgres

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo agregaciones de una fila para el overview compuesto.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ProjectHealth conteos por semáforo de los proyectos activos.
func (r *DashboardRepo) ProjectHealth(ctx context.Context) (*dto.ProjectHealthSummary, error) {
	const query = `
		SELECT COUNT(*) AS total_projects,
		       COUNT(*) FILTER (WHERE health_status = 'Green')  AS green_projects,
		       COUNT(*) FILTER (WHERE health_status = 'Yellow') AS yellow_projects,
		       COUNT(*) FILTER (WHERE health_status = 'Red')    AS red_projects,
		       ROUND(AVG(health_score), 1) AS avg_health_score
		FROM projects
		WHERE is_active = true`
	var s dto.ProjectHealthSummary
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalProjects, &s.GreenProjects, &s.YellowProjects, &s.RedProjects, &s.AvgHealthScore,
	)
	if err != nil {
		return nil, fmt.Errorf("project health summary: %w", err)
	}
	return &s, nil
}

// ResourceUtilization utilización global de recursos activos.
func (r *DashboardRepo) ResourceUtilization(ctx context.Context) (*dto.ResourceUtilizationSummary, error) {
	const query = `
		SELECT COUNT(*) AS total_resources,
		       COUNT(*) FILTER (WHERE status = 'Billable') AS billable_resources,
		       COUNT(*) FILTER (WHERE status = 'Benched')  AS benched_resources,
		       ROUND(COUNT(*) FILTER (WHERE status = 'Billable')::decimal
		             / NULLIF(COUNT(*), 0) * 100, 1) AS utilization_rate
		FROM resources
		WHERE is_active = true`
	var s dto.ResourceUtilizationSummary
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalResources, &s.BillableResources, &s.BenchedResources, &s.UtilizationRate,
	)
	if err != nil {
		return nil, fmt.Errorf("resource utilization summary: %w", err)
	}
	return &s, nil
}

// DeliverablesSummary conteos globales de entregables. Overdue = vencido y no
// completado a fecha de hoy.
func (r *DashboardRepo) DeliverablesSummary(ctx context.Context) (*dto.DeliverablesSummary, error) {
	const query = `
		SELECT COUNT(*) AS total_deliverables,
		       COUNT(*) FILTER (WHERE status = 'Completed') AS completed_deliverables,
		       COUNT(*) FILTER (WHERE status = 'Delayed')   AS delayed_deliverables,
		       COUNT(*) FILTER (WHERE due_date < CURRENT_DATE AND status <> 'Completed') AS overdue_deliverables
		FROM deliverables`
	var s dto.DeliverablesSummary
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalDeliverables, &s.CompletedDeliverables, &s.DelayedDeliverables, &s.OverdueDeliverables,
	)
	if err != nil {
		return nil, fmt.Errorf("deliverables summary: %w", err)
	}
	return &s, nil
}

// EngineeringSummary promedios y totales de los últimos `days` días. Sin filas
// en el período todos los campos quedan en null.
func (r *DashboardRepo) EngineeringSummary(ctx context.Context, days int) (*dto.EngineeringSummary, error) {
	const query = `
		SELECT ROUND(AVG(code_quality_score), 1) AS avg_code_quality,
		       ROUND(AVG(test_coverage), 1)      AS avg_test_coverage,
		       SUM(bugs_reported) AS total_bugs_reported,
		       SUM(bugs_resolved) AS total_bugs_resolved
		FROM engineering_metrics
		WHERE metric_date >= CURRENT_DATE - $1::int`
	var s dto.EngineeringSummary
	err := r.q.QueryRow(ctx, query, days).Scan(
		&s.AvgCodeQuality, &s.AvgTestCoverage, &s.TotalBugsReported, &s.TotalBugsResolved,
	)
	if err != nil {
		return nil, fmt.Errorf("engineering summary: %w", err)
	}
	return &s, nil
}

// QASummary promedios y totales de QA de los últimos `days` días.
func (r *DashboardRepo) QASummary(ctx context.Context, days int) (*dto.QASummary, error) {
	const query = `
		SELECT ROUND(AVG(automation_coverage), 1)       AS avg_automation_coverage,
		       ROUND(AVG(defect_removal_efficiency), 1) AS avg_defect_removal_efficiency,
		       SUM(test_cases_total)  AS total_test_cases,
		       SUM(test_cases_passed) AS total_passed
		FROM qa_metrics
		WHERE metric_date >= CURRENT_DATE - $1::int`
	var s dto.QASummary
	err := r.q.QueryRow(ctx, query, days).Scan(
		&s.AvgAutomationCoverage, &s.AvgDefectRemovalEfficiency, &s.TotalTestCases, &s.TotalPassed,
	)
	if err != nil {
		return nil, fmt.Errorf("qa summary: %w", err)
	}
	return &s, nil
}

// FinancialSummary agregados financieros de los últimos `months` meses.
func (r *DashboardRepo) FinancialSummary(ctx context.Context, months int) (*dto.FinancialSummary, error) {
	const query = `
		SELECT SUM(budget_allocated)   AS total_budget,
		       SUM(budget_utilized)    AS total_utilized,
		       SUM(revenue_generated)  AS total_revenue,
		       ROUND(AVG(profit_margin), 1) AS avg_profit_margin,
		       ROUND(AVG(burn_rate), 2)     AS avg_burn_rate
		FROM financial_tracking
		WHERE period_start >= CURRENT_DATE - make_interval(months => $1)`
	var s dto.FinancialSummary
	err := r.q.QueryRow(ctx, query, months).Scan(
		&s.TotalBudget, &s.TotalUtilized, &s.TotalRevenue, &s.AvgProfitMargin, &s.AvgBurnRate,
	)
	if err != nil {
		return nil, fmt.Errorf("financial summary: %w", err)
	}
	return &s, nil
}

// HRSummary promedios salariales sobre recursos activos con detalle salarial.
func (r *DashboardRepo) HRSummary(ctx context.Context) (*dto.HRSummary, error) {
	const query = `
		SELECT ROUND(AVG(sd.base_salary), 2)        AS avg_salary,
		       ROUND(AVG(sd.total_compensation), 2) AS avg_total_compensation,
		       COUNT(sd.resource_id) AS total_employees_with_salary
		FROM salary_details sd
		JOIN resources r ON r.id = sd.resource_id AND r.is_active = true`
	var s dto.HRSummary
	err := r.q.QueryRow(ctx, query).Scan(
		&s.AvgSalary, &s.AvgTotalCompensation, &s.TotalEmployeesWithSalary,
	)
	if err != nil {
		return nil, fmt.Errorf("hr summary: %w", err)
	}
	return &s, nil
}
