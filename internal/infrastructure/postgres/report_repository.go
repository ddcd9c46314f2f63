package postgres

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo listados y series de solo lectura del módulo enterprise.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ProjectsHealth salud por proyecto activo con conteos de entregables y
// escalaciones abiertas.
func (r *ReportRepo) ProjectsHealth(ctx context.Context) ([]dto.ProjectHealthRow, error) {
	const query = `
		SELECT p.id, p.name, p.status, p.health_status, p.health_score,
		       COUNT(DISTINCT d.id) AS total_deliverables,
		       COUNT(DISTINCT d.id) FILTER (WHERE d.status = 'Completed') AS completed_deliverables,
		       COUNT(DISTINCT d.id) FILTER (WHERE d.due_date < CURRENT_DATE AND d.status <> 'Completed') AS overdue_deliverables,
		       COUNT(DISTINCT e.id) FILTER (WHERE e.status = 'Open') AS open_escalations
		FROM projects p
		LEFT JOIN deliverables d ON d.project_id = p.id
		LEFT JOIN escalations e ON e.project_id = p.id
		WHERE p.is_active = true
		GROUP BY p.id
		ORDER BY p.health_score DESC NULLS LAST, p.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("projects health: %w", err)
	}
	defer rows.Close()

	list := []dto.ProjectHealthRow{}
	for rows.Next() {
		var row dto.ProjectHealthRow
		if err := rows.Scan(
			&row.ProjectID, &row.Name, &row.Status, &row.HealthStatus, &row.HealthScore,
			&row.TotalDeliverables, &row.CompletedDeliverables, &row.OverdueDeliverables,
			&row.OpenEscalations,
		); err != nil {
			return nil, fmt.Errorf("scan project health: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Deliverables listado de entregables; projectID nil y status vacío = sin filtro.
func (r *ReportRepo) Deliverables(ctx context.Context, projectID *int64, status string) ([]dto.DeliverableRow, error) {
	query := `
		SELECT d.id, d.project_id, p.name AS project_name, d.name,
		       d.assigned_to, res.name AS assigned_to_name, d.status, d.due_date
		FROM deliverables d
		LEFT JOIN projects p ON p.id = d.project_id
		LEFT JOIN resources res ON res.id = d.assigned_to
		WHERE 1=1`
	var args []any
	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(" AND d.project_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND d.status = $%d", len(args))
	}
	query += " ORDER BY d.due_date ASC NULLS LAST"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliverables: %w", err)
	}
	defer rows.Close()

	list := []dto.DeliverableRow{}
	for rows.Next() {
		var row dto.DeliverableRow
		if err := rows.Scan(
			&row.ID, &row.ProjectID, &row.ProjectName, &row.Name,
			&row.AssignedTo, &row.AssignedToName, &row.Status, &row.DueDate,
		); err != nil {
			return nil, fmt.Errorf("scan deliverable: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// EngineeringMetrics métricas diarias de los últimos `days` días.
func (r *ReportRepo) EngineeringMetrics(ctx context.Context, projectID *int64, days int) ([]dto.EngineeringMetricRow, error) {
	query := `
		SELECT m.id, m.project_id, p.name AS project_name, m.metric_date,
		       m.code_quality_score, m.test_coverage, m.bugs_reported, m.bugs_resolved
		FROM engineering_metrics m
		LEFT JOIN projects p ON p.id = m.project_id
		WHERE m.metric_date >= CURRENT_DATE - $1::int`
	args := []any{days}
	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(" AND m.project_id = $%d", len(args))
	}
	query += " ORDER BY m.metric_date DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list engineering metrics: %w", err)
	}
	defer rows.Close()

	list := []dto.EngineeringMetricRow{}
	for rows.Next() {
		var row dto.EngineeringMetricRow
		if err := rows.Scan(
			&row.ID, &row.ProjectID, &row.ProjectName, &row.MetricDate,
			&row.CodeQualityScore, &row.TestCoverage, &row.BugsReported, &row.BugsResolved,
		); err != nil {
			return nil, fmt.Errorf("scan engineering metric: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// QAMetrics métricas de QA de los últimos `days` días.
func (r *ReportRepo) QAMetrics(ctx context.Context, projectID *int64, days int) ([]dto.QAMetricRow, error) {
	query := `
		SELECT m.id, m.project_id, p.name AS project_name, m.metric_date,
		       m.automation_coverage, m.defect_removal_efficiency,
		       m.test_cases_total, m.test_cases_passed
		FROM qa_metrics m
		LEFT JOIN projects p ON p.id = m.project_id
		WHERE m.metric_date >= CURRENT_DATE - $1::int`
	args := []any{days}
	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(" AND m.project_id = $%d", len(args))
	}
	query += " ORDER BY m.metric_date DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list qa metrics: %w", err)
	}
	defer rows.Close()

	list := []dto.QAMetricRow{}
	for rows.Next() {
		var row dto.QAMetricRow
		if err := rows.Scan(
			&row.ID, &row.ProjectID, &row.ProjectName, &row.MetricDate,
			&row.AutomationCoverage, &row.DefectRemovalEfficiency,
			&row.TestCasesTotal, &row.TestCasesPassed,
		); err != nil {
			return nil, fmt.Errorf("scan qa metric: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Escalations listado de escalaciones; status vacío = sin filtro por estado.
func (r *ReportRepo) Escalations(ctx context.Context, projectID *int64, status string) ([]dto.EscalationRow, error) {
	query := `
		SELECT e.id, e.project_id, p.name AS project_name, e.title,
		       e.raised_by, rb.name AS raised_by_name,
		       e.assigned_to, asg.name AS assigned_to_name,
		       e.status, e.raised_date
		FROM escalations e
		LEFT JOIN projects p ON p.id = e.project_id
		LEFT JOIN resources rb ON rb.id = e.raised_by
		LEFT JOIN resources asg ON asg.id = e.assigned_to
		WHERE 1=1`
	var args []any
	if projectID != nil {
		args = append(args, *projectID)
		query += fmt.Sprintf(" AND e.project_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND e.status = $%d", len(args))
	}
	query += " ORDER BY e.raised_date DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list escalations: %w", err)
	}
	defer rows.Close()

	list := []dto.EscalationRow{}
	for rows.Next() {
		var row dto.EscalationRow
		if err := rows.Scan(
			&row.ID, &row.ProjectID, &row.ProjectName, &row.Title,
			&row.RaisedBy, &row.RaisedByName, &row.AssignedTo, &row.AssignedToName,
			&row.Status, &row.RaisedDate,
		); err != nil {
			return nil, fmt.Errorf("scan escalation: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// FinancialOverview agregados por mes calendario de los últimos `months` meses,
// el mes más reciente primero.
func (r *ReportRepo) FinancialOverview(ctx context.Context, months int) ([]dto.FinancialMonthRow, error) {
	const query = `
		SELECT date_trunc('month', period_start) AS month,
		       SUM(budget_allocated)   AS total_budget,
		       SUM(budget_utilized)    AS total_utilized,
		       SUM(revenue_generated)  AS total_revenue,
		       ROUND(AVG(profit_margin), 1) AS avg_profit_margin,
		       ROUND(AVG(burn_rate), 2)     AS avg_burn_rate
		FROM financial_tracking
		WHERE period_start >= CURRENT_DATE - make_interval(months => $1)
		GROUP BY date_trunc('month', period_start)
		ORDER BY month DESC`

	rows, err := r.q.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("financial overview: %w", err)
	}
	defer rows.Close()

	list := []dto.FinancialMonthRow{}
	for rows.Next() {
		var row dto.FinancialMonthRow
		if err := rows.Scan(
			&row.Month, &row.TotalBudget, &row.TotalUtilized,
			&row.TotalRevenue, &row.AvgProfitMargin, &row.AvgBurnRate,
		); err != nil {
			return nil, fmt.Errorf("scan financial month: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// DepartmentPerformance utilización y salud de proyectos por departamento.
// La salud promedio se toma de los proyectos gestionados por recursos del
// departamento.
func (r *ReportRepo) DepartmentPerformance(ctx context.Context) ([]dto.DepartmentPerformanceRow, error) {
	const query = `
		SELECT d.name AS department,
		       COUNT(DISTINCT r.id) AS total_resources,
		       COUNT(DISTINCT r.id) FILTER (WHERE r.status = 'Billable') AS billable_resources,
		       ROUND(COUNT(DISTINCT r.id) FILTER (WHERE r.status = 'Billable')::decimal
		             / NULLIF(COUNT(DISTINCT r.id), 0) * 100, 1) AS utilization,
		       COUNT(DISTINCT p.id) AS managed_projects,
		       ROUND(AVG(p.health_score), 1) AS avg_project_health
		FROM departments d
		LEFT JOIN resources r ON r.department_id = d.id AND r.is_active = true
		LEFT JOIN projects p ON p.manager_id = r.id AND p.is_active = true
		GROUP BY d.name
		ORDER BY d.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("department performance: %w", err)
	}
	defer rows.Close()

	list := []dto.DepartmentPerformanceRow{}
	for rows.Next() {
		var row dto.DepartmentPerformanceRow
		if err := rows.Scan(
			&row.Department, &row.TotalResources, &row.BillableResources,
			&row.Utilization, &row.ManagedProjects, &row.AvgProjectHealth,
		); err != nil {
			return nil, fmt.Errorf("scan department performance: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// HRResources roster con salario y compensación total. Vista reservada a HR.
func (r *ReportRepo) HRResources(ctx context.Context) ([]dto.HRResourceRow, error) {
	const query = `
		SELECT r.id, r.name, r.email, d.name AS department_name, r.role,
		       r.status, r.level, r.hire_date, r.salary,
		       sd.base_salary, sd.total_compensation
		FROM resources r
		LEFT JOIN departments d ON d.id = r.department_id
		LEFT JOIN salary_details sd ON sd.resource_id = r.id
		WHERE r.is_active = true
		ORDER BY r.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("hr resources: %w", err)
	}
	defer rows.Close()

	list := []dto.HRResourceRow{}
	for rows.Next() {
		var row dto.HRResourceRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Email, &row.DepartmentName, &row.Role,
			&row.Status, &row.Level, &row.HireDate, &row.Salary,
			&row.BaseSalary, &row.TotalCompensation,
		); err != nil {
			return nil, fmt.Errorf("scan hr resource: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CompanyKpis hechos de KPI de los últimos `days` días, más recientes primero.
func (r *ReportRepo) CompanyKpis(ctx context.Context, days int) ([]dto.CompanyKpiRow, error) {
	const query = `
		SELECT id, kpi_date, kpi_name, kpi_value, kpi_target, category
		FROM company_kpis
		WHERE kpi_date >= CURRENT_DATE - $1::int
		ORDER BY kpi_date DESC, kpi_name`

	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("company kpis: %w", err)
	}
	defer rows.Close()

	list := []dto.CompanyKpiRow{}
	for rows.Next() {
		var row dto.CompanyKpiRow
		if err := rows.Scan(
			&row.ID, &row.KpiDate, &row.KpiName, &row.KpiValue, &row.KpiTarget, &row.Category,
		); err != nil {
			return nil, fmt.Errorf("scan company kpi: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
