package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectHealthRow fila de GET /api/projects/health: salud por proyecto activo
// con conteos de entregables y escalaciones abiertas.
type ProjectHealthRow struct {
	ProjectID             int64            `json:"project_id"`
	Name                  string           `json:"name"`
	Status                string           `json:"status"`
	HealthStatus          *string          `json:"health_status"`
	HealthScore           *decimal.Decimal `json:"health_score"`
	TotalDeliverables     int64            `json:"total_deliverables"`
	CompletedDeliverables int64            `json:"completed_deliverables"`
	OverdueDeliverables   int64            `json:"overdue_deliverables"`
	OpenEscalations       int64            `json:"open_escalations"`
}

// DeliverableRow entregable con nombres de proyecto y asignado.
type DeliverableRow struct {
	ID             int64      `json:"id"`
	ProjectID      int64      `json:"project_id"`
	ProjectName    *string    `json:"project_name"`
	Name           string     `json:"name"`
	AssignedTo     *int64     `json:"assigned_to"`
	AssignedToName *string    `json:"assigned_to_name"`
	Status         string     `json:"status"`
	DueDate        *time.Time `json:"due_date"`
}

// EngineeringMetricRow métrica diaria de ingeniería por proyecto.
type EngineeringMetricRow struct {
	ID               int64            `json:"id"`
	ProjectID        int64            `json:"project_id"`
	ProjectName      *string          `json:"project_name"`
	MetricDate       time.Time        `json:"metric_date"`
	CodeQualityScore *decimal.Decimal `json:"code_quality_score"`
	TestCoverage     *decimal.Decimal `json:"test_coverage"`
	BugsReported     int64            `json:"bugs_reported"`
	BugsResolved     int64            `json:"bugs_resolved"`
}

// QAMetricRow métrica diaria de QA por proyecto.
type QAMetricRow struct {
	ID                      int64            `json:"id"`
	ProjectID               int64            `json:"project_id"`
	ProjectName             *string          `json:"project_name"`
	MetricDate              time.Time        `json:"metric_date"`
	AutomationCoverage      *decimal.Decimal `json:"automation_coverage"`
	DefectRemovalEfficiency *decimal.Decimal `json:"defect_removal_efficiency"`
	TestCasesTotal          int64            `json:"test_cases_total"`
	TestCasesPassed         int64            `json:"test_cases_passed"`
}

// EscalationRow escalación con nombres de proyecto, creador y asignado.
type EscalationRow struct {
	ID             int64     `json:"id"`
	ProjectID      int64     `json:"project_id"`
	ProjectName    *string   `json:"project_name"`
	Title          string    `json:"title"`
	RaisedBy       *int64    `json:"raised_by"`
	RaisedByName   *string   `json:"raised_by_name"`
	AssignedTo     *int64    `json:"assigned_to"`
	AssignedToName *string   `json:"assigned_to_name"`
	Status         string    `json:"status"`
	RaisedDate     time.Time `json:"raised_date"`
}

// FinancialMonthRow agregados financieros de un mes calendario.
type FinancialMonthRow struct {
	Month           time.Time        `json:"month"`
	TotalBudget     *decimal.Decimal `json:"total_budget"`
	TotalUtilized   *decimal.Decimal `json:"total_utilized"`
	TotalRevenue    *decimal.Decimal `json:"total_revenue"`
	AvgProfitMargin *decimal.Decimal `json:"avg_profit_margin"`
	AvgBurnRate     *decimal.Decimal `json:"avg_burn_rate"`
}

// DepartmentPerformanceRow desempeño por departamento.
type DepartmentPerformanceRow struct {
	Department        string           `json:"department"`
	TotalResources    int64            `json:"total_resources"`
	BillableResources int64            `json:"billable_resources"`
	Utilization       *decimal.Decimal `json:"utilization"`
	ManagedProjects   int64            `json:"managed_projects"`
	AvgProjectHealth  *decimal.Decimal `json:"avg_project_health"`
}

// HRResourceRow vista de recursos con salario (solo hr).
type HRResourceRow struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	DepartmentName    *string          `json:"department_name"`
	Role              string           `json:"role"`
	Status            string           `json:"status"`
	Level             string           `json:"level"`
	HireDate          *time.Time       `json:"hire_date"`
	Salary            *decimal.Decimal `json:"salary"`
	BaseSalary        *decimal.Decimal `json:"base_salary"`
	TotalCompensation *decimal.Decimal `json:"total_compensation"`
}

// CompanyKpiRow hecho de KPI corporativo.
type CompanyKpiRow struct {
	ID        int64            `json:"id"`
	KpiDate   time.Time        `json:"kpi_date"`
	KpiName   string           `json:"kpi_name"`
	KpiValue  decimal.Decimal  `json:"kpi_value"`
	KpiTarget *decimal.Decimal `json:"kpi_target"`
	Category  *string          `json:"category"`
}
