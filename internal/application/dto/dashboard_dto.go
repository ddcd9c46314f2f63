package dto

import "github.com/shopspring/decimal"

// ProjectHealthSummary resumen de salud de proyectos activos.
type ProjectHealthSummary struct {
	TotalProjects  int64            `json:"total_projects"`
	GreenProjects  int64            `json:"green_projects"`
	YellowProjects int64            `json:"yellow_projects"`
	RedProjects    int64            `json:"red_projects"`
	AvgHealthScore *decimal.Decimal `json:"avg_health_score"`
}

// ResourceUtilizationSummary utilización global de recursos activos.
type ResourceUtilizationSummary struct {
	TotalResources    int64            `json:"total_resources"`
	BillableResources int64            `json:"billable_resources"`
	BenchedResources  int64            `json:"benched_resources"`
	UtilizationRate   *decimal.Decimal `json:"utilization_rate"`
}

// DeliverablesSummary resumen de entregables.
type DeliverablesSummary struct {
	TotalDeliverables     int64 `json:"total_deliverables"`
	CompletedDeliverables int64 `json:"completed_deliverables"`
	DelayedDeliverables   int64 `json:"delayed_deliverables"`
	OverdueDeliverables   int64 `json:"overdue_deliverables"`
}

// EngineeringSummary promedios de métricas de ingeniería (últimos 30 días).
// Punteros: sin filas en el período los promedios son null.
type EngineeringSummary struct {
	AvgCodeQuality    *decimal.Decimal `json:"avg_code_quality"`
	AvgTestCoverage   *decimal.Decimal `json:"avg_test_coverage"`
	TotalBugsReported *int64           `json:"total_bugs_reported"`
	TotalBugsResolved *int64           `json:"total_bugs_resolved"`
}

// QASummary promedios de métricas de QA (últimos 30 días).
type QASummary struct {
	AvgAutomationCoverage      *decimal.Decimal `json:"avg_automation_coverage"`
	AvgDefectRemovalEfficiency *decimal.Decimal `json:"avg_defect_removal_efficiency"`
	TotalTestCases             *int64           `json:"total_test_cases"`
	TotalPassed                *int64           `json:"total_passed"`
}

// FinancialSummary agregados financieros del trimestre (solo hr/leadership).
type FinancialSummary struct {
	TotalBudget     *decimal.Decimal `json:"total_budget"`
	TotalUtilized   *decimal.Decimal `json:"total_utilized"`
	TotalRevenue    *decimal.Decimal `json:"total_revenue"`
	AvgProfitMargin *decimal.Decimal `json:"avg_profit_margin"`
	AvgBurnRate     *decimal.Decimal `json:"avg_burn_rate"`
}

// HRSummary promedios salariales de recursos activos (solo hr).
type HRSummary struct {
	AvgSalary                *decimal.Decimal `json:"avg_salary"`
	AvgTotalCompensation     *decimal.Decimal `json:"avg_total_compensation"`
	TotalEmployeesWithSalary int64            `json:"total_employees_with_salary"`
}

// DashboardOverview respuesta compuesta de GET /api/dashboard/overview.
// Financial y HRMetrics se incluyen solo según el rol del solicitante.
type DashboardOverview struct {
	ProjectHealth       *ProjectHealthSummary       `json:"project_health"`
	ResourceUtilization *ResourceUtilizationSummary `json:"resource_utilization"`
	Deliverables        *DeliverablesSummary        `json:"deliverables"`
	EngineeringMetrics  *EngineeringSummary         `json:"engineering_metrics"`
	QAMetrics           *QASummary                  `json:"qa_metrics"`
	Financial           *FinancialSummary           `json:"financial,omitempty"`
	HRMetrics           *HRSummary                  `json:"hr_metrics,omitempty"`
}
