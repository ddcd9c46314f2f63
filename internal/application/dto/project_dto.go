package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectListItem fila del listado de proyectos: proyecto + nombre de cliente,
// nombre del manager y número de asignaciones.
type ProjectListItem struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Description     *string          `json:"description"`
	ClientID        int64            `json:"client_id"`
	ClientName      *string          `json:"client_name"`
	ManagerID       int64            `json:"manager_id"`
	ManagerName     *string          `json:"manager_name"`
	Status          string           `json:"status"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	Budget          *decimal.Decimal `json:"budget"`
	Priority        string           `json:"priority"`
	TechnologyStack []string         `json:"technology_stack"`
	HealthStatus    *string          `json:"health_status"`
	HealthScore     *decimal.Decimal `json:"health_score"`
	IsActive        bool             `json:"is_active"`
	ResourceCount   int64            `json:"resource_count"`
}

// CreateProjectRequest alta de proyecto. Fechas en formato YYYY-MM-DD.
type CreateProjectRequest struct {
	Name            string           `json:"name"`
	Description     *string          `json:"description"`
	ClientID        int64            `json:"client_id"`
	ManagerID       int64            `json:"manager_id"`
	Status          string           `json:"status"`
	StartDate       string           `json:"start_date"`
	EndDate         string           `json:"end_date"`
	Budget          *decimal.Decimal `json:"budget"`
	Priority        string           `json:"priority"`
	TechnologyStack []string         `json:"technology_stack"`
}
