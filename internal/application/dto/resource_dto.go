package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResourceListItem fila del listado de recursos: recurso + nombre de departamento
// + conjunto de nombres de skills. Sin salario: la vista con salario es solo de HR.
type ResourceListItem struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	DepartmentID   int64      `json:"department_id"`
	DepartmentName *string    `json:"department_name"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	Level          string     `json:"level"`
	HireDate       *time.Time `json:"hire_date"`
	ManagerID      *int64     `json:"manager_id"`
	Location       *string    `json:"location"`
	Phone          *string    `json:"phone"`
	BenchReason    *string    `json:"bench_reason"`
	BenchStartDate *time.Time `json:"bench_start_date"`
	IsActive       bool       `json:"is_active"`
	Skills         []string   `json:"skills"`
}

// CreateResourceRequest alta de recurso. Fechas en formato YYYY-MM-DD.
type CreateResourceRequest struct {
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	DepartmentID int64            `json:"department_id"`
	Role         string           `json:"role"`
	Status       string           `json:"status"`
	Level        string           `json:"level"`
	Salary       *decimal.Decimal `json:"salary"`
	HireDate     *string          `json:"hire_date"`
	ManagerID    *int64           `json:"manager_id"`
	Location     *string          `json:"location"`
	Phone        *string          `json:"phone"`
	Skills       []int64          `json:"skills"`
}

// UpdateResourceRequest actualización de recurso. Skills es puntero para distinguir
// campo ausente (se conservan las skills) de lista vacía (se eliminan todas).
type UpdateResourceRequest struct {
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	DepartmentID int64            `json:"department_id"`
	Role         string           `json:"role"`
	Status       string           `json:"status"`
	Level        string           `json:"level"`
	Salary       *decimal.Decimal `json:"salary"`
	Location     *string          `json:"location"`
	Phone        *string          `json:"phone"`
	Skills       *[]int64         `json:"skills"`
}
