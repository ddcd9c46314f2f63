package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un recurso. Crear una asignación fuerza la transición a Billable;
// ninguna otra transición es automática.
const (
	StatusAvailable = "Available"
	StatusBillable  = "Billable"
	StatusBenched   = "Benched"
	StatusShadow    = "Shadow"
	StatusAssociate = "Associate"
)

// Niveles de seniority.
const (
	LevelJunior = "Junior"
	LevelSenior = "Senior"
)

// Resource empleado/consultor registrado para staffing.
type Resource struct {
	ID             int64
	Name           string
	Email          string
	DepartmentID   int64
	Role           string
	Status         string
	Level          string
	Salary         *decimal.Decimal
	HireDate       *time.Time
	ManagerID      *int64 // autorreferencia a otro Resource
	Location       *string
	Phone          *string
	BenchReason    *string
	BenchStartDate *time.Time
	IsActive       bool
}
