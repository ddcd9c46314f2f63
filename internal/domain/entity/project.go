package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project proyecto de cliente gestionado por un Resource.
type Project struct {
	ID              int64
	Name            string
	Description     *string
	ClientID        int64
	ManagerID       int64 // referencia a Resource
	Status          string
	StartDate       time.Time
	EndDate         time.Time
	Budget          *decimal.Decimal
	Priority        string
	TechnologyStack []string
	HealthStatus    *string // Green, Yellow, Red
	HealthScore     *decimal.Decimal
	IsActive        bool
}
