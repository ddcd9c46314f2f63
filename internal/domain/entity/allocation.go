package entity

import "time"

// ProjectAllocation asignación de un recurso a un proyecto por un rango de fechas
// y un porcentaje de dedicación. No se valida solapamiento ni sobreasignación.
type ProjectAllocation struct {
	ID                   int64
	ProjectID            int64
	ResourceID           int64
	AllocationPercentage int
	StartDate            time.Time
	EndDate              *time.Time
	RoleInProject        *string
}
