package dto

// CreateAllocationRequest alta de asignación recurso-proyecto.
// AllocationPercentage por defecto 100 si se omite.
type CreateAllocationRequest struct {
	ProjectID            int64   `json:"project_id"`
	ResourceID           int64   `json:"resource_id"`
	AllocationPercentage *int    `json:"allocation_percentage"`
	StartDate            string  `json:"start_date"`
	EndDate              *string `json:"end_date"`
	RoleInProject        *string `json:"role_in_project"`
}
