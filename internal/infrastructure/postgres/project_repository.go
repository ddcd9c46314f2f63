package postgres

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación del puerto ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// List devuelve los proyectos con cliente, manager y número de asignaciones,
// ordenados por fecha de inicio descendente.
func (r *ProjectRepo) List(ctx context.Context) ([]dto.ProjectListItem, error) {
	const query = `
		SELECT p.id, p.name, p.description, p.client_id, c.name AS client_name,
		       p.manager_id, pm.name AS manager_name, p.status, p.start_date,
		       p.end_date, p.budget, p.priority,
		       COALESCE(p.technology_stack, '{}') AS technology_stack,
		       p.health_status, p.health_score, p.is_active,
		       COUNT(pa.resource_id) AS resource_count
		FROM projects p
		LEFT JOIN clients c ON p.client_id = c.id
		LEFT JOIN resources pm ON p.manager_id = pm.id
		LEFT JOIN project_allocations pa ON pa.project_id = p.id
		GROUP BY p.id, c.name, pm.name
		ORDER BY p.start_date DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	list := []dto.ProjectListItem{}
	for rows.Next() {
		var item dto.ProjectListItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.ClientID, &item.ClientName,
			&item.ManagerID, &item.ManagerName, &item.Status, &item.StartDate,
			&item.EndDate, &item.Budget, &item.Priority, &item.TechnologyStack,
			&item.HealthStatus, &item.HealthScore, &item.IsActive, &item.ResourceCount,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Create inserta el proyecto y devuelve el id generado.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) (int64, error) {
	const query = `
		INSERT INTO projects (name, description, client_id, manager_id, status,
		                      start_date, end_date, budget, priority, technology_stack)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Description, p.ClientID, p.ManagerID, p.Status,
		p.StartDate, p.EndDate, p.Budget, p.Priority, p.TechnologyStack,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: unknown client or manager", domain.ErrInvalidInput)
		}
		return 0, fmt.Errorf("insert project: %w", err)
	}
	return id, nil
}

var _ repository.AllocationRepository = (*AllocationRepo)(nil)

// AllocationRepo implementación del puerto AllocationRepository (usable con pool o tx).
type AllocationRepo struct {
	q Querier
}

// NewAllocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAllocationRepository(q Querier) *AllocationRepo {
	return &AllocationRepo{q: q}
}

// Create inserta la asignación y devuelve el id generado. No valida
// solapamiento ni porcentaje acumulado.
func (r *AllocationRepo) Create(ctx context.Context, a *entity.ProjectAllocation) (int64, error) {
	const query = `
		INSERT INTO project_allocations (project_id, resource_id, allocation_percentage,
		                                 start_date, end_date, role_in_project)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		a.ProjectID, a.ResourceID, a.AllocationPercentage,
		a.StartDate, a.EndDate, a.RoleInProject,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: unknown project or resource", domain.ErrInvalidInput)
		}
		return 0, fmt.Errorf("insert allocation: %w", err)
	}
	return id, nil
}
