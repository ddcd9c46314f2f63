package postgres

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

// ResourceRepo implementación del puerto ResourceRepository (usable con pool o tx).
type ResourceRepo struct {
	q Querier
}

// NewResourceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResourceRepository(q Querier) *ResourceRepo {
	return &ResourceRepo{q: q}
}

// List devuelve los recursos con nombre de departamento y el set de skills,
// ordenados por nombre. status vacío = sin filtro. Sin paginación: el
// dashboard consume siempre el roster completo.
func (r *ResourceRepo) List(ctx context.Context, status string) ([]dto.ResourceListItem, error) {
	query := `
		SELECT r.id, r.name, r.email, r.department_id, d.name AS department_name,
		       r.role, r.status, r.level, r.hire_date, r.manager_id, r.location,
		       r.phone, r.bench_reason, r.bench_start_date, r.is_active,
		       COALESCE(ARRAY_AGG(DISTINCT s.name) FILTER (WHERE s.name IS NOT NULL), '{}') AS skills
		FROM resources r
		LEFT JOIN departments d ON r.department_id = d.id
		LEFT JOIN resource_skills rs ON rs.resource_id = r.id
		LEFT JOIN skills s ON s.id = rs.skill_id`
	var args []any
	if status != "" {
		query += ` WHERE r.status = $1`
		args = append(args, status)
	}
	query += `
		GROUP BY r.id, d.name
		ORDER BY r.name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	list := []dto.ResourceListItem{}
	for rows.Next() {
		var item dto.ResourceListItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Email, &item.DepartmentID, &item.DepartmentName,
			&item.Role, &item.Status, &item.Level, &item.HireDate, &item.ManagerID,
			&item.Location, &item.Phone, &item.BenchReason, &item.BenchStartDate,
			&item.IsActive, &item.Skills,
		); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Create inserta el recurso y devuelve el id generado.
func (r *ResourceRepo) Create(ctx context.Context, res *entity.Resource) (int64, error) {
	const query = `
		INSERT INTO resources (name, email, department_id, role, status, level,
		                       salary, hire_date, manager_id, location, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		res.Name, res.Email, res.DepartmentID, res.Role, res.Status, res.Level,
		res.Salary, res.HireDate, res.ManagerID, res.Location, res.Phone,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: email already registered", domain.ErrInvalidInput)
		}
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: unknown department or manager", domain.ErrInvalidInput)
		}
		return 0, fmt.Errorf("insert resource: %w", err)
	}
	return id, nil
}

// Update actualiza la fila del recurso (solo las columnas editables desde el
// formulario; hire_date, manager y campos de banquillo no se tocan aquí).
func (r *ResourceRepo) Update(ctx context.Context, res *entity.Resource) error {
	const query = `
		UPDATE resources SET
			name = $2, email = $3, department_id = $4, role = $5,
			status = $6, level = $7, salary = $8, location = $9, phone = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		res.ID, res.Name, res.Email, res.DepartmentID, res.Role,
		res.Status, res.Level, res.Salary, res.Location, res.Phone,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", domain.ErrInvalidInput)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: unknown department", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: resource %d", domain.ErrNotFound, res.ID)
	}
	return nil
}

// SetStatus fija el estado del recurso sin tocar el resto de la fila.
func (r *ResourceRepo) SetStatus(ctx context.Context, resourceID int64, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE resources SET status = $2 WHERE id = $1`, resourceID, status)
	if err != nil {
		return fmt.Errorf("set resource status: %w", err)
	}
	return nil
}

var _ repository.ResourceSkillRepository = (*ResourceSkillRepo)(nil)

// ResourceSkillRepo join recurso-skill (usable con pool o tx).
type ResourceSkillRepo struct {
	q Querier
}

// NewResourceSkillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResourceSkillRepository(q Querier) *ResourceSkillRepo {
	return &ResourceSkillRepo{q: q}
}

// Add inserta una fila del join.
func (r *ResourceSkillRepo) Add(ctx context.Context, resourceID, skillID int64) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO resource_skills (resource_id, skill_id) VALUES ($1, $2)`,
		resourceID, skillID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: unknown skill %d", domain.ErrInvalidInput, skillID)
		}
		return fmt.Errorf("insert resource skill: %w", err)
	}
	return nil
}

// DeleteByResource elimina todas las skills de un recurso (paso previo al reemplazo).
func (r *ResourceSkillRepo) DeleteByResource(ctx context.Context, resourceID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM resource_skills WHERE resource_id = $1`, resourceID)
	if err != nil {
		return fmt.Errorf("delete resource skills: %w", err)
	}
	return nil
}
