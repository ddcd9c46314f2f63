package postgres

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

var _ repository.LookupRepository = (*LookupRepo)(nil)

// LookupRepo catálogos de solo lectura: tabla completa, ordenada por nombre.
type LookupRepo struct {
	q Querier
}

// NewLookupRepository construye el adaptador.
func NewLookupRepository(q Querier) *LookupRepo {
	return &LookupRepo{q: q}
}

func (r *LookupRepo) Departments(ctx context.Context) ([]dto.DepartmentDTO, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	list := []dto.DepartmentDTO{}
	for rows.Next() {
		var d dto.DepartmentDTO
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *LookupRepo) Skills(ctx context.Context) ([]dto.SkillDTO, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, market_demand FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	list := []dto.SkillDTO{}
	for rows.Next() {
		var s dto.SkillDTO
		if err := rows.Scan(&s.ID, &s.Name, &s.MarketDemand); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *LookupRepo) Clients(ctx context.Context) ([]dto.ClientDTO, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	list := []dto.ClientDTO{}
	for rows.Next() {
		var c dto.ClientDTO
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
