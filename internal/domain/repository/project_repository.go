package repository

import (
	"context"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
)

// ProjectRepository persistencia de proyectos.
type ProjectRepository interface {
	// List devuelve todos los proyectos con cliente, manager y número de
	// asignaciones, ordenados por start_date descendente.
	List(ctx context.Context) ([]dto.ProjectListItem, error)
	Create(ctx context.Context, p *entity.Project) (int64, error)
}

// AllocationRepository persistencia de asignaciones recurso-proyecto.
type AllocationRepository interface {
	Create(ctx context.Context, a *entity.ProjectAllocation) (int64, error)
}
