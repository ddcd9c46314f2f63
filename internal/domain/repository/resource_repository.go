package repository

import (
	"context"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
)

// ResourceRepository persistencia de recursos.
type ResourceRepository interface {
	// List devuelve todos los recursos con departamento y skills, ordenados por
	// nombre. status vacío = sin filtro.
	List(ctx context.Context, status string) ([]dto.ResourceListItem, error)
	// Create inserta el recurso y devuelve su id.
	Create(ctx context.Context, r *entity.Resource) (int64, error)
	// Update actualiza la fila completa. Devuelve domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, r *entity.Resource) error
	// SetStatus fija el estado del recurso (ej. Billable al asignarlo).
	SetStatus(ctx context.Context, resourceID int64, status string) error
}

// ResourceSkillRepository join recurso-skill.
type ResourceSkillRepository interface {
	Add(ctx context.Context, resourceID, skillID int64) error
	DeleteByResource(ctx context.Context, resourceID int64) error
}
