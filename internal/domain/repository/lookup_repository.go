package repository

import (
	"context"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
)

// LookupRepository catálogos de solo lectura, siempre tabla completa ordenada.
type LookupRepository interface {
	Departments(ctx context.Context) ([]dto.DepartmentDTO, error)
	Skills(ctx context.Context) ([]dto.SkillDTO, error)
	Clients(ctx context.Context) ([]dto.ClientDTO, error)
}
