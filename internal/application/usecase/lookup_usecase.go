package usecase

import (
	"context"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

// LookupUseCase catálogos de solo lectura (departamentos, skills, clientes).
type LookupUseCase struct {
	lookupRepo repository.LookupRepository
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(lookupRepo repository.LookupRepository) *LookupUseCase {
	return &LookupUseCase{lookupRepo: lookupRepo}
}

func (uc *LookupUseCase) Departments(ctx context.Context) ([]dto.DepartmentDTO, error) {
	return uc.lookupRepo.Departments(ctx)
}

func (uc *LookupUseCase) Skills(ctx context.Context) ([]dto.SkillDTO, error) {
	return uc.lookupRepo.Skills(ctx)
}

func (uc *LookupUseCase) Clients(ctx context.Context) ([]dto.ClientDTO, error) {
	return uc.lookupRepo.Clients(ctx)
}
