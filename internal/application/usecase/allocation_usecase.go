package usecase

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

const defaultAllocationPercentage = 100

// AllocationUseCase alta de asignaciones recurso-proyecto.
// Invariante cruzado: asignar un recurso lo marca Billable incondicionalmente,
// en la misma transacción que el insert. No se valida solapamiento ni
// sobreasignación de porcentaje.
type AllocationUseCase struct {
	tx TxRunner
}

// NewAllocationUseCase construye el caso de uso.
func NewAllocationUseCase(tx TxRunner) *AllocationUseCase {
	return &AllocationUseCase{tx: tx}
}

// Create inserta la asignación y fija el estado del recurso a Billable.
// Requiere project_id, resource_id y start_date; porcentaje por defecto 100.
func (uc *AllocationUseCase) Create(ctx context.Context, in dto.CreateAllocationRequest) (int64, error) {
	if in.ProjectID == 0 || in.ResourceID == 0 || in.StartDate == "" {
		return 0, fmt.Errorf("%w: project_id, resource_id and start_date are required", domain.ErrInvalidInput)
	}
	startDate, err := parseDate(in.StartDate)
	if err != nil {
		return 0, err
	}
	endDate, err := parseDatePtr(in.EndDate)
	if err != nil {
		return 0, err
	}
	percentage := defaultAllocationPercentage
	if in.AllocationPercentage != nil {
		percentage = *in.AllocationPercentage
	}

	alloc := &entity.ProjectAllocation{
		ProjectID:            in.ProjectID,
		ResourceID:           in.ResourceID,
		AllocationPercentage: percentage,
		StartDate:            startDate,
		EndDate:              endDate,
		RoleInProject:        in.RoleInProject,
	}

	var id int64
	err = uc.tx.Run(ctx, func(
		resources repository.ResourceRepository,
		_ repository.ResourceSkillRepository,
		allocations repository.AllocationRepository,
	) error {
		var err error
		id, err = allocations.Create(ctx, alloc)
		if err != nil {
			return err
		}
		return resources.SetStatus(ctx, in.ResourceID, entity.StatusBillable)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
