// Package usecase contiene los casos de uso CRUD de recursos, proyectos,
// asignaciones y catálogos.
package usecase

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

// ResourceUseCase altas, actualizaciones y listado de recursos.
// Las escrituras con skills van en una sola transacción: nunca queda un set
// parcial de skills confirmado.
type ResourceUseCase struct {
	resourceRepo repository.ResourceRepository
	tx           TxRunner
}

// NewResourceUseCase construye el caso de uso.
func NewResourceUseCase(resourceRepo repository.ResourceRepository, tx TxRunner) *ResourceUseCase {
	return &ResourceUseCase{resourceRepo: resourceRepo, tx: tx}
}

// List devuelve todos los recursos con departamento y skills, ordenados por nombre.
func (uc *ResourceUseCase) List(ctx context.Context) ([]dto.ResourceListItem, error) {
	return uc.resourceRepo.List(ctx, "")
}

// Create inserta el recurso y sus skills en una transacción. Requiere name,
// email, department_id y role; status por defecto Available y level Junior.
func (uc *ResourceUseCase) Create(ctx context.Context, in dto.CreateResourceRequest) (int64, error) {
	if in.Name == "" || in.Email == "" || in.DepartmentID == 0 || in.Role == "" {
		return 0, fmt.Errorf("%w: name, email, department_id and role are required", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.StatusAvailable
	}
	level := in.Level
	if level == "" {
		level = entity.LevelJunior
	}
	hireDate, err := parseDatePtr(in.HireDate)
	if err != nil {
		return 0, err
	}

	res := &entity.Resource{
		Name:         in.Name,
		Email:        in.Email,
		DepartmentID: in.DepartmentID,
		Role:         in.Role,
		Status:       status,
		Level:        level,
		Salary:       in.Salary,
		HireDate:     hireDate,
		ManagerID:    in.ManagerID,
		Location:     in.Location,
		Phone:        in.Phone,
	}

	var id int64
	err = uc.tx.Run(ctx, func(
		resources repository.ResourceRepository,
		skills repository.ResourceSkillRepository,
		_ repository.AllocationRepository,
	) error {
		var err error
		id, err = resources.Create(ctx, res)
		if err != nil {
			return err
		}
		for _, skillID := range in.Skills {
			if err := skills.Add(ctx, id, skillID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update actualiza la fila del recurso y, si el payload trae el campo skills,
// reemplaza el set completo (borrado + reinserción, sin diff) en la misma
// transacción. Skills ausente conserva las existentes; lista vacía las elimina.
func (uc *ResourceUseCase) Update(ctx context.Context, id int64, in dto.UpdateResourceRequest) error {
	if in.Name == "" || in.Email == "" || in.DepartmentID == 0 || in.Role == "" || in.Status == "" || in.Level == "" {
		return fmt.Errorf("%w: name, email, department_id, role, status and level are required", domain.ErrInvalidInput)
	}

	res := &entity.Resource{
		ID:           id,
		Name:         in.Name,
		Email:        in.Email,
		DepartmentID: in.DepartmentID,
		Role:         in.Role,
		Status:       in.Status,
		Level:        in.Level,
		Salary:       in.Salary,
		Location:     in.Location,
		Phone:        in.Phone,
	}

	return uc.tx.Run(ctx, func(
		resources repository.ResourceRepository,
		skills repository.ResourceSkillRepository,
		_ repository.AllocationRepository,
	) error {
		if err := resources.Update(ctx, res); err != nil {
			return err
		}
		if in.Skills == nil {
			return nil
		}
		if err := skills.DeleteByResource(ctx, id); err != nil {
			return err
		}
		for _, skillID := range *in.Skills {
			if err := skills.Add(ctx, id, skillID); err != nil {
				return err
			}
		}
		return nil
	})
}
