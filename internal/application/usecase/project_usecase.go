package usecase

import (
	"context"
	"fmt"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

// ProjectUseCase listado y alta de proyectos.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(projectRepo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo}
}

// List devuelve todos los proyectos con cliente, manager y asignaciones.
func (uc *ProjectUseCase) List(ctx context.Context) ([]dto.ProjectListItem, error) {
	return uc.projectRepo.List(ctx)
}

// Create inserta un proyecto. Requiere name, client_id, manager_id, start_date
// y end_date; status por defecto Planning, priority Medium y stack vacío.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.CreateProjectRequest) (int64, error) {
	if in.Name == "" || in.ClientID == 0 || in.ManagerID == 0 || in.StartDate == "" || in.EndDate == "" {
		return 0, fmt.Errorf("%w: name, client_id, manager_id, start_date and end_date are required", domain.ErrInvalidInput)
	}
	startDate, err := parseDate(in.StartDate)
	if err != nil {
		return 0, err
	}
	endDate, err := parseDate(in.EndDate)
	if err != nil {
		return 0, err
	}
	status := in.Status
	if status == "" {
		status = "Planning"
	}
	priority := in.Priority
	if priority == "" {
		priority = "Medium"
	}
	stack := in.TechnologyStack
	if stack == nil {
		stack = []string{}
	}

	return uc.projectRepo.Create(ctx, &entity.Project{
		Name:            in.Name,
		Description:     in.Description,
		ClientID:        in.ClientID,
		ManagerID:       in.ManagerID,
		Status:          status,
		StartDate:       startDate,
		EndDate:         endDate,
		Budget:          in.Budget,
		Priority:        priority,
		TechnologyStack: stack,
	})
}
