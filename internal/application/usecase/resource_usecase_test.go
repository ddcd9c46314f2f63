package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/application/usecase"
	"github.com/zapcom/resource-pulse-api/internal/domain"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repos y del TxRunner
// ──────────────────────────────────────────────────────────────────────────────

type fakeResourceRepo struct {
	created    *entity.Resource
	updated    *entity.Resource
	statuses   map[int64]string
	nextID     int64
	updateErr  error
	listResult []dto.ResourceListItem
}

func (f *fakeResourceRepo) List(_ context.Context, _ string) ([]dto.ResourceListItem, error) {
	return f.listResult, nil
}

func (f *fakeResourceRepo) Create(_ context.Context, r *entity.Resource) (int64, error) {
	f.created = r
	if f.nextID == 0 {
		f.nextID = 1
	}
	return f.nextID, nil
}

func (f *fakeResourceRepo) Update(_ context.Context, r *entity.Resource) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = r
	return nil
}

func (f *fakeResourceRepo) SetStatus(_ context.Context, id int64, status string) error {
	if f.statuses == nil {
		f.statuses = map[int64]string{}
	}
	f.statuses[id] = status
	return nil
}

type fakeSkillRepo struct {
	added   []int64
	deleted []int64
	addErr  error
}

func (f *fakeSkillRepo) Add(_ context.Context, _, skillID int64) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, skillID)
	return nil
}

func (f *fakeSkillRepo) DeleteByResource(_ context.Context, resourceID int64) error {
	f.deleted = append(f.deleted, resourceID)
	return nil
}

type fakeAllocationRepo struct {
	created *entity.ProjectAllocation
	nextID  int64
}

func (f *fakeAllocationRepo) Create(_ context.Context, a *entity.ProjectAllocation) (int64, error) {
	f.created = a
	if f.nextID == 0 {
		f.nextID = 1
	}
	return f.nextID, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción
// real. Registra el error devuelto por el callback: es el que decide el rollback.
type fakeTxRunner struct {
	resources   *fakeResourceRepo
	skills      *fakeSkillRepo
	allocations *fakeAllocationRepo
	callbackErr error
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	resources repository.ResourceRepository,
	skills repository.ResourceSkillRepository,
	allocations repository.AllocationRepository,
) error) error {
	f.callbackErr = fn(f.resources, f.skills, f.allocations)
	return f.callbackErr
}

func newFakes() (*fakeResourceRepo, *fakeSkillRepo, *fakeAllocationRepo, *fakeTxRunner) {
	resources := &fakeResourceRepo{}
	skills := &fakeSkillRepo{}
	allocations := &fakeAllocationRepo{}
	return resources, skills, allocations, &fakeTxRunner{
		resources:   resources,
		skills:      skills,
		allocations: allocations,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ResourceUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestResourceCreate_CamposFaltantes_RetornaInvalidInput(t *testing.T) {
	resources, _, _, tx := newFakes()
	uc := usecase.NewResourceUseCase(resources, tx)

	_, err := uc.Create(context.Background(), dto.CreateResourceRequest{
		Name: "Ana Ríos", // falta email, department_id y role
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, resources.created, "no debe llegar al repo si la validación falla")
}

func TestResourceCreate_AplicaDefaultsYRegistraSkills(t *testing.T) {
	resources, skills, _, tx := newFakes()
	resources.nextID = 42
	uc := usecase.NewResourceUseCase(resources, tx)

	id, err := uc.Create(context.Background(), dto.CreateResourceRequest{
		Name:         "Ana Ríos",
		Email:        "ana@zapcom.com",
		DepartmentID: 3,
		Role:         "Backend Engineer",
		Skills:       []int64{1, 5, 9},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	require.NotNil(t, resources.created)
	assert.Equal(t, entity.StatusAvailable, resources.created.Status, "status por defecto Available")
	assert.Equal(t, entity.LevelJunior, resources.created.Level, "level por defecto Junior")
	assert.Equal(t, []int64{1, 5, 9}, skills.added, "todas las skills deben insertarse")
}

func TestResourceCreate_FalloAlInsertarSkill_AbortaLaTransaccion(t *testing.T) {
	resources, skills, _, tx := newFakes()
	skills.addErr = errors.New("insert resource skill: violación de FK")
	uc := usecase.NewResourceUseCase(resources, tx)

	_, err := uc.Create(context.Background(), dto.CreateResourceRequest{
		Name:         "Ana Ríos",
		Email:        "ana@zapcom.com",
		DepartmentID: 3,
		Role:         "Backend Engineer",
		Skills:       []int64{1, 99},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, skills.addErr)
	assert.ErrorIs(t, tx.callbackErr, skills.addErr,
		"el error debe salir del callback para que el runner haga rollback del recurso")
	assert.Empty(t, skills.added, "ninguna skill debe quedar registrada")
}

func TestResourceCreate_FechaInvalida_RetornaInvalidInput(t *testing.T) {
	resources, _, _, tx := newFakes()
	uc := usecase.NewResourceUseCase(resources, tx)

	badDate := "15/01/2024"
	_, err := uc.Create(context.Background(), dto.CreateResourceRequest{
		Name:         "Ana Ríos",
		Email:        "ana@zapcom.com",
		DepartmentID: 3,
		Role:         "Backend Engineer",
		HireDate:     &badDate,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResourceUpdate_SkillsAusente_ConservaSkills(t *testing.T) {
	resources, skills, _, tx := newFakes()
	uc := usecase.NewResourceUseCase(resources, tx)

	err := uc.Update(context.Background(), 7, dto.UpdateResourceRequest{
		Name:         "Ana Ríos",
		Email:        "ana@zapcom.com",
		DepartmentID: 3,
		Role:         "Backend Engineer",
		Status:       entity.StatusBillable,
		Level:        "Senior",
		// Skills nil: el set existente no se toca
	})

	require.NoError(t, err)
	require.NotNil(t, resources.updated)
	assert.Empty(t, skills.deleted, "skills ausente no debe borrar nada")
	assert.Empty(t, skills.added)
}

func TestResourceUpdate_SkillsVacia_EliminaTodas(t *testing.T) {
	resources, skills, _, tx := newFakes()
	uc := usecase.NewResourceUseCase(resources, tx)

	empty := []int64{}
	err := uc.Update(context.Background(), 7, dto.UpdateResourceRequest{
		Name:         "Ana Ríos",
		Email:        "ana@zapcom.com",
		DepartmentID: 3,
		Role:         "Backend Engineer",
		Status:       entity.StatusBillable,
		Level:        "Senior",
		Skills:       &empty,
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, skills.deleted, "lista vacía debe borrar el set completo")
	assert.Empty(t, skills.added, "y no insertar nada")
}

func TestResourceUpdate_ReemplazaSetDeSkills(t *testing.T) {
	resources, skills, _, tx := newFakes()
	uc := usecase.NewResourceUseCase(resources, tx)

	newSkills := []int64{2, 4}
	err := uc.Update(context.Background(), 7, dto.UpdateResourceRequest{
		Name:         "Ana Ríos",
		Email:        "ana@zapcom.com",
		DepartmentID: 3,
		Role:         "Backend Engineer",
		Status:       entity.StatusBillable,
		Level:        "Senior",
		Skills:       &newSkills,
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, skills.deleted)
	assert.Equal(t, []int64{2, 4}, skills.added)
}

func TestResourceUpdate_NoEncontrado_PropagaNotFound(t *testing.T) {
	resources, _, _, tx := newFakes()
	resources.updateErr = domain.ErrNotFound
	uc := usecase.NewResourceUseCase(resources, tx)

	err := uc.Update(context.Background(), 999, dto.UpdateResourceRequest{
		Name:         "Ana Ríos",
		Email:        "ana@zapcom.com",
		DepartmentID: 3,
		Role:         "Backend Engineer",
		Status:       entity.StatusBillable,
		Level:        "Senior",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AllocationUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestAllocationCreate_MarcaRecursoBillable(t *testing.T) {
	resources, _, allocations, tx := newFakes()
	allocations.nextID = 11
	uc := usecase.NewAllocationUseCase(tx)

	id, err := uc.Create(context.Background(), dto.CreateAllocationRequest{
		ProjectID:  2,
		ResourceID: 7,
		StartDate:  "2026-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	require.NotNil(t, allocations.created)
	assert.Equal(t, 100, allocations.created.AllocationPercentage, "porcentaje por defecto 100")
	assert.Equal(t, entity.StatusBillable, resources.statuses[7],
		"la asignación debe marcar el recurso como Billable")
}

func TestAllocationCreate_PorcentajeExplicito(t *testing.T) {
	_, _, allocations, tx := newFakes()
	uc := usecase.NewAllocationUseCase(tx)

	pct := 50
	_, err := uc.Create(context.Background(), dto.CreateAllocationRequest{
		ProjectID:            2,
		ResourceID:           7,
		StartDate:            "2026-01-01",
		AllocationPercentage: &pct,
	})

	require.NoError(t, err)
	assert.Equal(t, 50, allocations.created.AllocationPercentage)
}

func TestAllocationCreate_CamposFaltantes_RetornaInvalidInput(t *testing.T) {
	_, _, allocations, tx := newFakes()
	uc := usecase.NewAllocationUseCase(tx)

	_, err := uc.Create(context.Background(), dto.CreateAllocationRequest{
		ProjectID: 2, // falta resource_id y start_date
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, allocations.created)
}
