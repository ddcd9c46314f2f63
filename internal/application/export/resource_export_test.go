package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/application/export"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
)

// fakeRosterRepo devuelve el roster fijado, respetando el filtro por estado.
type fakeRosterRepo struct {
	items []dto.ResourceListItem
}

func (f *fakeRosterRepo) List(_ context.Context, status string) ([]dto.ResourceListItem, error) {
	if status == "" {
		return f.items, nil
	}
	out := []dto.ResourceListItem{}
	for _, r := range f.items {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRosterRepo) Create(_ context.Context, _ *entity.Resource) (int64, error) { return 0, nil }
func (f *fakeRosterRepo) Update(_ context.Context, _ *entity.Resource) error          { return nil }
func (f *fakeRosterRepo) SetStatus(_ context.Context, _ int64, _ string) error        { return nil }

func testRoster() []dto.ResourceListItem {
	dept := "Engineering"
	hire := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)
	return []dto.ResourceListItem{
		{
			ID: 1, Name: "Ana Ríos", Email: "ana@zapcom.com",
			DepartmentName: &dept, Role: "Backend Engineer",
			Status: entity.StatusBillable, Level: "Senior",
			HireDate: &hire, Skills: []string{"Go", "PostgreSQL"},
		},
		{
			ID: 2, Name: "Luis Parra", Email: "luis@zapcom.com",
			DepartmentName: &dept, Role: "QA Engineer",
			Status: entity.StatusBenched, Level: "Mid",
			Skills: []string{},
		},
	}
}

func TestBuildWorkbook_GeneraXlsxConRoster(t *testing.T) {
	uc := export.NewResourceExportUseCase(&fakeRosterRepo{items: testRoster()})

	data, filename, err := uc.BuildWorkbook(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, filename, "resources_")
	assert.Contains(t, filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Resources")
	require.NoError(t, err)
	require.Len(t, rows, 3, "encabezado + 2 recursos")

	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Ana Ríos", rows[1][1])
	assert.Equal(t, "Go, PostgreSQL", rows[1][10], "las skills van unidas por coma")

	// El export nunca incluye columnas salariales.
	for _, header := range rows[0] {
		assert.NotContains(t, header, "Salary")
	}
}

func TestBuildWorkbook_FiltraPorEstado(t *testing.T) {
	uc := export.NewResourceExportUseCase(&fakeRosterRepo{items: testRoster()})

	data, _, err := uc.BuildWorkbook(context.Background(), entity.StatusBenched)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Resources")
	require.NoError(t, err)
	require.Len(t, rows, 2, "encabezado + 1 recurso en banquillo")
	assert.Equal(t, "Luis Parra", rows[1][1])
}
