package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapcom/resource-pulse-api/internal/application/analytics"
	"github.com/zapcom/resource-pulse-api/internal/application/dto"
	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
)

// fakeDashboardRepo registra qué secciones se consultaron.
type fakeDashboardRepo struct {
	financialQueried bool
	hrQueried        bool
}

func (f *fakeDashboardRepo) ProjectHealth(_ context.Context) (*dto.ProjectHealthSummary, error) {
	return &dto.ProjectHealthSummary{TotalProjects: 5, GreenProjects: 3}, nil
}

func (f *fakeDashboardRepo) ResourceUtilization(_ context.Context) (*dto.ResourceUtilizationSummary, error) {
	return &dto.ResourceUtilizationSummary{TotalResources: 40, BillableResources: 28}, nil
}

func (f *fakeDashboardRepo) DeliverablesSummary(_ context.Context) (*dto.DeliverablesSummary, error) {
	return &dto.DeliverablesSummary{TotalDeliverables: 12}, nil
}

func (f *fakeDashboardRepo) EngineeringSummary(_ context.Context, _ int) (*dto.EngineeringSummary, error) {
	return &dto.EngineeringSummary{}, nil
}

func (f *fakeDashboardRepo) QASummary(_ context.Context, _ int) (*dto.QASummary, error) {
	return &dto.QASummary{}, nil
}

func (f *fakeDashboardRepo) FinancialSummary(_ context.Context, _ int) (*dto.FinancialSummary, error) {
	f.financialQueried = true
	return &dto.FinancialSummary{}, nil
}

func (f *fakeDashboardRepo) HRSummary(_ context.Context) (*dto.HRSummary, error) {
	f.hrQueried = true
	return &dto.HRSummary{TotalEmployeesWithSalary: 35}, nil
}

func TestOverview_ResourceManager_SinSeccionesSensibles(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.Overview(context.Background(), entity.RoleResourceManager)

	require.NoError(t, err)
	assert.NotNil(t, out.ProjectHealth)
	assert.NotNil(t, out.ResourceUtilization)
	assert.Nil(t, out.Financial, "resource_manager no debe ver financial")
	assert.Nil(t, out.HRMetrics, "resource_manager no debe ver hr_metrics")
	assert.False(t, repo.financialQueried, "la sección financial ni siquiera debe consultarse")
	assert.False(t, repo.hrQueried)
}

func TestOverview_Leadership_IncluyeFinancialPeroNoHR(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.Overview(context.Background(), entity.RoleLeadership)

	require.NoError(t, err)
	assert.NotNil(t, out.Financial, "leadership debe ver financial")
	assert.Nil(t, out.HRMetrics, "leadership no debe ver hr_metrics")
}

func TestOverview_HR_IncluyeTodo(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.Overview(context.Background(), entity.RoleHR)

	require.NoError(t, err)
	assert.NotNil(t, out.Financial)
	require.NotNil(t, out.HRMetrics)
	assert.Equal(t, int64(35), out.HRMetrics.TotalEmployeesWithSalary)
}
