package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapcom/resource-pulse-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier de prueba: captura el SQL emitido y devuelve resultados vacíos.
// Permite fijar la forma de las consultas sin una base de datos real.
// ──────────────────────────────────────────────────────────────────────────────

type recordingQuerier struct {
	lastSQL string
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.lastSQL = sql
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.lastSQL = sql
	return emptyRows{}, nil
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.lastSQL = sql
	return zeroRow{}
}

// zeroRow deja los destinos del Scan en su valor cero.
type zeroRow struct{}

func (zeroRow) Scan(_ ...any) error { return nil }

// emptyRows resultado sin filas.
type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(_ ...any) error                          { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Forma de las consultas financieras y de dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestFinancialSummary_AgregaSobreFinancialTracking(t *testing.T) {
	q := &recordingQuerier{}
	repo := postgres.NewDashboardRepository(q)

	out, err := repo.FinancialSummary(context.Background(), 6)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Contains(t, q.lastSQL, "FROM financial_tracking")
	assert.Contains(t, q.lastSQL, "revenue_generated")
}

func TestFinancialOverview_AgregaSobreFinancialTracking(t *testing.T) {
	q := &recordingQuerier{}
	repo := postgres.NewReportRepository(q)

	out, err := repo.FinancialOverview(context.Background(), 6)

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, q.lastSQL, "FROM financial_tracking")
	assert.Contains(t, q.lastSQL, "revenue_generated")
}

func TestProjectHealth_CuentaTodosLosProyectosActivos(t *testing.T) {
	q := &recordingQuerier{}
	repo := postgres.NewDashboardRepository(q)

	_, err := repo.ProjectHealth(context.Background())

	require.NoError(t, err)
	assert.Contains(t, q.lastSQL, "is_active = true")
	assert.NotContains(t, q.lastSQL, "status =",
		"el resumen de salud cubre todos los proyectos activos, no solo los 'Active'")
}

func TestBenchBreakdown_ExcluyeMotivosSinRegistrar(t *testing.T) {
	q := &recordingQuerier{}
	repo := postgres.NewAnalyticsRepository(q)

	out, err := repo.BenchBreakdown(context.Background())

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, q.lastSQL, "bench_reason IS NOT NULL")
}
