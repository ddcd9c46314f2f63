// Package export genera reportes descargables del roster en formato xlsx.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

const exportSheet = "Resources"

// Encabezados del export. Sin columnas salariales: el salario solo se expone
// por la vista HR.
var resourceExportHeader = []string{
	"ID", "Name", "Email", "Department", "Role", "Status", "Level",
	"Location", "Hire Date", "Bench Reason", "Skills",
}

var resourceExportWidths = []float64{8, 28, 32, 20, 22, 12, 10, 18, 14, 20, 40}

// ResourceExportUseCase arma el workbook del roster, opcionalmente filtrado por estado.
type ResourceExportUseCase struct {
	resourceRepo repository.ResourceRepository
}

// NewResourceExportUseCase construye el caso de uso.
func NewResourceExportUseCase(resourceRepo repository.ResourceRepository) *ResourceExportUseCase {
	return &ResourceExportUseCase{resourceRepo: resourceRepo}
}

// BuildWorkbook genera el xlsx y devuelve sus bytes junto al nombre de archivo
// sugerido. status vacío exporta el roster completo.
func (uc *ResourceExportUseCase) BuildWorkbook(ctx context.Context, status string) ([]byte, string, error) {
	resources, err := uc.resourceRepo.List(ctx, status)
	if err != nil {
		return nil, "", fmt.Errorf("export: list resources: %w", err)
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("export: create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("export: header style: %w", err)
	}

	for col, header := range resourceExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("export: cell name: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("export: header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("export: header style %s: %w", cell, err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("export: column name: %w", err)
		}
		if err := f.SetColWidth(exportSheet, name, name, resourceExportWidths[col]); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("export: column width: %w", err)
		}
	}

	for i, r := range resources {
		row := i + 2 // la fila 1 es el encabezado
		values := []interface{}{
			r.ID, r.Name, r.Email, strValue(r.DepartmentName), r.Role, r.Status, r.Level,
			strValue(r.Location), dateValue(r.HireDate), strValue(r.BenchReason), strings.Join(r.Skills, ", "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, "", fmt.Errorf("export: cell name: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				f.Close()
				return nil, "", fmt.Errorf("export: cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("export: write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, "", fmt.Errorf("export: close workbook: %w", err)
	}

	filename := fmt.Sprintf("resources_%s.xlsx", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

