// Package report implementa los generadores de documentos descargables del
// historial de movimientos (XLSX con excelize, PDF con Maroto).
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var _ report.MovementExporter = (*ExcelExporter)(nil)

// ExcelExporter genera el historial de movimientos como hoja XLSX.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// Export una fila por movimiento, cabecera en A1.
func (e *ExcelExporter) Export(variant *entity.ProductVariant, movements []dto.StockMovementDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"fecha",
		"tipo",
		"lote_id",
		"cantidad",
		"unidad_id",
		"motivo",
		"proveedor_id",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}

	rowIdx := 2
	for _, m := range movements {
		excelRow := []interface{}{
			m.Date.Format("2006-01-02 15:04"),
			m.Type,
			m.BatchID,
			m.Quantity.String(),
			m.UnitID,
			m.Reason,
			m.SupplierID,
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: fila: %w", err)
		}
		rowIdx++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
