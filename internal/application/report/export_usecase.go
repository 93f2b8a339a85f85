package report

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Formatos de exportación soportados.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// MovementExporter genera un documento a partir del historial de movimientos
// de una variante.
type MovementExporter interface {
	Export(variant *entity.ProductVariant, movements []dto.StockMovementDTO) ([]byte, error)
}

// ExportUseCase exporta el historial de movimientos de stock de una variante
// como archivo descargable (XLSX o PDF).
type ExportUseCase struct {
	history     *stock.HistoryUseCase
	variantRepo repository.VariantRepository
	excel       MovementExporter
	pdf         MovementExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	history *stock.HistoryUseCase,
	variantRepo repository.VariantRepository,
	excel MovementExporter,
	pdf MovementExporter,
) *ExportUseCase {
	return &ExportUseCase{history: history, variantRepo: variantRepo, excel: excel, pdf: pdf}
}

// Export devuelve los bytes del documento y su content type.
func (uc *ExportUseCase) Export(ctx context.Context, variantID, format string) ([]byte, string, error) {
	movements, err := uc.history.GetStockHistory(ctx, variantID)
	if err != nil {
		return nil, "", err
	}
	variant, err := uc.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, "", err
	}
	if variant == nil {
		return nil, "", domain.ErrVariantNotFound
	}

	switch format {
	case FormatXLSX:
		data, err := uc.excel.Export(variant, movements)
		if err != nil {
			return nil, "", err
		}
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case FormatPDF:
		data, err := uc.pdf.Export(variant, movements)
		if err != nil {
			return nil, "", err
		}
		return data, "application/pdf", nil
	default:
		return nil, "", domain.ErrInvalidInput
	}
}
