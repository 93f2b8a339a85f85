package report

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.MovementExporter = (*PDFExporter)(nil)

// PDFExporter genera el historial de movimientos como PDF A4 usando Maroto v2.
type PDFExporter struct{}

// NewPDFExporter construye el exportador.
func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

// Export genera el PDF y devuelve sus bytes.
func (e *PDFExporter) Export(variant *entity.ProductVariant, movements []dto.StockMovementDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historial de movimientos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(variant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementRow(mov))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(variant, len(movements)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la variante (izq) y SKU (der).
func headerRow(variant *entity.ProductVariant) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(variant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Historial de movimientos de stock", props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("SKU: "+variant.SKU, props.Text{
				Size: 9, Top: 1, Align: align.Right, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Stock actual: %s", variant.TotalStock.String()), props.Text{
				Size: 9, Top: 6, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(7).Add(
		col.New(3).Add(text.New("Fecha", style)),
		col.New(1).Add(text.New("Tipo", style)),
		col.New(3).Add(text.New("Lote", style)),
		col.New(2).Add(text.New("Cantidad", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
		col.New(3).Add(text.New("Motivo", style)),
	)
}

func movementRow(m dto.StockMovementDTO) core.Row {
	tipo := "Entrada"
	if m.Type == "out" {
		tipo = "Salida"
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(m.Date.Format("02/01/2006 15:04"), props.Text{Size: 8})),
		col.New(1).Add(text.New(tipo, props.Text{Size: 8})),
		col.New(3).Add(text.New(m.BatchID, props.Text{Size: 7, Color: colorGray})),
		col.New(2).Add(text.New(m.Quantity.String(), props.Text{Size: 8, Align: align.Right})),
		col.New(3).Add(text.New(m.Reason, props.Text{Size: 8})),
	)
}

func footerRow(variant *entity.ProductVariant, total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d movimientos registrados para %s", total, variant.Name), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
