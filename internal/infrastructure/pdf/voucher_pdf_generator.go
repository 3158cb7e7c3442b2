// Package pdf genera la versión imprimible de un vale.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: VALE N° + Fecha          │  Estado                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRESTA: local origen  │  RECIBE: local destino              │
//	│  Persona responsable                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Descripción de la mercadería                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS + QR con la referencia del vale                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/vales-api/internal/application/ledger"
	"github.com/jhoicas/vales-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPending = &props.Color{Red: 191, Green: 120, Blue: 0}
	colorSettled = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ledger.VoucherPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ledger.VoucherPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
}

// NewMarotoPDFGenerator construye el generador; appName figura como autor del documento.
func NewMarotoPDFGenerator(appName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{appName: appName}
}

// GenerateVoucherPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateVoucherPDF(_ context.Context, v *entity.Voucher) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Vale N° %d", v.ID), true).
		WithAuthor(nonEmpty(g.appName, "vales-api"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(storesRow(v))
	m.AddRows(responsibleRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(v.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(10))
	m.AddRows(footerRow(v))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(v *entity.Voucher) core.Row {
	stateColor := colorPending
	if v.IsSettled() {
		stateColor = colorSettled
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("VALE N° %d", v.ID), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+v.Date.Format("02/01/2006"), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("ESTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(strings.ToUpper(v.State), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: stateColor, Top: 7,
			}),
		),
	)
}

func storesRow(v *entity.Voucher) core.Row {
	block := func(title, name string) core.Col {
		return col.New(6).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(name, "-"), props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		)
	}
	return row.New(14).Add(
		block("PRESTA (LOCAL ORIGEN)", v.OriginStoreName),
		block("RECIBE (LOCAL DESTINO)", v.DestinationStoreName),
	)
}

func responsibleRow(v *entity.Voucher) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Persona responsable: "+v.ResponsiblePerson, props.Text{Size: 9, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Descripción de la mercadería", 11, align.Left),
	)
}

func itemRows(items []entity.VoucherItem) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin items", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(items))
	for i, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(11).Add(text.New(it.Description, props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return rows
}

func footerRow(v *entity.Voucher) core.Row {
	signature := func(label string) core.Col {
		return col.New(4).Add(
			text.New("______________________", props.Text{Size: 9, Align: align.Center, Top: 14}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 20}),
		)
	}
	return row.New(32).Add(
		signature("Entrega"),
		signature("Recibe"),
		col.New(4).Add(code.NewQr(qrPayload(v), props.Rect{Percent: 80, Center: true})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// qrPayload referencia corta para identificar el vale al escanearlo.
func qrPayload(v *entity.Voucher) string {
	return fmt.Sprintf("vale:%d|fecha:%s|origen:%d|destino:%d",
		v.ID, v.Date.Format(entity.DateLayout), v.OriginStoreID, v.DestinationStoreID)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
