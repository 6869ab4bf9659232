// Package pdf genera el listado imprimible del directorio de usuarios.
//
// Layout de la página A4 (horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                     │  Fecha + N° registros │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Nombre | Email | Empresa | Teléfono | Origen    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/user-directory/internal/application/ports"
	"github.com/jhoicas/user-directory/internal/domain/entity"
)

var _ ports.RosterPDFGenerator = (*RosterPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLocal   = &props.Color{Red: 0, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// RosterPDFGenerator implementa ports.RosterPDFGenerator usando Maroto v2.
type RosterPDFGenerator struct {
	now func() time.Time
}

// NewRosterPDFGenerator construye el generador.
func NewRosterPDFGenerator() *RosterPDFGenerator {
	return &RosterPDFGenerator{now: time.Now}
}

// GenerateRosterPDF genera el PDF con los usuarios en el orden recibido.
func (g *RosterPDFGenerator) GenerateRosterPDF(_ context.Context, title string, users []entity.User) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, g.now(), len(users)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(users)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(strconv.Itoa(count)+" usuarios", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Nombre", 3, align.Left),
		h("Email", 3, align.Left),
		h("Empresa", 2, align.Left),
		h("Teléfono", 2, align.Left),
		h("Origen", 1, align.Center),
	)
}

// tableRows: una fila por usuario; los creados localmente se resaltan.
func tableRows(users []entity.User) []core.Row {
	result := make([]core.Row, 0, len(users))
	for i, u := range users {
		origin, color := "remoto", colorGray
		if u.IsLocal() {
			origin, color = "nuevo", colorLocal
		}
		cell := func(s string, size int) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Top: 1, Left: 1}))
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			cell(u.Name, 3),
			cell(u.Email, 3),
			cell(u.Company.Name, 2),
			cell(nonEmpty(u.Phone, "—"), 2),
			col.New(1).Add(text.New(origin, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1, Color: color,
			})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Los usuarios creados en esta sesión aparecen primero, sin importar el orden elegido.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
