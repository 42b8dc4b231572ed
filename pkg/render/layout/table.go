package layout

import (
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

const (
	// TableRowH is the height of every table row, header included.
	TableRowH = 0.32

	tableY        = 1.3
	tableFontSize = 10.0
	ruleWidth     = 0.5
	headerRule    = 1.5

	totalsGap   = 0.1
	totalsH     = 0.35
	totalsInset = 0.08
)

// TableOptions positions a table. Zero X, Y and W select the content left
// edge, y 1.3 and the content width. Empty ColW splits W evenly.
type TableOptions struct {
	X, Y, W float64
	ColW    []float64
}

// Table places a header row followed by one row per record, in order.
// The header is upper-cased and bold on the cool surface with a heavier
// accent rule beneath it. Data rows alternate background and cool surface
// fills starting with background, so with 1-based row numbers odd rows are
// plain and even rows are shaded. It returns the table command it added.
func Table(s canvas.Slide, th *theme.Theme, headers []string, rows [][]string, opts TableOptions) canvas.Table {
	m := th.Metrics()
	rule := canvas.Border{Color: th.Color(theme.RoleRule), Width: ruleWidth}

	header := make([]canvas.Cell, len(headers))
	for i, h := range headers {
		c := canvas.Cell{
			Text: th.Upper(h),
			Style: canvas.TextStyle{
				Font:   th.Font(theme.FontHeading),
				Size:   tableFontSize,
				Color:  th.Color(theme.RoleText),
				Bold:   true,
				VAlign: canvas.VAlignMiddle,
			},
			Fill: th.Color(theme.RoleSurfaceCool),
		}
		c.Borders = [4]canvas.Border{rule, rule, {Color: th.Color(theme.RoleAccent), Width: headerRule}, rule}
		header[i] = c
	}

	out := make([][]canvas.Cell, 0, len(rows)+1)
	out = append(out, header)
	for ri, row := range rows {
		fill := th.Color(theme.RoleBackground)
		if ri%2 == 1 {
			fill = th.Color(theme.RoleSurfaceCool)
		}
		cells := make([]canvas.Cell, len(row))
		for ci, v := range row {
			cells[ci] = canvas.Cell{
				Text: v,
				Style: canvas.TextStyle{
					Font:   th.Font(theme.FontBody),
					Size:   tableFontSize,
					Color:  th.Color(theme.RoleText),
					VAlign: canvas.VAlignMiddle,
				},
				Fill: fill,
			}
		}
		out = append(out, cells)
	}

	tbl := canvas.Table{
		Box:    canvas.Rect{X: valueOr(opts.X, m.Left()), Y: valueOr(opts.Y, tableY), W: valueOr(opts.W, m.ContentW)},
		ColW:   opts.ColW,
		RowH:   TableRowH,
		Rows:   out,
		Border: rule,
		Margin: [4]float64{5, 8, 5, 8},
	}
	s.AddTable(tbl)
	return tbl
}

// TotalsY returns the y of a totals line below a table at tableY with the
// given number of data rows.
func TotalsY(tableY float64, rows int) float64 {
	return tableY + TableRowH*float64(rows+1) + totalsGap
}

// Totals places a full-width accent rule just above y and one bold value per
// column beneath it: the first (the row caption) in the text colour, the rest
// in the accent colour. Empty colW splits the content width evenly.
func Totals(s canvas.Slide, th *theme.Theme, values []string, colW []float64, y float64) []canvas.Rect {
	m := th.Metrics()
	AccentLine(s, th, m.Left(), y-0.05, m.ContentW)

	widths := colW
	if len(widths) == 0 && len(values) > 0 {
		widths = make([]float64, len(values))
		for i := range widths {
			widths[i] = m.ContentW / float64(len(values))
		}
	}

	boxes := make([]canvas.Rect, 0, len(values))
	x := m.Left()
	for i, v := range values {
		if i >= len(widths) {
			break
		}
		color := th.Color(theme.RoleAccent)
		if i == 0 {
			color = th.Color(theme.RoleText)
		}
		box := canvas.Rect{X: x + totalsInset, Y: y, W: widths[i] - 2*totalsInset, H: totalsH}
		s.AddText(canvas.Text{
			Box:     box,
			Content: v,
			Style: canvas.TextStyle{
				Font:   th.Font(theme.FontHeading),
				Size:   11,
				Color:  color,
				Bold:   true,
				VAlign: canvas.VAlignMiddle,
				Shrink: true,
			},
		})
		boxes = append(boxes, box)
		x += widths[i]
	}
	return boxes
}
