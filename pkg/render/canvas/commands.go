package canvas

import "strings"

// Align is horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// VAlign is vertical text anchoring inside the box.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

func (v VAlign) String() string {
	switch v {
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// TextStyle styles a text box. Sizes and spacings are in points.
type TextStyle struct {
	Font           string  `json:"font"`
	Size           float64 `json:"size"`
	Color          string  `json:"color"`
	Bold           bool    `json:"bold,omitempty"`
	Italic         bool    `json:"italic,omitempty"`
	Align          Align   `json:"align,omitempty"`
	VAlign         VAlign  `json:"valign,omitempty"`
	CharSpacing    float64 `json:"char_spacing,omitempty"`
	LineSpacing    float64 `json:"line_spacing,omitempty"` // multiple of single spacing; 0 means 1
	ParaSpaceAfter float64 `json:"para_space_after,omitempty"`
	Transparency   float64 `json:"transparency,omitempty"` // percent, 0 is opaque
	Shrink         bool    `json:"shrink,omitempty"`
}

// Text places a text box. When Bullets is non-empty each entry is drawn as a
// bulleted paragraph and Content is ignored.
type Text struct {
	Box         Rect
	Content     string
	Bullets     []string
	BulletColor string
	Style       TextStyle
}

// Paragraphs returns the paragraphs of the text box in order.
func (t Text) Paragraphs() []string {
	if len(t.Bullets) > 0 {
		return t.Bullets
	}
	return splitLines(t.Content)
}

// ShapeKind selects the geometry of a Shape.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeRoundRect
	ShapeOval
	ShapeLine
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRoundRect:
		return "roundRect"
	case ShapeOval:
		return "oval"
	case ShapeLine:
		return "line"
	default:
		return "rect"
	}
}

// Dash is a line dash pattern.
type Dash int

const (
	DashSolid Dash = iota
	DashDash
)

func (d Dash) String() string {
	if d == DashDash {
		return "dash"
	}
	return "solid"
}

// LineStyle is an outline or a line stroke. A zero Width means no outline.
type LineStyle struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"` // points
	Dash  Dash    `json:"dash,omitempty"`
}

// Shadow is an outer drop shadow.
type Shadow struct {
	Blur    float64 `json:"blur"`   // points
	Offset  float64 `json:"offset"` // points
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"` // 0..1
}

// ShapeStyle styles a shape. An empty Fill leaves the shape unfilled.
type ShapeStyle struct {
	Fill   string    `json:"fill,omitempty"`
	Line   LineStyle `json:"line"`
	Radius float64   `json:"radius,omitempty"` // inches, round rectangles only
	Shadow *Shadow   `json:"shadow,omitempty"`
}

// Shape places a geometric primitive. A ShapeLine runs from the top-left
// corner of Box to its bottom-right corner; horizontal lines have H == 0.
type Shape struct {
	Kind  ShapeKind
	Box   Rect
	Style ShapeStyle
}

// Image places a picture read from Path when the document is serialised.
type Image struct {
	Box  Rect
	Path string
}

// Border is one edge of a table cell.
type Border struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"` // points
}

// Edge indexes Cell.Borders.
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Cell is one table cell. Zero borders fall back to the table border.
type Cell struct {
	Text    string
	Style   TextStyle
	Fill    string
	Borders [4]Border
}

// Table places a grid of cells. Rows are drawn top to bottom in order.
type Table struct {
	Box    Rect
	ColW   []float64 // inches; empty distributes Box.W evenly
	RowH   float64
	Rows   [][]Cell
	Border Border
	Margin [4]float64 // cell padding in points: top, right, bottom, left
}

// Columns returns the number of columns, taken from the widest row.
func (t Table) Columns() int {
	n := len(t.ColW)
	for _, row := range t.Rows {
		n = max(n, len(row))
	}
	return n
}

// ColumnWidths returns explicit widths when set, or Box.W split evenly.
func (t Table) ColumnWidths() []float64 {
	if len(t.ColW) > 0 {
		return t.ColW
	}
	n := t.Columns()
	if n == 0 {
		return nil
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = t.Box.W / float64(n)
	}
	return w
}

// CellRect returns the box of the cell at row r, column c.
func (t Table) CellRect(r, c int) Rect {
	widths := t.ColumnWidths()
	x := t.Box.X
	for i := 0; i < c && i < len(widths); i++ {
		x += widths[i]
	}
	w := 0.0
	if c < len(widths) {
		w = widths[c]
	}
	return Rect{X: x, Y: t.Box.Y + float64(r)*t.RowH, W: w, H: t.RowH}
}

// EdgeBorder returns the effective border for one edge of a cell.
func (t Table) EdgeBorder(cell Cell, edge int) Border {
	if b := cell.Borders[edge]; b.Width > 0 {
		return b
	}
	return t.Border
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
