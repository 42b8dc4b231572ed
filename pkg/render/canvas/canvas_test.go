package canvas

import (
	"math"
	"testing"
)

func TestRect(t *testing.T) {
	r := Rect{X: 0.7, Y: 1.3, W: 8.6, H: 0.4}
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Right", r.Right(), 9.3},
		{"Bottom", r.Bottom(), 1.7},
		{"CenterX", r.CenterX(), 5.0},
		{"CenterY", r.CenterY(), 1.5},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	in := r.Inset(0.15, 0.1)
	if math.Abs(in.W-8.3) > 1e-9 || math.Abs(in.H-0.2) > 1e-9 || math.Abs(in.X-0.85) > 1e-9 {
		t.Errorf("Inset() = %+v", in)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 1, H: 1}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"touching edge", Rect{X: 1, Y: 0, W: 1, H: 1}, false},
		{"disjoint", Rect{X: 3, Y: 3, W: 1, H: 1}, false},
		{"overlapping", Rect{X: 0.5, Y: 0.5, W: 1, H: 1}, true},
		{"contained", Rect{X: 0.2, Y: 0.2, W: 0.1, H: 0.1}, true},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s: Overlaps() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTableGeometry(t *testing.T) {
	tbl := Table{
		Box:  Rect{X: 0.7, Y: 1.4, W: 8.6},
		ColW: []float64{3.0, 2.0, 2.0, 1.6},
		RowH: 0.32,
		Rows: make([][]Cell, 4),
	}

	if got := tbl.Bounds().H; math.Abs(got-1.28) > 1e-9 {
		t.Errorf("Bounds().H = %v, want 1.28", got)
	}

	c := tbl.CellRect(2, 3)
	if math.Abs(c.X-7.7) > 1e-9 || math.Abs(c.Y-2.04) > 1e-9 || c.W != 1.6 {
		t.Errorf("CellRect(2, 3) = %+v, want X 7.7 Y 2.04 W 1.6", c)
	}

	even := Table{Box: Rect{W: 9}, Rows: [][]Cell{{{}, {}, {}}}}
	w := even.ColumnWidths()
	if len(w) != 3 || w[0] != 3 {
		t.Errorf("ColumnWidths() = %v, want three columns of 3", w)
	}
}

func TestEdgeBorder(t *testing.T) {
	tbl := Table{Border: Border{Color: "E5E7EB", Width: 0.5}}
	cell := Cell{}
	cell.Borders[EdgeBottom] = Border{Color: "EA3E2B", Width: 1.5}

	if got := tbl.EdgeBorder(cell, EdgeBottom); got.Width != 1.5 || got.Color != "EA3E2B" {
		t.Errorf("EdgeBorder(bottom) = %+v", got)
	}
	if got := tbl.EdgeBorder(cell, EdgeTop); got != tbl.Border {
		t.Errorf("EdgeBorder(top) = %+v, want table border", got)
	}
}

func TestDeckRecords(t *testing.T) {
	d := New(Layout16x9)
	s := d.AddSlide("FFFFFF")
	s.AddText(Text{Content: "a\nb"})
	s.AddShape(Shape{Kind: ShapeOval})
	s.AddImage(Image{Path: "logo.svg"})
	s2 := d.AddSlide("1A1A1A")
	s2.AddImage(Image{Path: "logo.svg"})
	s2.AddImage(Image{Path: "dark.svg"})
	s2.AddTable(Table{})

	want := Stats{Slides: 2, Texts: 1, Shapes: 1, Images: 3, Tables: 1}
	if got := d.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}

	assets := d.Assets()
	if len(assets) != 2 || assets[0] != "logo.svg" || assets[1] != "dark.svg" {
		t.Errorf("Assets() = %v", assets)
	}

	texts := Collect[Text](d.Slides[0])
	if len(texts) != 1 {
		t.Fatalf("Collect[Text]() = %d commands, want 1", len(texts))
	}
	if p := texts[0].Paragraphs(); len(p) != 2 || p[1] != "b" {
		t.Errorf("Paragraphs() = %q", p)
	}
	if d.Slides[1].Background != "1A1A1A" {
		t.Errorf("Background = %q", d.Slides[1].Background)
	}
}

func TestParagraphsPreferBullets(t *testing.T) {
	txt := Text{Content: "ignored", Bullets: []string{"one", "two"}}
	if p := txt.Paragraphs(); len(p) != 2 || p[0] != "one" {
		t.Errorf("Paragraphs() = %q, want bullets", p)
	}
	if p := (Text{}).Paragraphs(); p != nil {
		t.Errorf("empty Paragraphs() = %q, want nil", p)
	}
}

func TestCommandKind(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Text{}, "text"},
		{Shape{Kind: ShapeOval}, "shape"},
		{Image{}, "image"},
		{Table{}, "table"},
	}
	for _, tt := range tests {
		if got := tt.cmd.CommandKind(); got != tt.want {
			t.Errorf("CommandKind() = %q, want %q", got, tt.want)
		}
	}
}
