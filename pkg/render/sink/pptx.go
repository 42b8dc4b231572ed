package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/gabriel-vasile/mimetype"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/render"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/render/layout"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

const (
	emuPerInch   = 914400
	pointsPerIn  = 72.0
	dashOn       = 4.0 // dash length as a multiple of the line width
	dashOff      = 3.0
	minRuleWidth = 0.75 // points
	svgLogoScale = 4.0
)

// PPTXOption configures PPTX rendering.
type PPTXOption func(*pptxRenderer)

type pptxRenderer struct {
	ctx       context.Context
	assetsDir string
	raster    *Rasterizer
	meta      *canvas.Metadata
}

// WithAssetsDir sets the directory image paths are resolved against.
func WithAssetsDir(dir string) PPTXOption {
	return func(r *pptxRenderer) { r.assetsDir = dir }
}

// WithRasterizer shares a shape rasterizer (and its cache) across renders.
func WithRasterizer(z *Rasterizer) PPTXOption {
	return func(r *pptxRenderer) { r.raster = z }
}

// WithMetadata overrides the deck metadata written to the document properties.
func WithMetadata(m canvas.Metadata) PPTXOption {
	return func(r *pptxRenderer) { r.meta = &m }
}

// WithContext passes a context to the cache hooks fired while rasterising.
func WithContext(ctx context.Context) PPTXOption {
	return func(r *pptxRenderer) { r.ctx = ctx }
}

// RenderPPTX serialises a recorded deck as a PowerPoint 2007+ document.
//
// Commands are drawn in recorded order, so later commands sit on top. Images
// are read from disk here; a missing file fails with ASSET_NOT_FOUND.
func RenderPPTX(deck *canvas.Deck, th *theme.Theme, opts ...PPTXOption) ([]byte, error) {
	if deck == nil || len(deck.Slides) == 0 {
		return nil, apgerr.New(apgerr.ErrCodeInvalidInput, "deck has no slides")
	}
	r := pptxRenderer{ctx: context.Background()}
	for _, opt := range opts {
		opt(&r)
	}
	if r.raster == nil {
		z, err := NewRasterizer(DefaultRasterCacheSize, DefaultRasterDPI)
		if err != nil {
			return nil, err
		}
		r.raster = z
	}
	meta := deck.Meta
	if r.meta != nil {
		meta = *r.meta
	}

	p := ppt.New()
	props := p.GetDocumentProperties()
	props.Title = meta.Title
	props.Creator = meta.Author

	w := pptxWriter{r: &r, th: th, layout: deck.Layout}
	for i, page := range deck.Slides {
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		if err := w.slide(slide, page); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
	}

	wr, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, apgerr.Wrap(apgerr.ErrCodeRenderFailed, err, "create pptx writer")
	}
	pw, ok := wr.(*ppt.PPTXWriter)
	if !ok {
		return nil, apgerr.New(apgerr.ErrCodeInternal, "unexpected writer type %T", wr)
	}
	var buf bytes.Buffer
	if err := pw.WriteTo(&buf); err != nil {
		return nil, apgerr.Wrap(apgerr.ErrCodeRenderFailed, err, "write pptx")
	}
	return buf.Bytes(), nil
}

type pptxWriter struct {
	r      *pptxRenderer
	th     *theme.Theme
	layout canvas.Layout
	bg     string
}

func (w *pptxWriter) slide(s *ppt.Slide, page *canvas.Page) error {
	w.bg = page.Background
	if page.Background != "" {
		fillBox(s, canvas.Rect{W: w.layout.W, H: w.layout.H}, page.Background)
	}
	for _, cmd := range page.Commands {
		var err error
		switch c := cmd.(type) {
		case canvas.Text:
			w.text(s, c)
		case canvas.Shape:
			err = w.shape(s, c)
		case canvas.Image:
			err = w.image(s, c)
		case canvas.Table:
			w.table(s, c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *pptxWriter) text(s *ppt.Slide, t canvas.Text) {
	paras := t.Paragraphs()
	if len(paras) == 0 {
		return
	}
	st := t.Style
	if st.Font == "" {
		st.Font = w.th.Font(theme.FontBody)
	}
	content := joinLines(paras)
	if st.Shrink {
		st.Size = layout.Fit(content, t.Box, st.Size, st.LineSpacing)
	}
	color := theme.Mix(st.Color, w.bg, st.Transparency)

	shape := s.CreateRichTextShape()
	placeText(shape, anchored(t.Box, content, st))
	for i, para := range paras {
		if i > 0 {
			shape.CreateParagraph()
		}
		align(shape.GetActiveParagraph(), st.Align)
		if len(t.Bullets) > 0 {
			bullet := shape.CreateTextRun("• ")
			styleRun(bullet, st, valueOr(t.BulletColor, color))
		}
		run := shape.CreateTextRun(para)
		styleRun(run, st, color)
	}
}

// anchored moves a top-anchored text box so that the estimated text block
// sits in the middle or at the bottom of the original box.
func anchored(box canvas.Rect, content string, st canvas.TextStyle) canvas.Rect {
	if st.VAlign == canvas.VAlignTop || st.Size <= 0 {
		return box
	}
	spacing := st.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	lines := layout.WrappedLines(content, box.W, st.Size)
	h := math.Min(box.H, float64(lines)*st.Size*1.2*spacing/pointsPerIn+0.1)
	switch st.VAlign {
	case canvas.VAlignMiddle:
		box.Y += (box.H - h) / 2
	case canvas.VAlignBottom:
		box.Y += box.H - h
	}
	box.H = h
	return box
}

func (w *pptxWriter) shape(s *ppt.Slide, sh canvas.Shape) error {
	if Rasterizes(sh) {
		data, err := w.r.raster.PNG(w.r.ctx, sh)
		if err != nil {
			return err
		}
		img := s.CreateDrawingShape()
		img.SetImageData(data, "image/png")
		placeImage(img, normalised(sh.Box))
		return nil
	}

	if sh.Kind == canvas.ShapeLine {
		w.line(s, sh)
		return nil
	}
	if sh.Style.Fill != "" {
		fillBox(s, sh.Box, sh.Style.Fill)
	}
	if ln := sh.Style.Line; ln.Width > 0 && ln.Color != "" {
		outline(s, sh.Box, ln.Color, ln.Width)
	}
	return nil
}

// line draws an axis-aligned line as one thin box, or as a row of them when dashed.
func (w *pptxWriter) line(s *ppt.Slide, sh canvas.Shape) {
	ln := sh.Style.Line
	width := math.Max(ln.Width, minRuleWidth) / pointsPerIn
	b := normalised(sh.Box)
	horizontal := b.H == 0
	length := b.W
	if !horizontal {
		length = b.H
	}

	segment := func(from, to float64) {
		r := canvas.Rect{X: b.X + from, Y: b.Y - width/2, W: to - from, H: width}
		if !horizontal {
			r = canvas.Rect{X: b.X - width/2, Y: b.Y + from, W: width, H: to - from}
		}
		fillBox(s, r, ln.Color)
	}

	if ln.Dash != canvas.DashDash {
		segment(0, length)
		return
	}
	on, off := dashOn*width, dashOff*width
	for pos := 0.0; pos < length; pos += on + off {
		segment(pos, math.Min(pos+on, length))
	}
}

func (w *pptxWriter) image(s *ppt.Slide, img canvas.Image) error {
	data, mime, err := w.loadImage(img.Path)
	if err != nil {
		return err
	}
	shape := s.CreateDrawingShape()
	shape.SetImageData(data, mime)
	placeImage(shape, img.Box)
	return nil
}

func (w *pptxWriter) loadImage(path string) ([]byte, string, error) {
	full := path
	if w.r.assetsDir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(w.r.assetsDir, path)
	}
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", apgerr.New(apgerr.ErrCodeAssetNotFound, "image %q not found (looked in %s)", path, full)
	}
	if err != nil {
		return nil, "", apgerr.Wrap(apgerr.ErrCodeRenderFailed, err, "read image %q", path)
	}

	mime := mimetype.Detect(data)
	if mime.Is("image/svg+xml") && render.CanConvert() {
		out, err := render.ToPNG(data, svgLogoScale)
		if err != nil {
			return nil, "", err
		}
		return out, "image/png", nil
	}
	return data, mime.String(), nil
}

func (w *pptxWriter) table(s *ppt.Slide, t canvas.Table) {
	pad := t.Margin
	for ri, row := range t.Rows {
		for ci, cell := range row {
			box := t.CellRect(ri, ci)
			if cell.Fill != "" {
				fillBox(s, box, cell.Fill)
			}
			inner := canvas.Rect{
				X: box.X + pad[3]/pointsPerIn,
				Y: box.Y + pad[0]/pointsPerIn,
				W: box.W - (pad[1]+pad[3])/pointsPerIn,
				H: box.H - (pad[0]+pad[2])/pointsPerIn,
			}
			bg := w.bg
			if cell.Fill != "" {
				w.bg = cell.Fill
			}
			w.text(s, canvas.Text{Box: inner, Content: cell.Text, Style: cell.Style})
			w.bg = bg
		}
	}
	for ri, row := range t.Rows {
		for ci, cell := range row {
			box := t.CellRect(ri, ci)
			for edge := canvas.EdgeTop; edge <= canvas.EdgeLeft; edge++ {
				b := t.EdgeBorder(cell, edge)
				if b.Width <= 0 || b.Color == "" {
					continue
				}
				fillBox(s, edgeRect(box, edge, b.Width/pointsPerIn), b.Color)
			}
		}
	}
}

func edgeRect(box canvas.Rect, edge int, width float64) canvas.Rect {
	switch edge {
	case canvas.EdgeTop:
		return canvas.Rect{X: box.X, Y: box.Y - width/2, W: box.W, H: width}
	case canvas.EdgeRight:
		return canvas.Rect{X: box.Right() - width/2, Y: box.Y, W: width, H: box.H}
	case canvas.EdgeBottom:
		return canvas.Rect{X: box.X, Y: box.Bottom() - width/2, W: box.W, H: width}
	default:
		return canvas.Rect{X: box.X - width/2, Y: box.Y, W: width, H: box.H}
	}
}

func outline(s *ppt.Slide, box canvas.Rect, color string, widthPt float64) {
	w := widthPt / pointsPerIn
	for edge := canvas.EdgeTop; edge <= canvas.EdgeLeft; edge++ {
		fillBox(s, edgeRect(box, edge, w), color)
	}
}

func fillBox(s *ppt.Slide, box canvas.Rect, color string) {
	shape := s.CreateRichTextShape()
	placeText(shape, box)
	shape.SetFill(ppt.NewFill().SetSolid(ppt.NewColor(argb(color))))
}

func placeText(shape *ppt.RichTextShape, box canvas.Rect) {
	shape.SetOffsetX(emu(box.X)).SetOffsetY(emu(box.Y))
	shape.SetWidth(emu(box.W)).SetHeight(emu(box.H))
}

func placeImage(shape *ppt.DrawingShape, box canvas.Rect) {
	shape.SetOffsetX(emu(box.X)).SetOffsetY(emu(box.Y))
	shape.SetWidth(emu(box.W)).SetHeight(emu(box.H))
}

func styleRun(run *ppt.TextRun, st canvas.TextStyle, color string) {
	f := run.GetFont()
	f.Name = st.Font
	setSize(&f.Size, st.Size)
	f.Italic = st.Italic
	f.SetBold(st.Bold).SetColor(ppt.NewColor(argb(color)))
}

// setSize assigns a point size to a numeric font size field.
func setSize[T ~int | ~int32 | ~int64 | ~float32 | ~float64](dst *T, pt float64) {
	*dst = T(pt)
}

func align(p *ppt.Paragraph, a canvas.Align) {
	switch a {
	case canvas.AlignCenter:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	case canvas.AlignRight:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
	}
}

// normalised returns b with non-negative width and height.
func normalised(b canvas.Rect) canvas.Rect {
	if b.W < 0 {
		b.X, b.W = b.X+b.W, -b.W
	}
	if b.H < 0 {
		b.Y, b.H = b.Y+b.H, -b.H
	}
	return b
}

func emu(in float64) int64 { return int64(math.Round(in * emuPerInch)) }

func argb(hex string) string { return "FF" + hex }

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func joinLines(lines []string) string {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	b := make([]byte, 0, n)
	for i, l := range lines {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, l...)
	}
	return string(b)
}
