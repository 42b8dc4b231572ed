package sink

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/apgmedia/apgdeck/pkg/render/canvas"
)

const (
	pxPerInch     = 96.0
	pxPerPoint    = pxPerInch / pointsPerIn
	defaultGapPx  = 24.0
	sheetBackdrop = "#E5E5E5"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	assetsDir string
	gap       float64
	inline    bool
}

// WithSVGAssetsDir sets the directory image paths are resolved against.
func WithSVGAssetsDir(dir string) SVGOption {
	return func(r *svgRenderer) { r.assetsDir = dir }
}

// WithInlineImages embeds images as data URIs so the sheet is self-contained.
// Images that cannot be read are left as links.
func WithInlineImages() SVGOption { return func(r *svgRenderer) { r.inline = true } }

// WithGap sets the vertical gap between slides in pixels.
func WithGap(px float64) SVGOption { return func(r *svgRenderer) { r.gap = px } }

// RenderSVG draws every slide of the deck one below the other at 96 px per
// inch. It is a preview: text is not wrapped and shadows are omitted.
func RenderSVG(deck *canvas.Deck, opts ...SVGOption) []byte {
	r := svgRenderer{gap: defaultGapPx}
	for _, opt := range opts {
		opt(&r)
	}

	w := deck.Layout.W * pxPerInch
	h := deck.Layout.H * pxPerInch
	n := float64(len(deck.Slides))
	total := n*h + max(n-1, 0)*r.gap

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, total, w, total)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", sheetBackdrop)

	for i, page := range deck.Slides {
		y := float64(i) * (h + r.gap)
		fmt.Fprintf(&buf, `  <g id="slide-%d" transform="translate(0 %.1f)">`+"\n", i+1, y)
		fmt.Fprintf(&buf, `    <clipPath id="clip-%d"><rect width="%.1f" height="%.1f"/></clipPath>`+"\n", i+1, w, h)
		fmt.Fprintf(&buf, `    <g clip-path="url(#clip-%d)">`+"\n", i+1)
		fmt.Fprintf(&buf, `      <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, fill(page.Background))
		for _, cmd := range page.Commands {
			switch c := cmd.(type) {
			case canvas.Text:
				r.text(&buf, c)
			case canvas.Shape:
				r.shape(&buf, c)
			case canvas.Image:
				r.image(&buf, c)
			case canvas.Table:
				r.table(&buf, c)
			}
		}
		buf.WriteString("    </g>\n  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) text(buf *bytes.Buffer, t canvas.Text) {
	paras := t.Paragraphs()
	if len(paras) == 0 {
		return
	}
	st := t.Style
	size := st.Size * pxPerPoint
	spacing := st.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	lineH := size * 1.2 * spacing
	blockH := lineH * float64(len(paras))

	box := px(t.Box)
	x, anchor := box.X, "start"
	switch st.Align {
	case canvas.AlignCenter:
		x, anchor = box.CenterX(), "middle"
	case canvas.AlignRight:
		x, anchor = box.Right(), "end"
	}
	y := box.Y + size
	switch st.VAlign {
	case canvas.VAlignMiddle:
		y = box.Y + (box.H-blockH)/2 + size
	case canvas.VAlignBottom:
		y = box.Bottom() - blockH + size
	}

	fmt.Fprintf(buf, `      <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="%s"`,
		x, y, escape(st.Font), size, fill(st.Color), anchor)
	if st.Bold {
		buf.WriteString(` font-weight="bold"`)
	}
	if st.Italic {
		buf.WriteString(` font-style="italic"`)
	}
	if st.CharSpacing != 0 {
		fmt.Fprintf(buf, ` letter-spacing="%.1f"`, st.CharSpacing*pxPerPoint)
	}
	if st.Transparency > 0 {
		fmt.Fprintf(buf, ` fill-opacity="%.2f"`, 1-min(st.Transparency, 100)/100)
	}
	buf.WriteString(">")
	for i, p := range paras {
		dy := 0.0
		if i > 0 {
			dy = lineH
		}
		if len(t.Bullets) > 0 {
			fmt.Fprintf(buf, `<tspan x="%.1f" dy="%.1f"><tspan fill="%s">• </tspan>%s</tspan>`,
				x, dy, fill(valueOr(t.BulletColor, st.Color)), escape(p))
			continue
		}
		fmt.Fprintf(buf, `<tspan x="%.1f" dy="%.1f">%s</tspan>`, x, dy, escape(p))
	}
	buf.WriteString("</text>\n")
}

func (r *svgRenderer) shape(buf *bytes.Buffer, s canvas.Shape) {
	box := px(s.Box)
	st := s.Style
	stroke := strokeAttrs(st.Line)
	switch s.Kind {
	case canvas.ShapeOval:
		fmt.Fprintf(buf, `      <ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="%s"%s/>`+"\n",
			box.CenterX(), box.CenterY(), box.W/2, box.H/2, fillOrNone(st.Fill), stroke)
	case canvas.ShapeLine:
		fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"%s/>`+"\n",
			box.X, box.Y, box.Right(), box.Bottom(), stroke)
	default:
		radius := 0.0
		if s.Kind == canvas.ShapeRoundRect {
			radius = st.Radius * pxPerInch
		}
		fmt.Fprintf(buf, `      <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"%s/>`+"\n",
			box.X, box.Y, box.W, box.H, radius, fillOrNone(st.Fill), stroke)
	}
}

func (r *svgRenderer) image(buf *bytes.Buffer, img canvas.Image) {
	box := px(img.Box)
	href := img.Path
	full := img.Path
	if r.assetsDir != "" && !filepath.IsAbs(img.Path) {
		full = filepath.Join(r.assetsDir, img.Path)
		href = full
	}
	if r.inline {
		if data, err := os.ReadFile(full); err == nil {
			href = "data:" + mimetype.Detect(data).String() + ";base64," + base64.StdEncoding.EncodeToString(data)
		}
	}
	fmt.Fprintf(buf, `      <image x="%.1f" y="%.1f" width="%.1f" height="%.1f" href="%s" xlink:href="%s" preserveAspectRatio="xMidYMid meet"/>`+"\n",
		box.X, box.Y, box.W, box.H, escape(href), escape(href))
}

func (r *svgRenderer) table(buf *bytes.Buffer, t canvas.Table) {
	pad := t.Margin
	for ri, row := range t.Rows {
		for ci, cell := range row {
			box := t.CellRect(ri, ci)
			if cell.Fill != "" {
				p := px(box)
				fmt.Fprintf(buf, `      <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
					p.X, p.Y, p.W, p.H, fill(cell.Fill))
			}
			inner := canvas.Rect{
				X: box.X + pad[3]/pointsPerIn,
				Y: box.Y + pad[0]/pointsPerIn,
				W: box.W - (pad[1]+pad[3])/pointsPerIn,
				H: box.H - (pad[0]+pad[2])/pointsPerIn,
			}
			r.text(buf, canvas.Text{Box: inner, Content: cell.Text, Style: cell.Style})
		}
	}
	for ri, row := range t.Rows {
		for ci, cell := range row {
			p := px(t.CellRect(ri, ci))
			edges := [4][4]float64{
				{p.X, p.Y, p.Right(), p.Y},
				{p.Right(), p.Y, p.Right(), p.Bottom()},
				{p.X, p.Bottom(), p.Right(), p.Bottom()},
				{p.X, p.Y, p.X, p.Bottom()},
			}
			for edge, e := range edges {
				b := t.EdgeBorder(cell, edge)
				if b.Width <= 0 || b.Color == "" {
					continue
				}
				fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f"/>`+"\n",
					e[0], e[1], e[2], e[3], fill(b.Color), b.Width*pxPerPoint)
			}
		}
	}
}

func strokeAttrs(l canvas.LineStyle) string {
	if l.Width <= 0 || l.Color == "" {
		return ""
	}
	attrs := fmt.Sprintf(` stroke="%s" stroke-width="%.2f"`, fill(l.Color), l.Width*pxPerPoint)
	if l.Dash == canvas.DashDash {
		w := l.Width * pxPerPoint
		attrs += fmt.Sprintf(` stroke-dasharray="%.1f %.1f"`, dashOn*w, dashOff*w)
	}
	return attrs
}

func px(r canvas.Rect) canvas.Rect {
	return canvas.Rect{X: r.X * pxPerInch, Y: r.Y * pxPerInch, W: r.W * pxPerInch, H: r.H * pxPerInch}
}

func fill(hex string) string {
	if hex == "" {
		return "#FFFFFF"
	}
	return "#" + hex
}

func fillOrNone(hex string) string {
	if hex == "" {
		return "none"
	}
	return "#" + hex
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
