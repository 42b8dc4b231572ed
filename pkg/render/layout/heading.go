package layout

import (
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

const (
	// HeadingGap is the space between a heading box and its accent line.
	HeadingGap = 0.05

	headingH        = 0.45
	headingSize     = 19.0
	headingLogoRoom = 2.0 // keeps headings clear of the top-right logo
	headingLineW    = 0.5

	accentH      = 0.03
	accentRadius = 0.01
)

// HeadingOptions adjusts a heading. Zero values select the defaults:
// Y at the top margin, height 0.45, 19pt, heading colour, 0.5 accent line.
type HeadingOptions struct {
	Y        float64
	H        float64
	FontSize float64
	Color    string
	NoAccent bool
	LineW    float64
}

// Heading places a slide heading and, unless disabled, the accent line
// directly beneath it. The accent line sits at Y + H + HeadingGap whatever
// the heading text is. It returns the heading box and the accent box (zero
// when NoAccent is set).
func Heading(s canvas.Slide, th *theme.Theme, text string, opts HeadingOptions) (canvas.Rect, canvas.Rect) {
	m := th.Metrics()
	y := valueOr(opts.Y, m.Top())
	h := valueOr(opts.H, headingH)
	color := opts.Color
	if color == "" {
		color = th.Color(theme.RoleHeading)
	}

	box := canvas.Rect{X: m.Left(), Y: y, W: m.ContentW - headingLogoRoom, H: h}
	s.AddText(canvas.Text{
		Box:     box,
		Content: text,
		Style: canvas.TextStyle{
			Font:   th.Font(theme.FontHeading),
			Size:   valueOr(opts.FontSize, headingSize),
			Color:  color,
			Bold:   th.Style().HeadingBold,
			Shrink: true,
		},
	})

	if opts.NoAccent {
		return box, canvas.Rect{}
	}
	accent := AccentLine(s, th, m.Left(), y+h+HeadingGap, valueOr(opts.LineW, headingLineW))
	return box, accent
}

// AccentLine places the short accent-coloured rule used under headings and
// figures.
func AccentLine(s canvas.Slide, th *theme.Theme, x, y, w float64) canvas.Rect {
	box := canvas.Rect{X: x, Y: y, W: w, H: accentH}
	s.AddShape(canvas.Shape{
		Kind: canvas.ShapeRoundRect,
		Box:  box,
		Style: canvas.ShapeStyle{
			Fill:   th.Color(theme.RoleAccent),
			Radius: accentRadius,
		},
	})
	return box
}

// Logo places the logo variant at the theme's logo position.
func Logo(s canvas.Slide, th *theme.Theme, variant theme.LogoVariant) canvas.Rect {
	l := th.Logo()
	return LogoAt(s, th, variant, l.X, l.Y)
}

// LogoAt places the logo variant with its top-left corner at (x, y).
func LogoAt(s canvas.Slide, th *theme.Theme, variant theme.LogoVariant, x, y float64) canvas.Rect {
	if variant == theme.LogoNone {
		return canvas.Rect{}
	}
	l := th.Logo()
	box := canvas.Rect{X: x, Y: y, W: l.W, H: l.Height(variant)}
	s.AddImage(canvas.Image{Box: box, Path: l.Path(variant)})
	return box
}

func valueOr(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
