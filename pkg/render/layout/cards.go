package layout

import (
	"github.com/apgmedia/apgdeck/pkg/content"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

// PricingCardH is the height of a pricing card.
const PricingCardH = 1.0

var microShadow = canvas.Shadow{Blur: 2, Offset: 1, Color: "000000", Opacity: 0.06}

// PricingCard places a bordered card with a small caption and a large
// accent-coloured figure. It returns the box of the figure.
func PricingCard(s canvas.Slide, th *theme.Theme, box canvas.Rect, caption, value string) canvas.Rect {
	shadow := microShadow
	s.AddShape(canvas.Shape{
		Kind: canvas.ShapeRoundRect,
		Box:  box,
		Style: canvas.ShapeStyle{
			Fill:   th.Color(theme.RoleBackground),
			Line:   canvas.LineStyle{Color: th.Color(theme.RoleRule), Width: ruleWidth},
			Radius: th.Style().Radius,
			Shadow: &shadow,
		},
	})
	inner := box.W - 0.3
	Text(s, th, canvas.Rect{X: box.X + 0.15, Y: box.Y + 0.08, W: inner, H: 0.2}, caption, TextSpec{
		Font:        theme.FontLabel,
		Size:        8,
		Color:       theme.RoleMuted,
		CharSpacing: 0.5,
		Upper:       true,
	})
	return Text(s, th, canvas.Rect{X: box.X + 0.15, Y: box.Y + 0.3, W: inner, H: 0.45}, value, TextSpec{
		Font:  theme.FontHeading,
		Size:  24,
		Color: theme.RoleAccent,
		Bold:  true,
	})
}

// ServiceResult reports the main boxes of a service slide body.
type ServiceResult struct {
	Badge      canvas.Rect
	Capability canvas.Rect
	Budget     canvas.Rect
	Mgmt       canvas.Rect
}

// ServiceDetail lays out a service slide body: a funnel-stage badge and the
// description on the left, a capability box beneath them, and the budget and
// management pricing cards stacked in the right column.
func ServiceDetail(s canvas.Slide, th *theme.Theme, svc content.Service, labels content.ServiceLabels) ServiceResult {
	m := th.Metrics()
	left := m.Left()
	colW := m.ContentW * 0.55
	var res ServiceResult

	res.Badge = canvas.Rect{X: left, Y: 1.25, W: 2.5, H: 0.28}
	s.AddShape(canvas.Shape{
		Kind:  canvas.ShapeRoundRect,
		Box:   res.Badge,
		Style: canvas.ShapeStyle{Fill: th.Color(theme.RoleAccentSubtle), Radius: th.Style().BadgeRadius},
	})
	Text(s, th, res.Badge.Inset(0.1, 0), svc.FunnelStage, TextSpec{
		Font:        theme.FontLabel,
		Size:        8,
		Color:       theme.RoleAccent,
		VAlign:      canvas.VAlignMiddle,
		CharSpacing: 0.5,
		Upper:       true,
	})

	Text(s, th, canvas.Rect{X: left, Y: 1.7, W: colW, H: 0.5}, svc.Description, TextSpec{
		Size:        11,
		LineSpacing: 1.5,
	})

	res.Capability = canvas.Rect{X: left, Y: 2.4, W: colW, H: 1.0}
	s.AddShape(canvas.Shape{
		Kind:  canvas.ShapeRoundRect,
		Box:   res.Capability,
		Style: canvas.ShapeStyle{Fill: th.Color(theme.RoleSurfaceCool), Radius: th.Style().Radius},
	})
	Text(s, th, canvas.Rect{X: left + 0.15, Y: 2.45, W: colW - 0.3, H: 0.22}, labels.Capability, TextSpec{
		Font:        theme.FontLabel,
		Size:        8,
		Color:       theme.RoleMutedStrong,
		CharSpacing: 0.5,
		Upper:       true,
	})
	Text(s, th, canvas.Rect{X: left + 0.15, Y: 2.7, W: colW - 0.3, H: 0.6}, svc.Capability, TextSpec{
		Size:        10,
		LineSpacing: 1.4,
	})

	px := left + m.ContentW*0.58
	pw := m.ContentW * 0.42
	res.Budget = PricingCard(s, th, canvas.Rect{X: px, Y: 1.7, W: pw, H: PricingCardH}, labels.Budget, svc.Budget)
	res.Mgmt = PricingCard(s, th, canvas.Rect{X: px, Y: 2.9, W: pw, H: PricingCardH}, labels.Mgmt, svc.Mgmt)
	return res
}

// QuoteBlock places a testimonial: a short accent rule, the quote in italics
// and the attribution in the accent colour. It returns the quote box.
func QuoteBlock(s canvas.Slide, th *theme.Theme, t content.Testimonial) canvas.Rect {
	m := th.Metrics()
	x := m.Left() + 0.5
	w := m.ContentW - 1.5

	AccentLine(s, th, x, 1.5, 0.5)
	box := Text(s, th, canvas.Rect{X: x, Y: 1.8, W: w, H: 1.8}, t.Quote, TextSpec{
		Font:        theme.FontQuote,
		Size:        19,
		Italic:      true,
		LineSpacing: 1.6,
	})
	Text(s, th, canvas.Rect{X: x, Y: 3.8, W: w, H: 0.3}, t.Attribution(), TextSpec{
		Font:  theme.FontCaption,
		Size:  10,
		Color: theme.RoleAccent,
	})
	return box
}

// Closing places the thank-you slide body on a dark background: the thanks
// line, a centred accent rule, the call to action, contact lines and the
// inverse logo centred at the bottom.
func Closing(s canvas.Slide, th *theme.Theme, c content.Closing) canvas.Rect {
	m := th.Metrics()
	full := func(y, h float64) canvas.Rect {
		return canvas.Rect{X: m.Left(), Y: y, W: m.ContentW, H: h}
	}

	box := Text(s, th, full(1.2, 0.6), c.Thanks, TextSpec{
		Font:        theme.FontHeading,
		Size:        32,
		Color:       theme.RoleInverse,
		Bold:        true,
		Align:       canvas.AlignCenter,
		CharSpacing: 3,
	})
	AccentLine(s, th, m.CenterX()-0.3, 2.0, 0.6)
	Text(s, th, full(2.2, 0.4), c.CTA, TextSpec{
		Size:         16,
		Color:        theme.RoleInverse,
		Align:        canvas.AlignCenter,
		Transparency: 30,
	})
	Text(s, th, full(3.0, 0.6), c.Contact(), TextSpec{
		Size:         12,
		Color:        theme.RoleInverse,
		Align:        canvas.AlignCenter,
		LineSpacing:  1.5,
		Transparency: 50,
	})
	LogoAt(s, th, theme.LogoDark, m.CenterX()-th.Logo().W/2, 4.2)
	return box
}
