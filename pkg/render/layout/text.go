package layout

import (
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

// TextSpec describes a text box in theme terms: font and colour are roles
// resolved against the theme when the box is placed.
type TextSpec struct {
	Font         string // font role, default body
	Size         float64
	Color        string // colour role, default text
	Bold         bool
	Italic       bool
	Align        canvas.Align
	VAlign       canvas.VAlign
	CharSpacing  float64
	LineSpacing  float64
	SpaceAfter   float64
	Transparency float64
	Upper        bool
	NoShrink     bool
}

// Style resolves the spec against a theme.
func (ts TextSpec) Style(th *theme.Theme) canvas.TextStyle {
	font := ts.Font
	if font == "" {
		font = theme.FontBody
	}
	color := ts.Color
	if color == "" {
		color = theme.RoleText
	}
	return canvas.TextStyle{
		Font:           th.Font(font),
		Size:           ts.Size,
		Color:          th.Color(color),
		Bold:           ts.Bold,
		Italic:         ts.Italic,
		Align:          ts.Align,
		VAlign:         ts.VAlign,
		CharSpacing:    ts.CharSpacing,
		LineSpacing:    ts.LineSpacing,
		ParaSpaceAfter: ts.SpaceAfter,
		Transparency:   ts.Transparency,
		Shrink:         !ts.NoShrink,
	}
}

// Text places a text box styled by spec.
func Text(s canvas.Slide, th *theme.Theme, box canvas.Rect, text string, spec TextSpec) canvas.Rect {
	if spec.Upper {
		text = th.Upper(text)
	}
	s.AddText(canvas.Text{Box: box, Content: text, Style: spec.Style(th)})
	return box
}

// Bullets places a bulleted list, one paragraph per item, at most limit
// items when limit is positive.
func Bullets(s canvas.Slide, th *theme.Theme, box canvas.Rect, items []string, limit int, spec TextSpec) canvas.Rect {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	s.AddText(canvas.Text{
		Box:         box,
		Bullets:     append([]string(nil), items...),
		BulletColor: th.Color(theme.RoleMutedStrong),
		Style:       spec.Style(th),
	})
	return box
}

// Rule places a thin filled bar in the given colour role.
func Rule(s canvas.Slide, th *theme.Theme, box canvas.Rect, role string) canvas.Rect {
	s.AddShape(canvas.Shape{
		Kind:  canvas.ShapeRoundRect,
		Box:   box,
		Style: canvas.ShapeStyle{Fill: th.Color(role)},
	})
	return box
}

// Panel places an outlined cool-surface card with a centred caption, used as
// a placeholder for visuals added by hand later.
func Panel(s canvas.Slide, th *theme.Theme, box canvas.Rect, caption string) canvas.Rect {
	s.AddShape(canvas.Shape{
		Kind: canvas.ShapeRoundRect,
		Box:  box,
		Style: canvas.ShapeStyle{
			Fill:   th.Color(theme.RoleSurfaceCool),
			Line:   canvas.LineStyle{Color: th.Color(theme.RoleRule), Width: ruleWidth},
			Radius: th.Style().Radius,
		},
	})
	if caption != "" {
		Text(s, th, box, caption, TextSpec{
			Font:   theme.FontHeading,
			Size:   11,
			Color:  theme.RoleMuted,
			Bold:   true,
			Align:  canvas.AlignCenter,
			VAlign: canvas.VAlignMiddle,
		})
	}
	return box
}
