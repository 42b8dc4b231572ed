package slides

import (
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/render/layout"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

// full spans the content width.
var full = Frac(1)

// Default returns the proposal template table.
func Default() Table {
	return Table{
		KindTitle: {
			Kind:       KindTitle,
			Background: theme.RoleAccent,
			Logo:       theme.LogoDark,
			Elements: []Element{
				{Kind: ElemText, Field: "main", Box: Box{Y: In(1.3), W: full, H: In(1.5)}, Text: layout.TextSpec{
					Font: theme.FontHeading, Size: 36, Color: theme.RoleInverse, Bold: true, CharSpacing: 2, LineSpacing: 1.1,
				}},
				{Kind: ElemRule, Role: theme.RoleInverse, Box: Box{Y: In(3.0), W: In(0.6), H: In(0.015)}},
				{Kind: ElemText, Field: "subtitle", Box: Box{Y: In(3.15), W: full, H: In(0.4)}, Text: layout.TextSpec{
					Size: 14, Color: theme.RoleInverse, Transparency: 20,
				}},
				{Kind: ElemText, Field: "client", Box: Box{Y: In(4.2), W: full, H: In(0.3)}, Text: layout.TextSpec{
					Size: 13, Color: theme.RoleInverse, Transparency: 35,
				}},
			},
		},

		KindAbout: {
			Kind:       KindAbout,
			Background: theme.RoleBackground,
			Logo:       theme.LogoLight,
			Heading:    "heading",
			Elements: []Element{
				{Kind: ElemText, Field: "description", Box: Box{Y: In(1.3), W: full, H: In(0.4)}, Text: layout.TextSpec{
					Size: 11, LineSpacing: 1.5,
				}},
				{Kind: ElemStats, Box: Box{Y: In(2.0)}},
				{Kind: ElemText, Field: "services", Box: Box{Y: In(4.0), W: full, H: In(0.25)}, Text: layout.TextSpec{
					Font: theme.FontCaption, Size: 9, Color: theme.RoleMuted, Align: canvas.AlignCenter,
				}},
			},
		},

		KindAnalysis: {
			Kind:       KindAnalysis,
			Background: theme.RoleBackground,
			Logo:       theme.LogoLight,
			Heading:    "heading",
			Elements: []Element{
				{Kind: ElemBullets, Field: "points", Limit: 4, Box: Box{Y: In(1.4), W: Frac(0.55), H: In(2.8)}, Text: layout.TextSpec{
					Size: 11, LineSpacing: 1.5, SpaceAfter: 8,
				}},
				{Kind: ElemPanel, Field: "placeholder", Box: Box{X: Frac(0.58), Y: In(1.4), W: Frac(0.42), H: In(2.8)}},
			},
		},

		KindSection: {
			Kind:       KindSection,
			Background: theme.RoleSection,
			Logo:       LogoAuto,
			Elements: []Element{
				{Kind: ElemText, Field: "number", Box: Box{Y: In(1.5), W: In(1.0), H: In(0.3)}, Text: layout.TextSpec{
					Size: 11, Color: theme.RoleMuted, NoShrink: true,
				}},
				{Kind: ElemText, Field: "title", Box: Box{Y: In(1.9), W: Frac(0.7), H: In(1.0)}, Text: layout.TextSpec{
					Font: theme.FontHeading, Size: 26, Color: theme.RoleSectionText, Bold: true, CharSpacing: 1.5, LineSpacing: 1.1,
				}},
				{Kind: ElemAccent, Box: Box{Y: In(3.05), W: In(0.6)}},
				{Kind: ElemText, Field: "description", Box: Box{Y: In(3.2), W: Frac(0.6), H: In(0.4)}, Text: layout.TextSpec{
					Size: 12, Color: theme.RoleMuted,
				}},
			},
		},

		KindService: {
			Kind:       KindService,
			Background: theme.RoleBackground,
			Logo:       theme.LogoLight,
			Heading:    "title",
			Elements:   []Element{{Kind: ElemService}},
		},

		KindBudget: {
			Kind:       KindBudget,
			Background: theme.RoleBackground,
			Logo:       theme.LogoLight,
			Heading:    "heading",
			Elements: []Element{
				{Kind: ElemTable, Box: Box{Y: In(1.4), W: full}},
				{Kind: ElemTotals, Box: Box{FromCursor: true}},
				{Kind: ElemText, Field: "footnote", Box: Box{Y: In(0.5), W: full, H: In(0.25), FromCursor: true}, Text: layout.TextSpec{
					Size: 8, Color: theme.RoleMuted, Italic: true,
				}},
			},
		},

		KindTimeline: {
			Kind:       KindTimeline,
			Background: theme.RoleBackground,
			Logo:       theme.LogoLight,
			Heading:    "heading",
			Elements:   []Element{{Kind: ElemTimeline, Box: Box{Y: In(1.8)}}},
		},

		KindTestimonial: {
			Kind:       KindTestimonial,
			Background: theme.RoleSurfaceWarm,
			Logo:       theme.LogoLight,
			Elements:   []Element{{Kind: ElemQuote}},
		},

		KindClosing: {
			Kind:       KindClosing,
			Background: theme.RoleDark,
			Logo:       theme.LogoDark,
			Elements:   []Element{{Kind: ElemClosing}},
		},
	}
}
