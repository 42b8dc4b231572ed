package slides

import (
	"fmt"

	"github.com/apgmedia/apgdeck/pkg/content"
	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/render/layout"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

// SlideSummary describes one composed slide.
type SlideSummary struct {
	Index      int    `json:"index"`
	Kind       Kind   `json:"kind"`
	Background string `json:"background"`
	Logo       string `json:"logo"`
	Commands   int    `json:"commands"`
}

// Summary describes a composed deck.
type Summary struct {
	Theme  string         `json:"theme"`
	Slides []SlideSummary `json:"slides"`
}

// Count returns the number of slides of the given kind.
func (s Summary) Count(kind Kind) int {
	n := 0
	for _, sl := range s.Slides {
		if sl.Kind == kind {
			n++
		}
	}
	return n
}

// Compose draws every slide of d into doc using the default template table.
func Compose(doc canvas.Document, th *theme.Theme, d content.Deck) (Summary, error) {
	return ComposeWith(doc, th, d, Default())
}

// ComposeWith draws every slide of d into doc using the given templates, in
// Order. It stops at the first element that cannot be laid out.
func ComposeWith(doc canvas.Document, th *theme.Theme, d content.Deck, table Table) (Summary, error) {
	sum := Summary{Theme: th.Name()}
	for _, kind := range Order {
		tpl, ok := table[kind]
		if !ok {
			return sum, apgerr.New(apgerr.ErrCodeInvalidInput, "no template for slide kind %q", kind)
		}
		for _, rec := range Records(kind, d) {
			index := len(sum.Slides)
			bg := th.Color(tpl.Background)
			slide := &counter{Slide: doc.AddSlide(bg)}
			logo := logoFor(tpl.Logo, bg)
			if err := render(slide, th, tpl, logo, rec); err != nil {
				return sum, fmt.Errorf("slide %d (%s): %w", index+1, kind, err)
			}
			sum.Slides = append(sum.Slides, SlideSummary{
				Index:      index,
				Kind:       kind,
				Background: bg,
				Logo:       logo.String(),
				Commands:   slide.n,
			})
		}
	}
	return sum, nil
}

func logoFor(v theme.LogoVariant, bg string) theme.LogoVariant {
	if v != LogoAuto {
		return v
	}
	if theme.IsDark(bg) {
		return theme.LogoDark
	}
	return theme.LogoLight
}

func render(s canvas.Slide, th *theme.Theme, tpl Template, logo theme.LogoVariant, rec Record) error {
	layout.Logo(s, th, logo)
	if tpl.Heading != "" {
		layout.Heading(s, th, rec.Strings[tpl.Heading], layout.HeadingOptions{})
	}

	m := th.Metrics()
	cursor := 0.0
	for _, el := range tpl.Elements {
		box := el.Box.Resolve(m, cursor)
		switch el.Kind {
		case ElemText:
			layout.Text(s, th, box, rec.Strings[el.Field], el.Text)
		case ElemAccent:
			layout.AccentLine(s, th, box.X, box.Y, box.W)
		case ElemRule:
			layout.Rule(s, th, box, el.Role)
		case ElemPanel:
			layout.Panel(s, th, box, rec.Strings[el.Field])
		case ElemBullets:
			layout.Bullets(s, th, box, rec.Lists[el.Field], el.Limit, el.Text)
		case ElemStats:
			if _, err := layout.StatCards(s, th, rec.Stats, box.Y); err != nil {
				return err
			}
		case ElemTable:
			b := rec.Budget
			layout.Table(s, th, b.Headers, b.Rows, layout.TableOptions{Y: box.Y, W: box.W, ColW: b.ColW})
			cursor = layout.TotalsY(box.Y, len(b.Rows))
		case ElemTotals:
			if len(rec.Budget.Totals) > 0 {
				layout.Totals(s, th, rec.Budget.Totals, rec.Budget.ColW, box.Y)
			}
		case ElemTimeline:
			if _, err := layout.Timeline(s, th, rec.Phases, box.Y); err != nil {
				return err
			}
		case ElemService:
			layout.ServiceDetail(s, th, rec.Service, rec.Labels)
		case ElemQuote:
			layout.QuoteBlock(s, th, rec.Quote)
		case ElemClosing:
			layout.Closing(s, th, rec.Closing)
		default:
			return apgerr.New(apgerr.ErrCodeUnsupported, "element kind %s", el.Kind)
		}
	}
	return nil
}

// counter counts the commands a slide receives.
type counter struct {
	canvas.Slide
	n int
}

func (c *counter) AddText(t canvas.Text)   { c.n++; c.Slide.AddText(t) }
func (c *counter) AddShape(s canvas.Shape) { c.n++; c.Slide.AddShape(s) }
func (c *counter) AddImage(i canvas.Image) { c.n++; c.Slide.AddImage(i) }
func (c *counter) AddTable(t canvas.Table) { c.n++; c.Slide.AddTable(t) }
