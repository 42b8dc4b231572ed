// Package slides composes a whole deck from a declarative template table.
//
// Each slide kind maps to a [Template]: a background colour role, a logo
// variant, an optional heading field, and an ordered list of [Element]s.
// Elements name the content field they draw and a [Box] rule giving their
// position relative to the content area. Compose walks the fixed slide order
// once, top to bottom, and hands each element to the layout engine.
package slides

import (
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/render/layout"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

// Kind identifies a slide template.
type Kind string

const (
	KindTitle       Kind = "title"
	KindAbout       Kind = "about"
	KindAnalysis    Kind = "analysis"
	KindSection     Kind = "section"
	KindService     Kind = "service"
	KindBudget      Kind = "budget"
	KindTimeline    Kind = "timeline"
	KindTestimonial Kind = "testimonial"
	KindClosing     Kind = "closing"
)

// Order is the fixed slide order. Kinds backed by a list (services) expand to
// one slide per item.
var Order = []Kind{
	KindTitle, KindAbout, KindAnalysis, KindSection, KindService,
	KindBudget, KindTimeline, KindTestimonial, KindClosing,
}

// Length is a distance in inches plus a fraction of the content width.
type Length struct {
	Abs       float64
	OfContent float64
}

// In returns an absolute length.
func In(v float64) Length { return Length{Abs: v} }

// Frac returns a length proportional to the content width.
func Frac(f float64) Length { return Length{OfContent: f} }

// Resolve converts the length to inches.
func (l Length) Resolve(m theme.Metrics) float64 {
	return l.Abs + l.OfContent*m.ContentW
}

// Anchor selects what a Box's x offset is measured from.
type Anchor int

const (
	AnchorContent Anchor = iota // content area left edge
	AnchorCanvas                // canvas left edge
	AnchorCenter                // canvas centre; X is usually negative
)

// Box is a position rule. Y is measured from the canvas top, or from the
// composition cursor when FromCursor is set (the cursor is moved by flow
// elements such as tables).
type Box struct {
	X, Y, W, H Length
	Anchor     Anchor
	FromCursor bool
}

// Resolve converts the rule to an absolute rectangle.
func (b Box) Resolve(m theme.Metrics, cursor float64) canvas.Rect {
	x := b.X.Resolve(m)
	switch b.Anchor {
	case AnchorContent:
		x += m.Left()
	case AnchorCenter:
		x += m.CenterX()
	}
	y := b.Y.Resolve(m)
	if b.FromCursor {
		y += cursor
	}
	return canvas.Rect{X: x, Y: y, W: b.W.Resolve(m), H: b.H.Resolve(m)}
}

// ElementKind selects how an element is drawn.
type ElementKind int

const (
	ElemText ElementKind = iota
	ElemAccent
	ElemRule
	ElemPanel
	ElemBullets
	ElemStats
	ElemTable
	ElemTotals
	ElemTimeline
	ElemService
	ElemQuote
	ElemClosing
)

var elementNames = [...]string{
	"text", "accent", "rule", "panel", "bullets", "stats",
	"table", "totals", "timeline", "service", "quote", "closing",
}

func (k ElementKind) String() string {
	if int(k) < len(elementNames) {
		return elementNames[k]
	}
	return "unknown"
}

// Element is one entry of a template.
type Element struct {
	Kind  ElementKind
	Field string // content field for text-bearing kinds
	Box   Box
	Text  layout.TextSpec
	Role  string // colour role for rules
	Limit int    // maximum bullet count, 0 for no limit
}

// LogoAuto picks the light or dark logo from the background colour.
const LogoAuto theme.LogoVariant = -1

// Template describes one slide kind.
type Template struct {
	Kind       Kind
	Background string // colour role
	Logo       theme.LogoVariant
	Heading    string // content field, empty for no heading
	Elements   []Element
}

// Table maps slide kinds to templates.
type Table map[Kind]Template
