// Package render turns composed slide decks into output artifacts.
//
// # Overview
//
// Rendering is split into small subpackages that run in sequence:
//
//   - [canvas]: drawing commands and the in-memory [canvas.Deck] recorder
//   - [layout]: reusable building blocks (headings, stat cards, tables, timelines)
//   - [slides]: per-slide templates and the [slides.Compose] driver
//   - [sink]: serialisers for PPTX, SVG, JSON, PNG and PDF
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The PNG and PDF sinks render
// an SVG contact sheet first and convert it here; the PPTX sink uses [ToPNG]
// to rasterise SVG logo artwork when the tool is installed.
//
//	svg := sink.RenderSVG(deck)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [canvas]: github.com/apgmedia/apgdeck/pkg/render/canvas
// [canvas.Deck]: github.com/apgmedia/apgdeck/pkg/render/canvas.Deck
// [layout]: github.com/apgmedia/apgdeck/pkg/render/layout
// [slides]: github.com/apgmedia/apgdeck/pkg/render/slides
// [slides.Compose]: github.com/apgmedia/apgdeck/pkg/render/slides.Compose
// [sink]: github.com/apgmedia/apgdeck/pkg/render/sink
package render
