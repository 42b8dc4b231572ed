// Package sink serialises a recorded [canvas.Deck].
//
// # Overview
//
// A "sink" walks the commands recorded by the slide composer once and writes
// them in a concrete format:
//
//   - PPTX: the deliverable presentation ([RenderPPTX])
//   - SVG: a contact sheet of every slide, stacked vertically ([RenderSVG])
//   - JSON: a command dump for diffing and tooling ([RenderJSON])
//   - PDF and PNG: the contact sheet converted by rsvg-convert
//
// # PPTX Output
//
// The PPTX writer builds every primitive from the few shapes the presentation
// library exposes:
//
//   - backgrounds, rectangles and rules are filled text boxes
//   - dashed lines become rows of short filled boxes
//   - ovals, rounded rectangles and diagonal lines are rasterised to PNG by a
//     [Rasterizer] and placed as pictures; identical shapes are drawn once
//   - tables are drawn cell by cell, borders last
//   - text with a transparency is blended against the slide background
//   - text marked Shrink is sized down with [layout.Fit]
//
// Images are read from the assets directory at serialisation time:
//
//	data, err := sink.RenderPPTX(deck, th,
//	    sink.WithAssetsDir("assets"),
//	    sink.WithRasterizer(shared),
//	)
//
// A missing image fails the render with ASSET_NOT_FOUND. SVG artwork is
// converted to PNG when rsvg-convert is installed and embedded as-is otherwise.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the contact sheet as SVG first, then
// convert via [render.ToPDF] and [render.ToPNG]. These require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [canvas.Deck]: github.com/apgmedia/apgdeck/pkg/render/canvas.Deck
// [layout.Fit]: github.com/apgmedia/apgdeck/pkg/render/layout.Fit
// [render.ToPDF]: github.com/apgmedia/apgdeck/pkg/render.ToPDF
// [render.ToPNG]: github.com/apgmedia/apgdeck/pkg/render.ToPNG
package sink
