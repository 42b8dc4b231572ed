// Package pkg provides the libraries behind apgdeck, the APG Media proposal
// deck builder.
//
// # Overview
//
// A deck is composed from three inputs: a theme (palette, semantic colour
// roles, fonts, margins and logo placement), the proposal copy, and a table of
// slide templates. Composition records drawing commands in memory; sinks then
// serialise the recording as PPTX, SVG, JSON, PNG or PDF.
//
//	theme preset + content
//	         ↓
//	    [render/slides] (templates, fixed slide order)
//	         ↓
//	    [render/layout] (title bars, stat cards, grids, tables, timelines)
//	         ↓
//	    [render/canvas] (recorded commands)
//	         ↓
//	    [render/sink] (PPTX / SVG / JSON / PNG / PDF)
//
// [pipeline] runs the whole build and writes artifacts atomically.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil)
//	res, err := runner.Export(ctx, pipeline.Options{
//	    Theme:   "standard",
//	    Formats: []string{"pptx", "json"},
//	})
//
// # Main Packages
//
//   - [theme]: presets, colour roles, overrides and colour helpers
//   - [content]: the proposal copy
//   - [render/canvas]: geometry and the recorded command model
//   - [render/layout]: reusable slide components
//   - [render/slides]: slide templates and deck composition
//   - [render/sink]: output serialisers and the shape rasterizer
//   - [pipeline]: configuration, build orchestration and atomic writes
//   - [errors]: error codes and input validation
//   - [observability]: pipeline and cache hooks
//   - [buildinfo]: version information
package pkg
