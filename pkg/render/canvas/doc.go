// Package canvas defines drawing commands and the document collaborator the
// layout engine draws into.
//
// The layout engine only ever writes: it asks a [Document] for a new slide
// and appends [Text], [Shape], [Image] and [Table] commands to it. Positions
// and sizes are absolute, in inches from the top-left corner of the canvas.
//
// [Deck] is the in-memory recorder implementation. Sinks in the sink package
// walk a recorded Deck once to serialise it (PPTX, SVG, JSON).
//
// # Text fitting
//
// [TextStyle.Shrink] asks the renderer to shrink text that does not fit its
// box. It is a best-effort visual fallback: the engine never measures text and
// never guarantees that content fits.
package canvas
