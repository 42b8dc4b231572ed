// Package layout maps content records onto absolute-positioned drawing
// commands.
//
// Every function takes the target [canvas.Slide] and the [theme.Theme]
// explicitly and appends commands to the slide; nothing else is touched.
// Geometry is derived from the theme metrics (margins, content width) plus a
// small set of fixed offsets, so the same content always produces the same
// commands.
//
// Functions that divide the content width between items (StatCards,
// Timeline) need at least one item and return an INVALID_INPUT error
// otherwise. Content that is too long for its box is not detected here; text
// boxes carry Shrink and the sink makes a best effort to fit them.
package layout
