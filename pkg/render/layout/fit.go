package layout

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/apgmedia/apgdeck/pkg/render/canvas"
)

const (
	pointsPerInch = 72.0
	charWidth     = 0.55 // average glyph advance as a fraction of the font size
	lineHeight    = 1.2  // single line spacing as a fraction of the font size
	fitStep       = 0.5
	// FitMinSize is the smallest size Fit will return.
	FitMinSize = 6.0
)

// Fit estimates the largest font size not above size at which text fits box
// once wrapped. It uses average glyph widths and counts user-perceived
// characters, so "Ž" and "€" count once. The estimate is deliberately
// simple: it drives best-effort shrinking, not layout decisions.
func Fit(text string, box canvas.Rect, size, lineSpacing float64) float64 {
	if size <= 0 || text == "" {
		return size
	}
	spacing := lineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	availW := box.W * pointsPerInch
	availH := box.H * pointsPerInch

	paragraphs := strings.Split(text, "\n")
	counts := make([]int, len(paragraphs))
	for i, p := range paragraphs {
		counts[i] = uniseg.GraphemeClusterCount(p)
	}

	for s := size; s > FitMinSize; s -= fitStep {
		if linesAt(counts, s, availW)*s*lineHeight*spacing <= availH {
			return s
		}
	}
	return math.Min(size, FitMinSize)
}

// WrappedLines estimates how many lines text occupies in a box of width w
// inches at the given font size.
func WrappedLines(text string, w, size float64) int {
	var counts []int
	for _, p := range strings.Split(text, "\n") {
		counts = append(counts, uniseg.GraphemeClusterCount(p))
	}
	return int(linesAt(counts, size, w*pointsPerInch))
}

func linesAt(counts []int, size, availW float64) float64 {
	perLine := math.Max(1, math.Floor(availW/(size*charWidth)))
	lines := 0.0
	for _, n := range counts {
		lines += math.Max(1, math.Ceil(float64(n)/perLine))
	}
	return lines
}
