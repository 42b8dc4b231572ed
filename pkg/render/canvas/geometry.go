package canvas

// Rect is an axis-aligned box in inches.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal centre.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical centre.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Inset shrinks the rectangle by dx on the left and right and dy on the top
// and bottom.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Overlaps reports whether two rectangles share interior area.
func (r Rect) Overlaps(o Rect) bool {
	const eps = 1e-9
	return r.X < o.Right()-eps && o.X < r.Right()-eps &&
		r.Y < o.Bottom()-eps && o.Y < r.Bottom()-eps
}

// Layout is a fixed canvas size.
type Layout struct {
	Name string
	W, H float64
}

// Layout16x9 is the 10 x 5.625 inch widescreen canvas.
var Layout16x9 = Layout{Name: "16:9", W: 10, H: 5.625}
