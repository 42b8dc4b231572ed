package sink

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/vector"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/observability"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

const (
	// DefaultRasterDPI is the resolution shapes are rasterised at.
	DefaultRasterDPI = 192.0
	// DefaultRasterCacheSize bounds the number of memoised shape images.
	DefaultRasterCacheSize = 256

	rasterCacheKey = "raster"
	kappa          = 0.5522847498 // cubic Bézier approximation of a quarter circle
)

// Rasterizer draws shapes that presentation text boxes cannot express
// (ovals, rounded rectangles, diagonal lines) into PNG images. Identical
// shapes are rendered once and served from an LRU cache.
//
// A Rasterizer is safe for concurrent use.
type Rasterizer struct {
	dpi   float64
	cache *lru.Cache[string, []byte]
}

// NewRasterizer creates a rasterizer that memoises up to size images.
func NewRasterizer(size int, dpi float64) (*Rasterizer, error) {
	if size <= 0 {
		size = DefaultRasterCacheSize
	}
	if dpi <= 0 {
		dpi = DefaultRasterDPI
	}
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, apgerr.Wrap(apgerr.ErrCodeInternal, err, "create raster cache")
	}
	return &Rasterizer{dpi: dpi, cache: c}, nil
}

// Len returns the number of cached images.
func (r *Rasterizer) Len() int { return r.cache.Len() }

// Rasterizes reports whether shape s is drawn as an image rather than as
// filled text boxes.
func Rasterizes(s canvas.Shape) bool {
	switch s.Kind {
	case canvas.ShapeOval:
		return true
	case canvas.ShapeRoundRect:
		return s.Style.Radius > 0
	case canvas.ShapeLine:
		return s.Box.W != 0 && s.Box.H != 0
	default:
		return false
	}
}

// PNG returns the shape drawn at the rasterizer resolution, sized to the
// shape box. Lines are drawn into their bounding box.
func (r *Rasterizer) PNG(ctx context.Context, s canvas.Shape) ([]byte, error) {
	key := r.key(s)
	hooks := observability.Cache()
	if data, ok := r.cache.Get(key); ok {
		hooks.OnCacheHit(ctx, rasterCacheKey)
		return data, nil
	}
	hooks.OnCacheMiss(ctx, rasterCacheKey)

	data, err := r.draw(s)
	if err != nil {
		return nil, err
	}
	r.cache.Add(key, data)
	hooks.OnCacheSet(ctx, rasterCacheKey, len(data))
	return data, nil
}

func (r *Rasterizer) key(s canvas.Shape) string {
	w, h := r.pixels(s.Box)
	st := s.Style
	return fmt.Sprintf("%s|%dx%d|%s|%s|%.2f|%d|%.3f|%t",
		s.Kind, w, h, st.Fill, st.Line.Color, st.Line.Width, st.Line.Dash, st.Radius, s.Box.H < 0)
}

func (r *Rasterizer) pixels(b canvas.Rect) (int, int) {
	w := int(math.Ceil(math.Abs(b.W) * r.dpi))
	h := int(math.Ceil(math.Abs(b.H) * r.dpi))
	return max(w, 1), max(h, 1)
}

func (r *Rasterizer) draw(s canvas.Shape) ([]byte, error) {
	w, h := r.pixels(s.Box)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over

	lineW := float32(s.Style.Line.Width / 72 * r.dpi)
	fw, fh := float32(w), float32(h)

	switch s.Kind {
	case canvas.ShapeOval:
		if s.Style.Fill != "" {
			ellipse(z, 0, 0, fw, fh, false)
			if err := paint(z, img, s.Style.Fill); err != nil {
				return nil, err
			}
		}
		if lineW > 0 && s.Style.Line.Color != "" {
			z.Reset(w, h)
			ellipse(z, 0, 0, fw, fh, false)
			ellipse(z, lineW, lineW, fw-2*lineW, fh-2*lineW, true)
			if err := paint(z, img, s.Style.Line.Color); err != nil {
				return nil, err
			}
		}
	case canvas.ShapeRoundRect:
		rad := float32(s.Style.Radius * r.dpi)
		if s.Style.Fill != "" {
			roundRect(z, 0, 0, fw, fh, rad, false)
			if err := paint(z, img, s.Style.Fill); err != nil {
				return nil, err
			}
		}
		if lineW > 0 && s.Style.Line.Color != "" {
			z.Reset(w, h)
			roundRect(z, 0, 0, fw, fh, rad, false)
			roundRect(z, lineW, lineW, fw-2*lineW, fh-2*lineW, max(rad-lineW, 0), true)
			if err := paint(z, img, s.Style.Line.Color); err != nil {
				return nil, err
			}
		}
	case canvas.ShapeLine:
		x0, y0, x1, y1 := float32(0), float32(0), fw, fh
		if s.Box.H < 0 {
			y0, y1 = fh, 0
		}
		stroke(z, x0, y0, x1, y1, max(lineW, 1))
		if err := paint(z, img, s.Style.Line.Color); err != nil {
			return nil, err
		}
	default:
		return nil, apgerr.New(apgerr.ErrCodeUnsupported, "shape %s is not rasterised", s.Kind)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, apgerr.Wrap(apgerr.ErrCodeRenderFailed, err, "encode %s", s.Kind)
	}
	return buf.Bytes(), nil
}

func paint(z *vector.Rasterizer, dst *image.RGBA, hex string) error {
	c, err := theme.ParseColor(hex)
	if err != nil {
		return apgerr.Wrap(apgerr.ErrCodeRenderFailed, err, "shape colour")
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	return nil
}

// ellipse adds an ellipse inscribed in the given box. reverse flips the
// winding so that the path cuts a hole in an enclosing path.
func ellipse(z *vector.Rasterizer, x, y, w, h float32, reverse bool) {
	if w <= 0 || h <= 0 {
		return
	}
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(cx+rx, cy)
	if !reverse {
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	} else {
		z.CubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	}
	z.ClosePath()
}

// roundRect adds a rectangle with circular corners of radius r.
func roundRect(z *vector.Rasterizer, x, y, w, h, r float32, reverse bool) {
	if w <= 0 || h <= 0 {
		return
	}
	r = min(r, w/2, h/2)
	k := r * kappa
	x1, y1 := x+w, y+h

	if !reverse {
		z.MoveTo(x+r, y)
		z.LineTo(x1-r, y)
		z.CubeTo(x1-r+k, y, x1, y+r-k, x1, y+r)
		z.LineTo(x1, y1-r)
		z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
		z.LineTo(x+r, y1)
		z.CubeTo(x+r-k, y1, x, y1-r+k, x, y1-r)
		z.LineTo(x, y+r)
		z.CubeTo(x, y+r-k, x+r-k, y, x+r, y)
	} else {
		z.MoveTo(x+r, y)
		z.CubeTo(x+r-k, y, x, y+r-k, x, y+r)
		z.LineTo(x, y1-r)
		z.CubeTo(x, y1-r+k, x+r-k, y1, x+r, y1)
		z.LineTo(x1-r, y1)
		z.CubeTo(x1-r+k, y1, x1, y1-r+k, x1, y1-r)
		z.LineTo(x1, y+r)
		z.CubeTo(x1, y+r-k, x1-r+k, y, x1-r, y)
	}
	z.ClosePath()
}

// stroke adds a straight segment of the given width as a quadrilateral.
func stroke(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}
