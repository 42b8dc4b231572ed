package theme

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
)

// ParseColor parses a six-digit hex colour, with or without '#'.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex("#" + strings.TrimPrefix(hex, "#"))
	if err != nil {
		return colorful.Color{}, apgerr.Wrap(apgerr.ErrCodeInvalidTheme, err, "colour %q", hex)
	}
	return c, nil
}

// Mix returns fg drawn at the given transparency (0 opaque, 100 invisible)
// over bg, as six upper-case hex digits. Invalid input returns fg unchanged.
func Mix(fg, bg string, transparency float64) string {
	if transparency <= 0 {
		return fg
	}
	f, err := ParseColor(fg)
	if err != nil {
		return fg
	}
	b, err := ParseColor(bg)
	if err != nil {
		return fg
	}
	if transparency > 100 {
		transparency = 100
	}
	return hexOf(f.BlendRgb(b, transparency/100))
}

// IsDark reports whether a colour needs inverse (light) artwork and text on
// top of it: CIE L* below 0.6. The corporate red counts as dark.
func IsDark(hex string) bool {
	c, err := ParseColor(hex)
	if err != nil {
		return false
	}
	l, _, _ := c.Lab()
	return l < 0.6
}

func hexOf(c colorful.Color) string {
	return strings.ToUpper(strings.TrimPrefix(c.Clamped().Hex(), "#"))
}
