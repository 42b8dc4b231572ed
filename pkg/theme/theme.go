// Package theme holds the immutable styling configuration for a deck: colour
// palette, semantic colour roles, font roles, canvas metrics and logo geometry.
//
// A Theme is built once (from an embedded preset, a TOML file, or a Spec
// literal), validated in its constructor, and then passed explicitly into every
// layout function. Nothing in this package keeps process-wide mutable state.
//
// Colours are six hex digits without a leading '#', the form presentation
// formats store them in. The layout engine never names palette entries
// directly; it asks for semantic roles (accent, text, surfaceCool, ...) and
// the preset maps each role to a palette entry.
package theme

import (
	"maps"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
)

// Colour roles referenced by the layout engine.
const (
	RoleAccent       = "accent"
	RoleText         = "text"
	RoleBackground   = "background"
	RoleInverse      = "inverse"
	RoleDark         = "dark"
	RoleMuted        = "muted"
	RoleMutedStrong  = "mutedStrong"
	RoleSurfaceWarm  = "surfaceWarm"
	RoleSurfaceCool  = "surfaceCool"
	RoleRule         = "rule"
	RoleAccentSubtle = "accentSubtle"
	RoleHeading      = "heading"
	RoleSection      = "section"
	RoleSectionText  = "sectionText"
)

// Font roles referenced by the layout engine.
const (
	FontHeading = "heading"
	FontBody    = "body"
	FontCaption = "caption"
	FontLabel   = "label"
	FontQuote   = "quote"
)

// RequiredRoles lists every colour role a theme must define.
var RequiredRoles = []string{
	RoleAccent, RoleText, RoleBackground, RoleInverse, RoleDark,
	RoleMuted, RoleMutedStrong, RoleSurfaceWarm, RoleSurfaceCool,
	RoleRule, RoleAccentSubtle, RoleHeading, RoleSection, RoleSectionText,
}

// RequiredFonts lists every font role a theme must define.
var RequiredFonts = []string{FontHeading, FontBody, FontCaption, FontLabel, FontQuote}

// Margins are the distances in inches from each canvas edge to the content area.
type Margins struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

// Metrics describes the canvas and the content area derived from it.
// ContentW and ContentH are computed once by NewMetrics.
type Metrics struct {
	CanvasW  float64
	CanvasH  float64
	Margins  Margins
	ContentW float64
	ContentH float64
}

// NewMetrics derives the content area from a canvas size and margins.
func NewMetrics(canvasW, canvasH float64, m Margins) Metrics {
	return Metrics{
		CanvasW:  canvasW,
		CanvasH:  canvasH,
		Margins:  m,
		ContentW: canvasW - m.Left - m.Right,
		ContentH: canvasH - m.Top - m.Bottom,
	}
}

// Left is the x coordinate of the content area.
func (m Metrics) Left() float64 { return m.Margins.Left }

// Top is the y coordinate of the content area.
func (m Metrics) Top() float64 { return m.Margins.Top }

// CenterX is the horizontal centre of the canvas.
func (m Metrics) CenterX() float64 { return m.CanvasW / 2 }

// Style carries the few stylistic switches that differ between presets.
type Style struct {
	HeadingBold bool    `toml:"heading_bold"`
	Radius      float64 `toml:"radius"`
	BadgeRadius float64 `toml:"badge_radius"`
}

// LogoVariant selects the logo artwork for a background.
type LogoVariant int

const (
	LogoNone  LogoVariant = iota
	LogoLight             // for light backgrounds
	LogoDark              // inverse artwork for dark and accent backgrounds
)

func (v LogoVariant) String() string {
	switch v {
	case LogoLight:
		return "light"
	case LogoDark:
		return "dark"
	default:
		return "none"
	}
}

// Logo is the logo placement. The two variants share x, y and width but have
// different aspect ratios. Paths are relative to the assets directory.
type Logo struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	W      float64 `toml:"w"`
	LightH float64 `toml:"light_h"`
	DarkH  float64 `toml:"dark_h"`
	Light  string  `toml:"light"`
	Dark   string  `toml:"dark"`
}

// Height returns the rendered height of the given variant.
func (l Logo) Height(v LogoVariant) float64 {
	if v == LogoDark {
		return l.DarkH
	}
	return l.LightH
}

// Path returns the asset path of the given variant.
func (l Logo) Path(v LogoVariant) string {
	if v == LogoDark {
		return l.Dark
	}
	return l.Light
}

// Spec is the declarative form of a theme, as stored in preset TOML files.
type Spec struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Locale      string `toml:"locale"`
	Canvas      struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"canvas"`
	Margins Margins           `toml:"margins"`
	Palette map[string]string `toml:"palette"`
	Roles   map[string]string `toml:"roles"`
	Fonts   map[string]string `toml:"fonts"`
	Style   Style             `toml:"style"`
	Logo    Logo              `toml:"logo"`
}

// Theme is an immutable, validated theme. Use With to derive a modified copy.
type Theme struct {
	spec    Spec
	lang    language.Tag
	metrics Metrics
}

// New validates spec and builds a Theme from a private copy of it.
func New(spec Spec) (*Theme, error) {
	spec.Palette = maps.Clone(spec.Palette)
	spec.Roles = maps.Clone(spec.Roles)
	spec.Fonts = maps.Clone(spec.Fonts)

	t := &Theme{spec: spec}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	lang := language.Und
	if spec.Locale != "" {
		tag, err := language.Parse(spec.Locale)
		if err != nil {
			return nil, apgerr.Wrap(apgerr.ErrCodeInvalidTheme, err, "theme %q: locale %q", spec.Name, spec.Locale)
		}
		lang = tag
	}
	t.lang = lang
	t.metrics = NewMetrics(spec.Canvas.Width, spec.Canvas.Height, spec.Margins)
	return t, nil
}

// Validate checks that every required role resolves to a well-formed colour,
// every required font is named, and the canvas leaves a positive content area.
func (t *Theme) Validate() error {
	s := t.spec
	if strings.TrimSpace(s.Name) == "" {
		return apgerr.New(apgerr.ErrCodeInvalidTheme, "theme name cannot be empty")
	}
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return apgerr.New(apgerr.ErrCodeInvalidTheme, "theme %q: canvas must be positive, got %gx%g", s.Name, s.Canvas.Width, s.Canvas.Height)
	}
	m := s.Margins
	if m.Left < 0 || m.Right < 0 || m.Top < 0 || m.Bottom < 0 {
		return apgerr.New(apgerr.ErrCodeInvalidTheme, "theme %q: margins cannot be negative", s.Name)
	}
	if s.Canvas.Width-m.Left-m.Right <= 0 || s.Canvas.Height-m.Top-m.Bottom <= 0 {
		return apgerr.New(apgerr.ErrCodeInvalidTheme, "theme %q: margins leave no content area", s.Name)
	}

	for _, name := range sortedKeys(s.Palette) {
		if err := apgerr.ValidateHexColor(s.Palette[name]); err != nil {
			return apgerr.Wrap(apgerr.ErrCodeInvalidTheme, err, "theme %q: palette %q", s.Name, name)
		}
	}
	for _, role := range RequiredRoles {
		ref, ok := s.Roles[role]
		if !ok {
			return apgerr.New(apgerr.ErrCodeInvalidTheme, "theme %q: missing colour role %q", s.Name, role)
		}
		if _, ok := s.Palette[ref]; !ok {
			return apgerr.New(apgerr.ErrCodeInvalidTheme, "theme %q: role %q refers to unknown palette entry %q", s.Name, role, ref)
		}
	}
	for _, role := range RequiredFonts {
		if err := apgerr.ValidateFontFamily(s.Fonts[role]); err != nil {
			return apgerr.Wrap(apgerr.ErrCodeInvalidTheme, err, "theme %q: font %q", s.Name, role)
		}
	}

	if s.Logo.W <= 0 || s.Logo.LightH <= 0 || s.Logo.DarkH <= 0 {
		return apgerr.New(apgerr.ErrCodeInvalidTheme, "theme %q: logo dimensions must be positive", s.Name)
	}
	if s.Logo.Light == "" || s.Logo.Dark == "" {
		return apgerr.New(apgerr.ErrCodeInvalidTheme, "theme %q: both logo variants need an asset path", s.Name)
	}
	return nil
}

// Name returns the theme name.
func (t *Theme) Name() string { return t.spec.Name }

// Description returns the one-line preset description.
func (t *Theme) Description() string { return t.spec.Description }

// Metrics returns the canvas metrics.
func (t *Theme) Metrics() Metrics { return t.metrics }

// Style returns the preset's stylistic switches.
func (t *Theme) Style() Style { return t.spec.Style }

// Logo returns the logo placement.
func (t *Theme) Logo() Logo { return t.spec.Logo }

// Color resolves a role or palette entry name to a hex colour. Roles take
// precedence. Unknown names resolve to "".
func (t *Theme) Color(name string) string {
	if ref, ok := t.spec.Roles[name]; ok {
		return t.spec.Palette[ref]
	}
	return t.spec.Palette[name]
}

// Font returns the font family for a font role.
func (t *Theme) Font(role string) string {
	return t.spec.Fonts[role]
}

// Palette returns a copy of the palette.
func (t *Theme) Palette() map[string]string { return maps.Clone(t.spec.Palette) }

// Roles returns a copy of the role to palette entry mapping.
func (t *Theme) Roles() map[string]string { return maps.Clone(t.spec.Roles) }

// Fonts returns a copy of the font roles.
func (t *Theme) Fonts() map[string]string { return maps.Clone(t.spec.Fonts) }

// Upper upper-cases s using the theme locale, so Lithuanian copy such as
// "Žinomumo didinimo fazė" keeps its diacritics correct.
func (t *Theme) Upper(s string) string {
	// Casers are stateful; build one per call.
	return cases.Upper(t.lang).String(s)
}

// With returns a copy of the theme with overrides applied and re-validated.
//
// Keys select what to change:
//   - a palette entry name ("red") replaces that colour everywhere it is used
//   - a role name ("accent") rebinds only that role to the given colour
//   - "font.<role>" ("font.heading") replaces a font family
func (t *Theme) With(overrides map[string]string) (*Theme, error) {
	if len(overrides) == 0 {
		return t, nil
	}
	spec := t.spec
	spec.Palette = maps.Clone(t.spec.Palette)
	spec.Roles = maps.Clone(t.spec.Roles)
	spec.Fonts = maps.Clone(t.spec.Fonts)

	for _, key := range sortedKeys(overrides) {
		value := strings.TrimPrefix(strings.TrimSpace(overrides[key]), "#")
		switch {
		case strings.HasPrefix(key, "font."):
			role := strings.TrimPrefix(key, "font.")
			if _, ok := spec.Fonts[role]; !ok {
				return nil, apgerr.New(apgerr.ErrCodeInvalidTheme, "override %q: unknown font role %q", key, role)
			}
			spec.Fonts[role] = strings.TrimSpace(overrides[key])
		case hasKey(spec.Palette, key):
			spec.Palette[key] = strings.ToUpper(value)
		case hasKey(spec.Roles, key):
			entry := "role." + key
			spec.Palette[entry] = strings.ToUpper(value)
			spec.Roles[key] = entry
		default:
			return nil, apgerr.New(apgerr.ErrCodeInvalidTheme, "override %q: no such palette entry, role or font", key)
		}
	}
	return New(spec)
}

func hasKey(m map[string]string, k string) bool {
	_, ok := m[k]
	return ok
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
