// Package pipeline provides the compose → render → write pipeline for apgdeck.
//
// This package implements the complete build that the CLI runs: resolve a
// theme, compose the proposal deck into an in-memory recording, serialise it
// in each requested format and write every artifact to disk. Centralising it
// keeps the build and inspect commands consistent.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Compose: Resolve the theme and run every slide template once
//  2. Render: Serialise the recorded deck (PPTX, SVG, JSON, PNG, PDF)
//  3. Write: Store each artifact atomically next to the output path
//
// # Usage
//
// Create a Runner and export:
//
//	runner := pipeline.NewRunner(nil, logger)
//	opts := pipeline.Options{
//	    Output:    "APG_Media_Corporate_Proposal.pptx",
//	    Formats:   []string{"pptx", "json"},
//	    Theme:     "corporate",
//	    AssetsDir: "assets",
//	}
//	result, err := runner.Export(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Artifacts["pptx"])
//
// Run the compose stage alone:
//
//	comp, err := runner.Compose(ctx, opts)
//	for _, s := range comp.Summary.Slides { ... }
package pipeline

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/apgmedia/apgdeck/pkg/content"
	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/render/slides"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultTheme is the preset used when none is named.
	DefaultTheme = theme.DefaultName

	// DefaultAssetsDir is where logo artwork is looked up.
	DefaultAssetsDir = "assets"

	// DefaultAuthor is written into the document properties.
	DefaultAuthor = "APG Media"
)

// Format constants for output formats.
const (
	FormatPPTX = "pptx"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPPTX: true,
	FormatSVG:  true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// FormatNames lists the formats in the order they are rendered.
var FormatNames = []string{FormatPPTX, FormatSVG, FormatJSON, FormatPNG, FormatPDF}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a build.
// The TOML tags define the apgdeck.toml config file.
type Options struct {
	Output    string            `toml:"output"`
	Formats   []string          `toml:"formats"`
	Theme     string            `toml:"theme"` // preset name or path to a .toml theme
	Overrides map[string]string `toml:"overrides"`
	AssetsDir string            `toml:"assets"`
	Metadata  canvas.Metadata   `toml:"metadata"`

	// Runtime options (not read from config)
	Logger  *log.Logger   `toml:"-"`
	Content *content.Deck `toml:"-"` // nil builds the example proposal
}

// Result contains the outputs of an export.
type Result struct {
	// BuildID identifies this export; it is also recorded in the JSON dump.
	BuildID string

	// Theme is the name of the resolved theme.
	Theme string

	// Fonts lists the distinct font families the theme uses, sorted.
	Fonts []string

	// Logos counts the logo images placed in the deck, keyed by variant
	// ("light", "dark").
	Logos map[string]int

	// Summary describes each composed slide.
	Summary slides.Summary

	// Artifacts maps each format to the path it was written to.
	Artifacts map[string]string

	// Sizes maps each format to the artifact size in bytes.
	Sizes map[string]int

	// Stats contains timing and command counts.
	Stats Stats
}

// Slides returns the number of slides in the exported deck.
func (r *Result) Slides() int { return len(r.Summary.Slides) }

// Stats contains pipeline execution statistics.
type Stats struct {
	Commands    canvas.Stats
	ComposeTime time.Duration
	RenderTime  time.Duration
	WriteTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apgerr.New(apgerr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid and none repeats.
func ValidateFormats(formats []string) error {
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if seen[f] {
			return apgerr.New(apgerr.ErrCodeInvalidFormat, "format %q requested twice", f)
		}
		seen[f] = true
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in every unset option.
func (o *Options) SetDefaults() {
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPPTX}
	}
	if o.Output == "" {
		o.Output = DefaultOutput(o.Theme)
	}
	if o.AssetsDir == "" {
		o.AssetsDir = DefaultAssetsDir
	}
	if o.Metadata.Author == "" {
		o.Metadata.Author = DefaultAuthor
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the output path and formats. Call SetDefaults first.
func (o *Options) Validate() error {
	if err := apgerr.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// OutputPath returns the artifact path for a format: the output path with its
// extension replaced by the format name.
func (o *Options) OutputPath(format string) string {
	ext := filepath.Ext(o.Output)
	return strings.TrimSuffix(o.Output, ext) + "." + format
}

// SortedFormats returns the requested formats in rendering order.
func (o *Options) SortedFormats() []string {
	out := slices.Clone(o.Formats)
	slices.SortFunc(out, func(a, b string) int {
		return slices.Index(FormatNames, a) - slices.Index(FormatNames, b)
	})
	return out
}

// DefaultOutput returns the default file name for a theme, such as
// "APG_Media_Corporate_Proposal.pptx".
func DefaultOutput(themeRef string) string {
	name := strings.TrimSuffix(filepath.Base(themeRef), filepath.Ext(themeRef))
	name = strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}
		return r
	}, cases.Title(language.Und).String(name))
	if name == "" {
		return "APG_Media_Proposal.pptx"
	}
	return "APG_Media_" + name + "_Proposal.pptx"
}
