package pipeline

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/apgmedia/apgdeck/pkg/buildinfo"
	"github.com/apgmedia/apgdeck/pkg/content"
	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/observability"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/render/sink"
	"github.com/apgmedia/apgdeck/pkg/render/slides"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

// Runner executes builds against a theme registry.
//
// The Runner keeps no per-build state apart from the shape rasterizer cache,
// which is safe to share. Multiple goroutines can use the same Runner with
// different options.
type Runner struct {
	Registry *theme.Registry
	Raster   *sink.Rasterizer
	Logger   *log.Logger
}

// NewRunner creates a runner. If reg is nil the embedded presets are used.
// If logger is nil, log.Default() is used.
func NewRunner(reg *theme.Registry, logger *log.Logger) *Runner {
	if reg == nil {
		reg = theme.Builtin()
	}
	if logger == nil {
		logger = log.Default()
	}
	// Only fails for a non-positive size.
	z, _ := sink.NewRasterizer(sink.DefaultRasterCacheSize, sink.DefaultRasterDPI)
	return &Runner{Registry: reg, Raster: z, Logger: logger}
}

// Composition is a composed deck ready to be rendered.
type Composition struct {
	Deck    *canvas.Deck
	Theme   *theme.Theme
	Summary slides.Summary
}

// Theme resolves the theme named by opts and applies its overrides.
func (r *Runner) Theme(opts Options) (*theme.Theme, error) {
	th, err := r.Registry.Resolve(opts.Theme)
	if err != nil {
		return nil, err
	}
	return th.With(opts.Overrides)
}

// Compose resolves the theme and composes the deck in memory.
func (r *Runner) Compose(ctx context.Context, opts Options) (*Composition, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	th, err := r.Theme(opts)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	d := content.Example()
	if opts.Content != nil {
		d = *opts.Content
	}
	meta := opts.Metadata
	if meta.Title == "" {
		meta.Title = strings.Join(strings.Fields(d.Title.Main), " ")
	}

	hooks := observability.Pipeline()
	hooks.OnComposeStart(ctx, th.Name())
	start := time.Now()

	deck := canvas.New(canvas.Layout16x9)
	deck.Meta = meta
	sum, err := slides.Compose(deck, th, d)
	hooks.OnComposeComplete(ctx, th.Name(), len(sum.Slides), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	opts.Logger.Debug("composed deck",
		"theme", th.Name(),
		"slides", len(sum.Slides),
		"duration", time.Since(start))

	return &Composition{Deck: deck, Theme: th, Summary: sum}, nil
}

// Render serialises a composition in one format.
func (r *Runner) Render(ctx context.Context, comp *Composition, format, buildID string, opts Options) ([]byte, error) {
	opts.SetDefaults()
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	data, err := renderFormat(ctx, r.Raster, comp, format, buildID, opts)
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

// Export runs the whole pipeline and writes every requested artifact.
//
// All formats are rendered before anything is written. Every artifact is
// then staged in a temporary file in the target directory, and only when all
// of them are staged are they renamed into place. If a rename fails, targets
// already replaced get their previous content back; no partial output is
// reported as success.
func (r *Runner) Export(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		BuildID:   uuid.NewString(),
		Artifacts: make(map[string]string),
		Sizes:     make(map[string]int),
	}

	// Stage 1: Compose
	composeStart := time.Now()
	comp, err := r.Compose(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Theme = comp.Theme.Name()
	result.Fonts = fontFamilies(comp.Theme)
	result.Logos = logoImages(comp)
	result.Summary = comp.Summary
	result.Stats.Commands = comp.Deck.Stats()
	result.Stats.ComposeTime = time.Since(composeStart)

	opts.Logger.Info("composed deck",
		"theme", result.Theme,
		"slides", result.Slides(),
		"duration", result.Stats.ComposeTime)

	// Stage 2: Render
	renderStart := time.Now()
	formats := opts.SortedFormats()
	rendered := make(map[string][]byte, len(formats))
	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := r.Render(ctx, comp, format, result.BuildID, opts)
		if err != nil {
			return nil, err
		}
		rendered[format] = data
		result.Sizes[format] = len(data)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", formats,
		"duration", result.Stats.RenderTime)

	// Stage 3: Write
	writeStart := time.Now()
	var out batch
	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			out.discard()
			return nil, err
		}
		if err := out.stage(opts.OutputPath(format), rendered[format]); err != nil {
			out.discard()
			return nil, fmt.Errorf("write %s: %w", format, err)
		}
	}
	if err := out.commit(); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	for _, format := range formats {
		path := opts.OutputPath(format)
		result.Artifacts[format] = path
		observability.Pipeline().OnArtifactWritten(ctx, format, path)
	}
	result.Stats.WriteTime = time.Since(writeStart)

	return result, nil
}

func renderFormat(ctx context.Context, z *sink.Rasterizer, comp *Composition, format, buildID string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{sink.WithSVGAssetsDir(opts.AssetsDir), sink.WithInlineImages()}

	switch format {
	case FormatPPTX:
		return sink.RenderPPTX(comp.Deck, comp.Theme,
			sink.WithAssetsDir(opts.AssetsDir),
			sink.WithRasterizer(z),
			sink.WithContext(ctx),
		)
	case FormatSVG:
		return sink.RenderSVG(comp.Deck, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(comp.Deck,
			sink.WithBuildID(buildID),
			sink.WithThemeName(comp.Theme.Name()),
			sink.WithGenerator(buildinfo.Generator()),
		)
	case FormatPNG:
		return sink.RenderPNG(comp.Deck, sink.WithPNGSVGOptions(svgOpts...))
	case FormatPDF:
		return sink.RenderPDF(comp.Deck, sink.WithPDFSVGOptions(svgOpts...))
	default:
		return nil, apgerr.New(apgerr.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

func fontFamilies(th *theme.Theme) []string {
	var out []string
	for _, family := range th.Fonts() {
		if !slices.Contains(out, family) {
			out = append(out, family)
		}
	}
	slices.Sort(out)
	return out
}

// logoImages counts the logo images placed in the deck, keyed by variant name.
// Slides may carry more than one logo.
func logoImages(comp *Composition) map[string]int {
	l := comp.Theme.Logo()
	counts := make(map[string]int)
	for _, page := range comp.Deck.Slides {
		for _, img := range canvas.Collect[canvas.Image](page) {
			switch img.Path {
			case l.Path(theme.LogoDark):
				counts[theme.LogoDark.String()]++
			case l.Path(theme.LogoLight):
				counts[theme.LogoLight.String()]++
			}
		}
	}
	return counts
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
