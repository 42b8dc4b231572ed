// Package cli implements the apgdeck command-line interface.
//
// The commands build the APG Media proposal deck, list and show the theme
// presets, and inspect a composed deck without writing anything. The CLI is
// built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - build: Compose the deck and write PPTX, SVG, JSON, PNG or PDF artifacts
//   - themes: List presets or show one preset's palette, roles and fonts
//   - inspect: Browse the composed slides interactively (or --plain)
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports pipeline and raster cache events.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/apgmedia/apgdeck/pkg/buildinfo"
	"github.com/apgmedia/apgdeck/pkg/observability"
	"github.com/apgmedia/apgdeck/pkg/pipeline"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "apgdeck"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Registry holds the theme presets; nil means the embedded ones.
	Registry *theme.Registry
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "apgdeck builds APG Media proposal decks",
		Long:         `apgdeck composes the APG Media digital marketing proposal from a themed slide scaffold and writes it as an editable PowerPoint file, with SVG, JSON, PNG and PDF previews.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := &logHooks{logger: c.Logger}
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.registry(), c.Logger)
}

func (c *CLI) registry() *theme.Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return theme.Builtin()
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadOptions reads the config file, if any. An explicitly named config must
// exist; the default apgdeck.toml is optional.
func loadOptions(path string, explicit bool) (pipeline.Options, error) {
	if !explicit {
		if _, err := os.Stat(path); err != nil {
			return pipeline.Options{}, nil
		}
	}
	return pipeline.LoadConfig(path)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPPTX}
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
