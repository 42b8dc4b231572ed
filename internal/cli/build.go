package cli

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/apgmedia/apgdeck/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
// Flags that were not set leave the config file value in place.
type buildOpts struct {
	config    string            // config file path
	output    string            // output file path; other formats swap the extension
	formats   string            // comma-separated output formats
	theme     string            // preset name or theme file path
	assets    string            // directory holding the logo artwork
	overrides map[string]string // palette, role and font overrides
	title     string            // document title property
	author    string            // document author property
	company   string            // document company property
}

// buildCommand creates the build command that composes and writes the deck.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the proposal deck",
		Long: `Build composes every slide with the selected theme and writes the
requested formats next to each other. Nothing is written unless every
format renders, and existing files are only replaced once every format
has been written.

Settings are read from apgdeck.toml in the working directory when present;
flags take precedence over the file.`,
		Example: `  apgdeck build
  apgdeck build --theme standard -f pptx,pdf -o out/proposal.pptx
  apgdeck build --set accent=C8102E --set font.heading="Montserrat"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			po, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return c.runBuild(cmd, po)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", pipeline.DefaultConfigFile, "config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default APG_Media_<Theme>_Proposal.pptx)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): pptx (default), svg, json, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme preset or .toml file (default corporate)")
	cmd.Flags().StringVar(&opts.assets, "assets", "", "logo artwork directory (default assets)")
	cmd.Flags().StringToStringVar(&opts.overrides, "set", nil, "override a palette entry, role or font.<role> (repeatable)")
	cmd.Flags().StringVar(&opts.title, "title", "", "document title (default the cover title)")
	cmd.Flags().StringVar(&opts.author, "author", "", "document author (default APG Media)")
	cmd.Flags().StringVar(&opts.company, "company", "", "document company")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return c.registry().Names(), cobra.ShellCompDirectiveDefault
	})

	return cmd
}

// resolve merges the config file with the flags that were set.
func (o *buildOpts) resolve(cmd *cobra.Command) (pipeline.Options, error) {
	flags := cmd.Flags()
	po, err := loadOptions(o.config, flags.Changed("config"))
	if err != nil {
		return pipeline.Options{}, err
	}

	if flags.Changed("output") {
		po.Output = o.output
	}
	if flags.Changed("format") {
		po.Formats = parseFormats(o.formats)
	}
	if flags.Changed("theme") {
		po.Theme = o.theme
	}
	if flags.Changed("assets") {
		po.AssetsDir = o.assets
	}
	if len(o.overrides) > 0 {
		if po.Overrides == nil {
			po.Overrides = make(map[string]string, len(o.overrides))
		}
		maps.Copy(po.Overrides, o.overrides)
	}
	if flags.Changed("title") {
		po.Metadata.Title = o.title
	}
	if flags.Changed("author") {
		po.Metadata.Author = o.author
	}
	if flags.Changed("company") {
		po.Metadata.Company = o.company
	}

	po.SetDefaults()
	if err := po.Validate(); err != nil {
		return pipeline.Options{}, err
	}
	return po, nil
}

func (c *CLI) runBuild(cmd *cobra.Command, opts pipeline.Options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Logger = c.Logger

	c.Logger.Debug("building", "theme", opts.Theme, "formats", opts.Formats, "output", opts.Output)
	prog := newProgress(c.Logger)

	var spin *Spinner
	if c.Logger.GetLevel() > log.DebugLevel {
		spin = newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Building %s deck...", opts.Theme))
		spin.Start()
	}
	result, err := c.newRunner().Export(ctx, opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		printError(cmd.ErrOrStderr(), "Build failed")
		return err
	}
	prog.done(fmt.Sprintf("Built %d slides", result.Slides()))

	out := cmd.OutOrStdout()
	printSuccess(out, "Built %s deck (%d slides)", result.Theme, result.Slides())
	for _, format := range opts.SortedFormats() {
		printFile(out, result.Artifacts[format], result.Sizes[format])
	}
	printStats(out, result.Stats.Commands)
	printKeyValue(out, "fonts", strings.Join(result.Fonts, ", "))
	printKeyValue(out, "logos", logoCounts(result.Logos))
	c.Logger.Debug("build complete",
		"build_id", result.BuildID,
		"compose", result.Stats.ComposeTime,
		"render", result.Stats.RenderTime,
		"write", result.Stats.WriteTime)
	return nil
}

// logoCounts formats the placed logo images per variant, e.g.
// "8 light · 3 dark".
func logoCounts(counts map[string]int) string {
	var parts []string
	for _, variant := range []string{"light", "dark"} {
		if n := counts[variant]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, variant))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " · ")
}
