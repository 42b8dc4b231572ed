package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/apgmedia/apgdeck/pkg/pipeline"
)

type inspectOpts struct {
	theme     string
	overrides map[string]string
	plain     bool
}

// inspectCommand composes the deck in memory and shows what each slide holds.
// No assets are read and nothing is written.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Browse the composed slides without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := c.newRunner().Compose(cmd.Context(), pipeline.Options{
				Theme:     opts.theme,
				Overrides: opts.overrides,
				Logger:    c.Logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.plain || !isTerminal(out) {
				fmt.Fprintln(out, slideTable(comp.Summary, -1).Render())
				printStats(out, comp.Deck.Stats())
				return nil
			}

			p := tea.NewProgram(NewDeckModel(comp.Summary, comp.Deck),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(out),
				tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", pipeline.DefaultTheme, "theme preset or .toml file")
	cmd.Flags().StringToStringVar(&opts.overrides, "set", nil, "override a palette entry, role or font.<role> (repeatable)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the slide table instead of the interactive browser")

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
