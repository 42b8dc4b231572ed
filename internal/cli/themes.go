package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/apgmedia/apgdeck/pkg/theme"
)

func (c *CLI) themesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List theme presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.listThemes(cmd.OutOrStdout())
		},
	}
	cmd.AddCommand(c.themeShowCommand())
	return cmd
}

func (c *CLI) themeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <preset|file.toml>",
		Short: "Show a theme's palette, roles and fonts",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return c.registry().Names(), cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := c.registry().Resolve(args[0])
			if err != nil {
				return err
			}
			showTheme(cmd.OutOrStdout(), th)
			return nil
		},
	}
}

func (c *CLI) listThemes(w io.Writer) error {
	reg := c.registry()
	rows := make([][]string, 0, len(reg.Names()))
	for _, name := range reg.Names() {
		th, err := reg.Get(name)
		if err != nil {
			return err
		}
		marker := ""
		if name == theme.DefaultName {
			marker = "default"
		}
		rows = append(rows, []string{
			swatch(th.Color(theme.RoleAccent)) + " " + name,
			th.Font(theme.FontHeading),
			th.Description(),
			marker,
		})
	}
	fmt.Fprintln(w, newTable("Theme", "Heading font", "Description", "").Rows(rows...).Render())
	return nil
}

// showTheme prints the roles with their resolved colours, then the fonts.
func showTheme(w io.Writer, th *theme.Theme) {
	fmt.Fprintln(w, StyleTitle.Render(th.Name()))
	if d := th.Description(); d != "" {
		fmt.Fprintln(w, StyleDim.Render(d))
	}
	fmt.Fprintln(w)

	roles := th.Roles()
	rows := make([][]string, 0, len(roles))
	for _, role := range sortedNames(roles) {
		hex := th.Color(role)
		rows = append(rows, []string{role, roles[role], swatch(hex) + " " + hex})
	}
	fmt.Fprintln(w, newTable("Role", "Palette entry", "Colour").Rows(rows...).Render())

	fonts := th.Fonts()
	for _, role := range sortedNames(fonts) {
		printKeyValue(w, role, fonts[role])
	}

	m := th.Metrics()
	printKeyValue(w, "canvas", fmt.Sprintf("%.3g x %.4g in", m.CanvasW, m.CanvasH))
	printKeyValue(w, "content", fmt.Sprintf("%.3g in wide", m.ContentW))
}

func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func sortedNames(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
