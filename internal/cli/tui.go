package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rivo/uniseg"

	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/render/slides"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	detailPaneStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// =============================================================================
// DeckModel - Interactive slide browser
// =============================================================================

// DeckModel is the bubbletea model for browsing a composed deck.
type DeckModel struct {
	Summary slides.Summary
	Pages   []*canvas.Page
	Cursor  int
	Height  int // visible command lines in the detail pane
}

// NewDeckModel creates a browser over a composed deck.
func NewDeckModel(sum slides.Summary, deck *canvas.Deck) DeckModel {
	return DeckModel{Summary: sum, Pages: deck.Slides, Height: 15}
}

func (m DeckModel) Init() tea.Cmd {
	return nil
}

func (m DeckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Summary.Slides)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(len(m.Summary.Slides)-1, 0)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m DeckModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("APG Media deck · " + m.Summary.Theme))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	list := slideTable(m.Summary, m.Cursor).Render()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detailPaneStyle.Render(m.detail())))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Summary.Slides))))

	return b.String()
}

// detail lists the drawing commands of the selected slide.
func (m DeckModel) detail() string {
	if m.Cursor >= len(m.Pages) {
		return ""
	}
	page := m.Pages[m.Cursor]
	s := m.Summary.Slides[m.Cursor]

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleTitle.Render(string(s.Kind)), swatch(page.Background))
	b.WriteString(StyleDim.Render(fmt.Sprintf("background %s · logo %s · %d commands", page.Background, s.Logo, len(page.Commands))))
	b.WriteString("\n\n")

	for i, c := range page.Commands {
		if i == m.Height {
			b.WriteString(listDimStyle.Render(fmt.Sprintf("… %d more", len(page.Commands)-i)))
			break
		}
		r := c.Bounds()
		fmt.Fprintf(&b, "%-6s %s %s\n",
			c.CommandKind(),
			listDimStyle.Render(fmt.Sprintf("%5.2f,%5.2f %5.2fx%-5.2f", r.X, r.Y, r.W, r.H)),
			describe(c))
	}
	return b.String()
}

// slideTable renders the slide list, highlighting the row at cursor.
// A negative cursor highlights nothing.
func slideTable(sum slides.Summary, cursor int) *table.Table {
	rows := make([][]string, 0, len(sum.Slides))
	for i, s := range sum.Slides {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows = append(rows, []string{
			marker + fmt.Sprintf("%2d", s.Index+1),
			string(s.Kind),
			swatch(s.Background) + " " + s.Background,
			s.Logo,
			fmt.Sprintf("%d", s.Commands),
		})
	}

	header := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Background", "Logo", "Cmds").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return header
			case row == cursor:
				return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
			default:
				return lipgloss.NewStyle()
			}
		})
}

// describe summarises a drawing command in one line.
func describe(c canvas.Command) string {
	switch v := c.(type) {
	case canvas.Text:
		paras := v.Paragraphs()
		if len(paras) == 0 {
			return ""
		}
		s := truncate(paras[0], 40)
		if len(paras) > 1 {
			s += listDimStyle.Render(fmt.Sprintf(" +%d", len(paras)-1))
		}
		return s
	case canvas.Shape:
		fill := v.Style.Fill
		if fill == "" {
			fill = "none"
		}
		return fmt.Sprintf("%s fill %s", v.Kind, fill)
	case canvas.Image:
		return v.Path
	case canvas.Table:
		cols := 0
		if len(v.Rows) > 0 {
			cols = len(v.Rows[0])
		}
		return fmt.Sprintf("%d×%d table", len(v.Rows), cols)
	}
	return ""
}

// truncate shortens s to at most n grapheme clusters, ending in "…" when cut.
func truncate(s string, n int) string {
	if uniseg.GraphemeClusterCount(s) <= n {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n-1 && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return b.String() + "…"
}
