package layout

import (
	"github.com/apgmedia/apgdeck/pkg/content"
	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

const (
	// StatGap is the horizontal gap between stat cards.
	StatGap = 0.3

	statY      = 1.8
	statValueH = 0.55
	statRuleY  = 0.6
	statRuleW  = 0.25
	statLabelY = 0.75
	statLabelH = 0.25
)

// StatCardWidth returns the width of each of n cards sharing width w with
// StatGap between neighbours.
func StatCardWidth(w float64, n int) float64 {
	return (w - StatGap*float64(n-1)) / float64(n)
}

// StatCards lays out one card per stat, left to right across the content
// width: the figure, a centred accent rule and an upper-cased caption. y is
// the top of the row (0 selects 1.8). It returns the card boxes.
func StatCards(s canvas.Slide, th *theme.Theme, stats []content.Stat, y float64) ([]canvas.Rect, error) {
	if len(stats) == 0 {
		return nil, apgerr.New(apgerr.ErrCodeInvalidInput, "stat row needs at least one card, got 0")
	}
	m := th.Metrics()
	y = valueOr(y, statY)
	cardW := StatCardWidth(m.ContentW, len(stats))

	cards := make([]canvas.Rect, len(stats))
	for i, st := range stats {
		x := m.Left() + float64(i)*(cardW+StatGap)
		cards[i] = canvas.Rect{X: x, Y: y, W: cardW, H: statLabelY + statLabelH}

		s.AddText(canvas.Text{
			Box:     canvas.Rect{X: x, Y: y, W: cardW, H: statValueH},
			Content: st.Value,
			Style: canvas.TextStyle{
				Font:   th.Font(theme.FontHeading),
				Size:   28,
				Color:  th.Color(theme.RoleAccent),
				Bold:   true,
				Align:  canvas.AlignCenter,
				Shrink: true,
			},
		})
		AccentLine(s, th, x+cardW/2-statRuleW/2, y+statRuleY, statRuleW)
		s.AddText(canvas.Text{
			Box:     canvas.Rect{X: x, Y: y + statLabelY, W: cardW, H: statLabelH},
			Content: th.Upper(st.Label),
			Style: canvas.TextStyle{
				Font:        th.Font(theme.FontLabel),
				Size:        9,
				Color:       th.Color(theme.RoleMutedStrong),
				Align:       canvas.AlignCenter,
				CharSpacing: 1,
				Shrink:      true,
			},
		})
	}
	return cards, nil
}
