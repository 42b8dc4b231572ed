package layout

import (
	"github.com/apgmedia/apgdeck/pkg/content"
	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

const (
	// PhaseGap is the horizontal gap between timeline slots.
	PhaseGap = 0.25
	// PhaseCircle is the diameter of a phase marker.
	PhaseCircle = 0.35

	timelineY = 1.8
)

// TimelineResult reports the geometry of a laid out timeline.
type TimelineResult struct {
	Circles    []canvas.Rect
	Connectors []canvas.Rect
	Active     int
}

// Timeline lays out phases left to right in equal slots. The first phase is
// the active one (accent fill, inverse number); the others are outlined.
// Consecutive markers are joined by a dashed rule running from the right
// edge of one circle to the left edge of the next, so n phases produce n-1
// connectors. y is the top of the markers (0 selects 1.8).
func Timeline(s canvas.Slide, th *theme.Theme, phases []content.Phase, y float64) (TimelineResult, error) {
	if len(phases) == 0 {
		return TimelineResult{}, apgerr.New(apgerr.ErrCodeInvalidInput, "timeline needs at least one phase, got 0")
	}
	m := th.Metrics()
	y = valueOr(y, timelineY)
	n := len(phases)
	slotW := (m.ContentW - PhaseGap*float64(n-1)) / float64(n)
	r := PhaseCircle / 2

	res := TimelineResult{Active: 0}
	for i, ph := range phases {
		x := m.Left() + float64(i)*(slotW+PhaseGap)
		circle := canvas.Rect{X: x + slotW/2 - r, Y: y, W: PhaseCircle, H: PhaseCircle}
		res.Circles = append(res.Circles, circle)

		active := i == res.Active
		style := canvas.ShapeStyle{Line: canvas.LineStyle{Color: th.Color(theme.RoleRule), Width: 1}}
		numColor := th.Color(theme.RoleMuted)
		if active {
			style = canvas.ShapeStyle{Fill: th.Color(theme.RoleAccent)}
			numColor = th.Color(theme.RoleInverse)
		}
		s.AddShape(canvas.Shape{Kind: canvas.ShapeOval, Box: circle, Style: style})
		s.AddText(canvas.Text{
			Box:     circle,
			Content: ph.Num,
			Style: canvas.TextStyle{
				Font:   th.Font(theme.FontHeading),
				Size:   12,
				Color:  numColor,
				Bold:   true,
				Align:  canvas.AlignCenter,
				VAlign: canvas.VAlignMiddle,
			},
		})

		if i < n-1 {
			conn := canvas.Rect{X: circle.Right(), Y: y + r, W: slotW + PhaseGap - PhaseCircle}
			s.AddShape(canvas.Shape{
				Kind: canvas.ShapeLine,
				Box:  conn,
				Style: canvas.ShapeStyle{
					Line: canvas.LineStyle{Color: th.Color(theme.RoleRule), Width: 1, Dash: canvas.DashDash},
				},
			})
			res.Connectors = append(res.Connectors, conn)
		}

		s.AddText(canvas.Text{
			Box:     canvas.Rect{X: x, Y: y + 0.45, W: slotW, H: 0.3},
			Content: th.Upper(ph.Label),
			Style: canvas.TextStyle{
				Font:        th.Font(theme.FontHeading),
				Size:        10,
				Color:       th.Color(theme.RoleMutedStrong),
				Bold:        true,
				Align:       canvas.AlignCenter,
				CharSpacing: 1,
				Shrink:      true,
			},
		})
		s.AddText(canvas.Text{
			Box:     canvas.Rect{X: x, Y: y + 0.7, W: slotW, H: 0.2},
			Content: ph.Period,
			Style: canvas.TextStyle{
				Font:   th.Font(theme.FontCaption),
				Size:   9,
				Color:  th.Color(theme.RoleMuted),
				Align:  canvas.AlignCenter,
				Shrink: true,
			},
		})
	}
	return res, nil
}
