package sink

import (
	"encoding/json"

	"github.com/google/uuid"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	buildID   string
	theme     string
	generator string
}

// WithBuildID records the build identifier. Without it a random one is generated.
func WithBuildID(id string) JSONOption { return func(r *jsonRenderer) { r.buildID = id } }

// WithThemeName records the name of the theme the deck was composed with.
func WithThemeName(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithGenerator records the tool and version that produced the dump.
func WithGenerator(g string) JSONOption { return func(r *jsonRenderer) { r.generator = g } }

type jsonOutput struct {
	BuildID   string          `json:"build_id"`
	Generator string          `json:"generator,omitempty"`
	Theme     string          `json:"theme,omitempty"`
	Layout    jsonLayout      `json:"layout"`
	Meta      canvas.Metadata `json:"meta"`
	Stats     canvas.Stats    `json:"stats"`
	Assets    []string        `json:"assets,omitempty"`
	Slides    []jsonSlide     `json:"slides"`
}

type jsonLayout struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonSlide struct {
	Index      int           `json:"index"`
	Background string        `json:"background"`
	Commands   []jsonCommand `json:"commands"`
}

type jsonCommand struct {
	Kind       string             `json:"kind"`
	Box        jsonBox            `json:"box"`
	Text       string             `json:"text,omitempty"`
	Bullets    []string           `json:"bullets,omitempty"`
	Style      *canvas.TextStyle  `json:"style,omitempty"`
	Shape      string             `json:"shape,omitempty"`
	ShapeStyle *canvas.ShapeStyle `json:"shape_style,omitempty"`
	Path       string             `json:"path,omitempty"`
	Rows       [][]string         `json:"rows,omitempty"`
	ColW       []float64          `json:"col_w,omitempty"`
}

type jsonBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// RenderJSON dumps the recorded deck: every slide and every drawing command
// with its geometry and style. The dump is meant for diffing and tooling,
// not for re-import.
func RenderJSON(deck *canvas.Deck, opts ...JSONOption) ([]byte, error) {
	if deck == nil {
		return nil, apgerr.New(apgerr.ErrCodeInvalidInput, "deck is nil")
	}
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.buildID == "" {
		r.buildID = uuid.NewString()
	}

	out := jsonOutput{
		BuildID:   r.buildID,
		Generator: r.generator,
		Theme:     r.theme,
		Layout:    jsonLayout{Name: deck.Layout.Name, Width: deck.Layout.W, Height: deck.Layout.H},
		Meta:      deck.Meta,
		Stats:     deck.Stats(),
		Assets:    deck.Assets(),
		Slides:    make([]jsonSlide, 0, len(deck.Slides)),
	}
	for i, page := range deck.Slides {
		s := jsonSlide{Index: i + 1, Background: page.Background, Commands: make([]jsonCommand, 0, len(page.Commands))}
		for _, cmd := range page.Commands {
			s.Commands = append(s.Commands, toJSONCommand(cmd))
		}
		out.Slides = append(out.Slides, s)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, apgerr.Wrap(apgerr.ErrCodeRenderFailed, err, "encode json")
	}
	return data, nil
}

func toJSONCommand(cmd canvas.Command) jsonCommand {
	b := cmd.Bounds()
	c := jsonCommand{Kind: cmd.CommandKind(), Box: jsonBox{X: b.X, Y: b.Y, W: b.W, H: b.H}}
	switch v := cmd.(type) {
	case canvas.Text:
		c.Text = v.Content
		c.Bullets = v.Bullets
		st := v.Style
		c.Style = &st
	case canvas.Shape:
		c.Shape = v.Kind.String()
		st := v.Style
		c.ShapeStyle = &st
	case canvas.Image:
		c.Path = v.Path
	case canvas.Table:
		c.ColW = v.ColumnWidths()
		for _, row := range v.Rows {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = cell.Text
			}
			c.Rows = append(c.Rows, cells)
		}
	}
	return c
}
