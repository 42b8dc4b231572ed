package canvas

// Slide accepts drawing commands for one slide.
type Slide interface {
	AddText(Text)
	AddShape(Shape)
	AddImage(Image)
	AddTable(Table)
}

// Document creates slides. Implementations own the commands they receive.
type Document interface {
	AddSlide(background string) Slide
}

// Command is one recorded drawing command: a Text, Shape, Image or Table.
type Command interface {
	CommandKind() string
	Bounds() Rect
}

func (Text) CommandKind() string  { return "text" }
func (Shape) CommandKind() string { return "shape" }
func (Image) CommandKind() string { return "image" }
func (Table) CommandKind() string { return "table" }

func (t Text) Bounds() Rect  { return t.Box }
func (s Shape) Bounds() Rect { return s.Box }
func (i Image) Bounds() Rect { return i.Box }

// Bounds returns the table box with its height derived from the row count.
func (t Table) Bounds() Rect {
	b := t.Box
	b.H = float64(len(t.Rows)) * t.RowH
	return b
}

// Metadata is written into the document properties of serialised output.
type Metadata struct {
	Title   string `json:"title,omitempty" toml:"title"`
	Author  string `json:"author,omitempty" toml:"author"`
	Company string `json:"company,omitempty" toml:"company"`
	Subject string `json:"subject,omitempty" toml:"subject"`
}

// Page is one recorded slide.
type Page struct {
	Background string
	Commands   []Command
}

func (p *Page) AddText(t Text)   { p.Commands = append(p.Commands, t) }
func (p *Page) AddShape(s Shape) { p.Commands = append(p.Commands, s) }
func (p *Page) AddImage(i Image) { p.Commands = append(p.Commands, i) }
func (p *Page) AddTable(t Table) { p.Commands = append(p.Commands, t) }

// Collect returns the commands of type T on a page, in drawing order.
func Collect[T Command](p *Page) []T {
	var out []T
	for _, c := range p.Commands {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Deck records slides and commands in memory.
type Deck struct {
	Layout Layout
	Meta   Metadata
	Slides []*Page
}

// New returns an empty deck for the given canvas.
func New(layout Layout) *Deck {
	return &Deck{Layout: layout}
}

// AddSlide appends a slide with a solid background colour.
func (d *Deck) AddSlide(background string) Slide {
	p := &Page{Background: background}
	d.Slides = append(d.Slides, p)
	return p
}

// Stats counts recorded commands by kind.
type Stats struct {
	Slides int `json:"slides"`
	Texts  int `json:"texts"`
	Shapes int `json:"shapes"`
	Images int `json:"images"`
	Tables int `json:"tables"`
}

// Stats returns command counts across all slides.
func (d *Deck) Stats() Stats {
	s := Stats{Slides: len(d.Slides)}
	for _, p := range d.Slides {
		for _, c := range p.Commands {
			switch c.(type) {
			case Text:
				s.Texts++
			case Shape:
				s.Shapes++
			case Image:
				s.Images++
			case Table:
				s.Tables++
			}
		}
	}
	return s
}

// Assets returns the distinct image paths referenced by the deck, in first-use order.
func (d *Deck) Assets() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range d.Slides {
		for _, img := range Collect[Image](p) {
			if !seen[img.Path] {
				seen[img.Path] = true
				out = append(out, img.Path)
			}
		}
	}
	return out
}
