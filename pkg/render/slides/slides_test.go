package slides

import (
	"math"
	"strings"
	"testing"

	"github.com/apgmedia/apgdeck/pkg/content"
	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

const eps = 1e-9

func preset(t *testing.T, name string) *theme.Theme {
	t.Helper()
	th, err := theme.Builtin().Get(name)
	if err != nil {
		t.Fatalf("theme %s: %v", name, err)
	}
	return th
}

func composeExample(t *testing.T, th *theme.Theme) (*canvas.Deck, Summary) {
	t.Helper()
	deck := canvas.New(canvas.Layout16x9)
	sum, err := Compose(deck, th, content.Example())
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	return deck, sum
}

func pagesOf(deck *canvas.Deck, sum Summary, kind Kind) []*canvas.Page {
	var out []*canvas.Page
	for _, s := range sum.Slides {
		if s.Kind == kind {
			out = append(out, deck.Slides[s.Index])
		}
	}
	return out
}

func TestComposeOrder(t *testing.T) {
	deck, sum := composeExample(t, preset(t, "corporate"))

	want := []Kind{
		KindTitle, KindAbout, KindAnalysis, KindSection, KindService, KindService,
		KindBudget, KindTimeline, KindTestimonial, KindClosing,
	}
	if len(sum.Slides) != len(want) || len(deck.Slides) != len(want) {
		t.Fatalf("slides = %d (deck %d), want %d", len(sum.Slides), len(deck.Slides), len(want))
	}
	for i, k := range want {
		if sum.Slides[i].Kind != k {
			t.Errorf("slide %d kind = %s, want %s", i, sum.Slides[i].Kind, k)
		}
		if got := len(deck.Slides[i].Commands); got != sum.Slides[i].Commands {
			t.Errorf("slide %d summary counts %d commands, page has %d", i, sum.Slides[i].Commands, got)
		}
	}
	if sum.Theme != "corporate" {
		t.Errorf("Theme = %q", sum.Theme)
	}
}

func TestComposeBackgrounds(t *testing.T) {
	th := preset(t, "corporate")
	deck, sum := composeExample(t, th)

	accent := 0
	for _, p := range deck.Slides {
		if p.Background == th.Color(theme.RoleAccent) {
			accent++
		}
	}
	if accent != 1 {
		t.Errorf("accent backgrounds = %d, want 1 (title only)", accent)
	}
	if got := deck.Slides[0].Background; got != "EA3E2B" {
		t.Errorf("title background = %s", got)
	}
	if got := pagesOf(deck, sum, KindClosing)[0].Background; got != "1A1A1A" {
		t.Errorf("closing background = %s", got)
	}
	if got := pagesOf(deck, sum, KindSection)[0].Background; got != "F5F0EB" {
		t.Errorf("section background = %s", got)
	}

	closing := pagesOf(deck, sum, KindClosing)[0]
	if imgs := canvas.Collect[canvas.Image](closing); len(imgs) != 2 {
		t.Errorf("closing images = %d, want corner and centred logo", len(imgs))
	}
}

func TestAboutStatCards(t *testing.T) {
	th := preset(t, "corporate")
	deck, sum := composeExample(t, th)
	about := pagesOf(deck, sum, KindAbout)[0]
	m := th.Metrics()

	var cards []canvas.Rect
	for _, tx := range canvas.Collect[canvas.Text](about) {
		switch tx.Content {
		case "50+", "5.2x", "€2.10":
			cards = append(cards, tx.Box)
		}
	}
	if len(cards) != 3 {
		t.Fatalf("stat values = %d, want 3", len(cards))
	}
	for i := 1; i < len(cards); i++ {
		if math.Abs(cards[i].W-cards[0].W) > eps {
			t.Errorf("card %d width %v != %v", i, cards[i].W, cards[0].W)
		}
		if cards[i-1].Overlaps(cards[i]) {
			t.Errorf("card %d overlaps card %d", i, i-1)
		}
	}
	if math.Abs(cards[0].X-m.Left()) > eps || math.Abs(cards[2].Right()-(m.Left()+m.ContentW)) > eps {
		t.Errorf("cards span %v..%v, want full content width", cards[0].X, cards[2].Right())
	}
	if cards[0].Y != 2.0 {
		t.Errorf("stat row y = %v, want 2.0", cards[0].Y)
	}
}

func TestServiceSlides(t *testing.T) {
	th := preset(t, "corporate")
	deck, sum := composeExample(t, th)
	example := content.Example()

	pages := pagesOf(deck, sum, KindService)
	if len(pages) != len(example.Services) {
		t.Fatalf("service slides = %d, want %d", len(pages), len(example.Services))
	}
	for i, p := range pages {
		svc := example.Services[i]
		budget, mgmt := 0, 0
		for _, tx := range canvas.Collect[canvas.Text](p) {
			if tx.Style.Color != th.Color(theme.RoleAccent) {
				continue
			}
			switch tx.Content {
			case svc.Budget:
				budget++
			case svc.Mgmt:
				mgmt++
			}
		}
		if budget != 1 || mgmt != 1 {
			t.Errorf("service %s: accent budget=%d mgmt=%d, want 1 and 1", svc.ID, budget, mgmt)
		}
		heading := canvas.Collect[canvas.Text](p)[0]
		if heading.Content != svc.Title {
			t.Errorf("service %d heading = %q, want %q", i, heading.Content, svc.Title)
		}
	}
}

func TestTimelineSlide(t *testing.T) {
	th := preset(t, "corporate")
	deck, sum := composeExample(t, th)
	p := pagesOf(deck, sum, KindTimeline)[0]

	var ovals []canvas.Shape
	dashed := 0
	for _, sh := range canvas.Collect[canvas.Shape](p) {
		switch {
		case sh.Kind == canvas.ShapeOval:
			ovals = append(ovals, sh)
		case sh.Kind == canvas.ShapeLine && sh.Style.Line.Dash == canvas.DashDash:
			dashed++
		}
	}
	if dashed != 3 {
		t.Errorf("dashed connectors = %d, want 3", dashed)
	}
	if len(ovals) != 4 {
		t.Fatalf("phase markers = %d, want 4", len(ovals))
	}
	for i, o := range ovals {
		active := o.Style.Fill == th.Color(theme.RoleAccent)
		if active != (i == 0) {
			t.Errorf("phase %d active = %v, want %v", i, active, i == 0)
		}
	}
}

func TestBudgetSlide(t *testing.T) {
	th := preset(t, "corporate")
	deck, sum := composeExample(t, th)
	p := pagesOf(deck, sum, KindBudget)[0]

	tables := canvas.Collect[canvas.Table](p)
	if len(tables) != 1 || len(tables[0].Rows) != 4 {
		t.Fatalf("budget table rows = %v, want one table with 4 rows", tables)
	}

	var footnote *canvas.Text
	var viso *canvas.Text
	for _, tx := range canvas.Collect[canvas.Text](p) {
		switch {
		case strings.HasPrefix(tx.Content, "* "):
			footnote = &tx
		case tx.Content == "VISO":
			viso = &tx
		}
	}
	if viso == nil || math.Abs(viso.Box.Y-2.78) > eps {
		t.Fatalf("totals row = %+v, want at y 2.78", viso)
	}
	if footnote == nil || math.Abs(footnote.Box.Y-3.28) > eps || !footnote.Style.Italic {
		t.Errorf("footnote = %+v, want italic at y 3.28", footnote)
	}
}

func TestAnalysisBulletLimit(t *testing.T) {
	th := preset(t, "corporate")
	d := content.Example()
	d.Analysis.Points = append(d.Analysis.Points, "penktas", "šeštas")

	deck := canvas.New(canvas.Layout16x9)
	sum, err := Compose(deck, th, d)
	if err != nil {
		t.Fatal(err)
	}
	p := pagesOf(deck, sum, KindAnalysis)[0]
	for _, tx := range canvas.Collect[canvas.Text](p) {
		if len(tx.Bullets) > 0 && len(tx.Bullets) != 4 {
			t.Errorf("bullets = %d, want 4", len(tx.Bullets))
		}
	}
}

func TestComposeErrors(t *testing.T) {
	th := preset(t, "corporate")

	d := content.Example()
	d.About.Stats = nil
	_, err := Compose(canvas.New(canvas.Layout16x9), th, d)
	if !apgerr.Is(err, apgerr.ErrCodeInvalidInput) {
		t.Fatalf("Compose(no stats) error = %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(err.Error(), "slide 2 (about)") {
		t.Errorf("error %q does not name the slide", err)
	}

	d = content.Example()
	d.Timeline.Phases = nil
	if _, err := Compose(canvas.New(canvas.Layout16x9), th, d); !apgerr.Is(err, apgerr.ErrCodeInvalidInput) {
		t.Errorf("Compose(no phases) error = %v, want INVALID_INPUT", err)
	}

	table := Default()
	delete(table, KindBudget)
	if _, err := ComposeWith(canvas.New(canvas.Layout16x9), th, content.Example(), table); !apgerr.Is(err, apgerr.ErrCodeInvalidInput) {
		t.Errorf("ComposeWith(missing template) error = %v, want INVALID_INPUT", err)
	}
}

func TestNoServicesSkipsServiceSlides(t *testing.T) {
	d := content.Example()
	d.Services = nil
	deck := canvas.New(canvas.Layout16x9)
	sum, err := Compose(deck, preset(t, "corporate"), d)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Count(KindService) != 0 || len(deck.Slides) != 8 {
		t.Errorf("slides = %d, service slides = %d; want 8 and 0", len(deck.Slides), sum.Count(KindService))
	}
}

func TestAutoLogoFollowsBackground(t *testing.T) {
	tests := []struct {
		theme string
		want  string
	}{
		{"corporate", "light"},
		{"standard", "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			_, sum := composeExample(t, preset(t, tt.theme))
			for _, s := range sum.Slides {
				if s.Kind == KindSection && s.Logo != tt.want {
					t.Errorf("section logo = %s, want %s", s.Logo, tt.want)
				}
			}
		})
	}
}

func TestBoxResolve(t *testing.T) {
	m := theme.NewMetrics(10, 5.625, theme.Margins{Left: 0.7, Right: 0.7, Top: 0.7, Bottom: 0.8})
	tests := []struct {
		name   string
		box    Box
		cursor float64
		want   canvas.Rect
	}{
		{"content anchored", Box{X: Frac(0.58), Y: In(1.4), W: Frac(0.42), H: In(2.8)}, 0, canvas.Rect{X: 0.7 + 8.6*0.58, Y: 1.4, W: 8.6 * 0.42, H: 2.8}},
		{"canvas anchored", Box{X: In(1), Y: In(1), W: In(2), H: In(1), Anchor: AnchorCanvas}, 0, canvas.Rect{X: 1, Y: 1, W: 2, H: 1}},
		{"centred", Box{X: In(-0.3), Y: In(2), W: In(0.6), Anchor: AnchorCenter}, 0, canvas.Rect{X: 4.7, Y: 2, W: 0.6}},
		{"cursor", Box{Y: In(0.5), W: Frac(1), H: In(0.25), FromCursor: true}, 2.78, canvas.Rect{X: 0.7, Y: 3.28, W: 8.6, H: 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.box.Resolve(m, tt.cursor)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps ||
				math.Abs(got.W-tt.want.W) > eps || math.Abs(got.H-tt.want.H) > eps {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
