package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
	"github.com/apgmedia/apgdeck/pkg/observability"
	"github.com/apgmedia/apgdeck/pkg/pipeline"
	"github.com/apgmedia/apgdeck/pkg/render/canvas"
	"github.com/apgmedia/apgdeck/pkg/render/slides"
	"github.com/apgmedia/apgdeck/pkg/theme"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// logoAssets writes PNG stand-ins for the preset logo files.
func logoAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 6, 2))); err != nil {
		t.Fatal(err)
	}
	th, err := theme.Builtin().Get(theme.DefaultName)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []theme.LogoVariant{theme.LogoLight, theme.LogoDark} {
		if err := os.WriteFile(filepath.Join(dir, th.Logo().Path(v)), buf.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, log.InfoLevel).RootCommand()

	want := []string{"build", "completion", "inspect", "themes"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("subcommands = %v, want %v", got, want)
	}
	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "pptx"},
		{"pptx,json", "pptx,json"},
		{" svg , pdf ,", "svg,pdf"},
	}
	for _, tt := range tests {
		if got := strings.Join(parseFormats(tt.in), ","); got != tt.want {
			t.Errorf("parseFormats(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLoadOptions(t *testing.T) {
	missing := filepath.Join(t.TempDir(), pipeline.DefaultConfigFile)

	if _, err := loadOptions(missing, false); err != nil {
		t.Errorf("loadOptions(default, missing) error = %v, want nil", err)
	}
	if _, err := loadOptions(missing, true); !apgerr.Is(err, apgerr.ErrCodeFileNotFound) {
		t.Errorf("loadOptions(explicit, missing) code = %v, want %v", apgerr.GetCode(err), apgerr.ErrCodeFileNotFound)
	}
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "proposal.pptx")

	out, err := execute(t, "build",
		"-o", output,
		"-f", "pptx,json",
		"--assets", logoAssets(t),
		"--title", "Pasiūlymas",
	)
	if err != nil {
		t.Fatalf("build error = %v", err)
	}

	for _, path := range []string{output, filepath.Join(dir, "proposal.json")} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("artifact missing: %v", err)
		}
		if !strings.Contains(out, path) {
			t.Errorf("summary does not list %s:\n%s", path, out)
		}
	}
	if !strings.Contains(out, "10 slides") {
		t.Errorf("summary missing slide count:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "proposal.json"))
	if err != nil {
		t.Fatal(err)
	}
	var dump struct {
		Meta canvas.Metadata `json:"meta"`
	}
	if err := json.Unmarshal(data, &dump); err != nil {
		t.Fatal(err)
	}
	if dump.Meta.Title != "Pasiūlymas" {
		t.Errorf("meta.title = %q, want Pasiūlymas", dump.Meta.Title)
	}
}

func TestBuildFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "apgdeck.toml")
	body := `
output  = "` + filepath.ToSlash(filepath.Join(dir, "from-config.pptx")) + `"
formats = ["pptx"]
theme   = "standard"

[overrides]
red = "C8102E"
`
	if err := os.WriteFile(config, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	// The format flag wins over the config; output and theme come from it.
	if _, err := execute(t, "build", "--config", config, "-f", "json", "--set", "white=FAFAFA"); err != nil {
		t.Fatalf("build error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "from-config.json"))
	if err != nil {
		t.Fatalf("config output path not used: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "from-config.pptx")); err == nil {
		t.Error("pptx written although -f json overrides the config formats")
	}

	var dump struct {
		Theme  string `json:"theme"`
		Slides []struct {
			Background string `json:"background"`
		} `json:"slides"`
	}
	if err := json.Unmarshal(data, &dump); err != nil {
		t.Fatal(err)
	}
	if dump.Theme != "standard" {
		t.Errorf("theme = %q, want standard", dump.Theme)
	}
	if dump.Slides[0].Background != "C8102E" {
		t.Errorf("title background = %q, want config override C8102E", dump.Slides[0].Background)
	}
	if dump.Slides[1].Background != "FAFAFA" {
		t.Errorf("about background = %q, want flag override FAFAFA", dump.Slides[1].Background)
	}
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		code apgerr.Code
	}{
		{"bad format", []string{"-f", "docx"}, apgerr.ErrCodeInvalidFormat},
		{"unknown theme", []string{"--theme", "neon", "-f", "json"}, apgerr.ErrCodeThemeNotFound},
		{"missing config", []string{"--config", filepath.Join(dir, "none.toml")}, apgerr.ErrCodeFileNotFound},
		{"missing assets", []string{"--assets", t.TempDir()}, apgerr.ErrCodeAssetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"build", "-o", filepath.Join(dir, tt.name+".pptx")}, tt.args...)
			_, err := execute(t, args...)
			if !apgerr.Is(err, tt.code) {
				t.Errorf("build code = %v, want %v (%v)", apgerr.GetCode(err), tt.code, err)
			}
		})
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("failed builds left files: %v", entries)
	}
}

func TestThemesCommand(t *testing.T) {
	out, err := execute(t, "themes")
	if err != nil {
		t.Fatalf("themes error = %v", err)
	}
	for _, want := range []string{"corporate", "standard", "default", "Open Sans"} {
		if !strings.Contains(out, want) {
			t.Errorf("themes output missing %q:\n%s", want, out)
		}
	}
}

func TestThemesShow(t *testing.T) {
	out, err := execute(t, "themes", "show", "corporate")
	if err != nil {
		t.Fatalf("themes show error = %v", err)
	}
	for _, want := range []string{"accent", "EA3E2B", "heading", "10 x 5.625 in"} {
		if !strings.Contains(out, want) {
			t.Errorf("themes show output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "themes", "show", "neon"); !apgerr.Is(err, apgerr.ErrCodeThemeNotFound) {
		t.Errorf("themes show neon code = %v, want %v", apgerr.GetCode(err), apgerr.ErrCodeThemeNotFound)
	}
}

func TestInspectPlain(t *testing.T) {
	out, err := execute(t, "inspect", "--plain", "--theme", "standard")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{"title", "service", "closing", "10 slides"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func composedModel(t *testing.T) DeckModel {
	t.Helper()
	comp, err := pipeline.NewRunner(nil, nil).Compose(context.Background(), pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return NewDeckModel(comp.Summary, comp.Deck)
}

func press(m tea.Model, key string) tea.Model {
	var msg tea.KeyMsg
	switch key {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next
}

func TestDeckModelNavigation(t *testing.T) {
	var m tea.Model = composedModel(t)

	m = press(m, "up")
	if got := m.(DeckModel).Cursor; got != 0 {
		t.Errorf("Cursor after up at top = %d, want 0", got)
	}
	m = press(press(m, "down"), "j")
	if got := m.(DeckModel).Cursor; got != 2 {
		t.Errorf("Cursor after two downs = %d, want 2", got)
	}
	m = press(m, "G")
	if got := m.(DeckModel).Cursor; got != 9 {
		t.Errorf("Cursor after G = %d, want 9", got)
	}
	m = press(m, "down")
	if got := m.(DeckModel).Cursor; got != 9 {
		t.Errorf("Cursor moved past the last slide: %d", got)
	}
	m = press(m, "g")
	if got := m.(DeckModel).Cursor; got != 0 {
		t.Errorf("Cursor after g = %d, want 0", got)
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should quit")
	}
}

func TestDeckModelView(t *testing.T) {
	m := composedModel(t)
	m.Cursor = 1

	view := m.View()
	for _, want := range []string{"corporate", string(slides.KindAbout), "[2/10]", "text"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m.Height = 2
	if !strings.Contains(m.detail(), "more") {
		t.Error("detail() should elide commands beyond Height")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"SEO", 5, "SEO"},
		{"ŽINOMUMO DIDINIMO", 6, "ŽINOM…"},
		{"Rinkodara", 9, "Rinkodara"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		cmd  canvas.Command
		want string
	}{
		{canvas.Text{Content: "Hello\nWorld"}, "Hello"},
		{canvas.Shape{Kind: canvas.ShapeOval, Style: canvas.ShapeStyle{Fill: "EA3E2B"}}, "oval fill EA3E2B"},
		{canvas.Shape{Kind: canvas.ShapeLine}, "line fill none"},
		{canvas.Image{Path: "logo.svg"}, "logo.svg"},
		{canvas.Table{Rows: [][]canvas.Cell{{{}, {}}, {{}, {}}, {{}, {}}}}, "3×2 table"},
	}
	for _, tt := range tests {
		if got := describe(tt.cmd); !strings.HasPrefix(got, tt.want) {
			t.Errorf("describe(%s) = %q, want prefix %q", tt.cmd.CommandKind(), got, tt.want)
		}
	}
}

func TestHumanBytes(t *testing.T) {
	tests := map[int]string{
		512:     "512 B",
		2048:    "2.0 KB",
		3 << 20: "3.0 MB",
	}
	for n, want := range tests {
		if got := humanBytes(n); got != want {
			t.Errorf("humanBytes(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLogoCounts(t *testing.T) {
	tests := []struct {
		counts map[string]int
		want   string
	}{
		{map[string]int{"light": 8, "dark": 3}, "8 light · 3 dark"},
		{map[string]int{"dark": 2}, "2 dark"},
		{nil, "none"},
	}
	for _, tt := range tests {
		if got := logoCounts(tt.counts); got != tt.want {
			t.Errorf("logoCounts(%v) = %q, want %q", tt.counts, got, tt.want)
		}
	}
}
