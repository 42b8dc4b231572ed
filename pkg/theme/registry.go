package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
)

// DefaultName is the preset used when no theme is requested.
const DefaultName = "corporate"

//go:embed presets/*.toml
var presetsFS embed.FS

// Registry holds named theme presets.
type Registry struct {
	themes map[string]*Theme
	names  []string
}

// NewRegistry loads every *.toml file under dir in fsys as a preset.
func NewRegistry(fsys fs.FS, dir string) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	r := &Registry{themes: make(map[string]*Theme)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read preset %s: %w", entry.Name(), err)
		}
		t, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", entry.Name(), err)
		}
		if _, dup := r.themes[t.Name()]; dup {
			return nil, apgerr.New(apgerr.ErrCodeInvalidTheme, "duplicate preset name %q", t.Name())
		}
		r.themes[t.Name()] = t
		r.names = append(r.names, t.Name())
	}
	sort.Strings(r.names)
	return r, nil
}

// Builtin returns the registry of presets compiled into the binary.
func Builtin() *Registry {
	r, err := NewRegistry(presetsFS, "presets")
	if err != nil {
		// Embedded presets are covered by tests; failing here is a build defect.
		panic(err)
	}
	return r
}

// Names returns the preset names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Get returns the named preset.
func (r *Registry) Get(name string) (*Theme, error) {
	t, ok := r.themes[name]
	if !ok {
		return nil, apgerr.New(apgerr.ErrCodeThemeNotFound, "unknown theme %q (available: %s)", name, strings.Join(r.names, ", "))
	}
	return t, nil
}

// Resolve returns the named preset, or loads a theme file when ref ends in
// ".toml". An empty ref selects DefaultName.
func (r *Registry) Resolve(ref string) (*Theme, error) {
	if ref == "" {
		ref = DefaultName
	}
	if strings.HasSuffix(ref, ".toml") {
		return LoadFile(ref)
	}
	return r.Get(ref)
}

// Parse decodes and validates a theme from TOML. Unknown keys are rejected so
// that a misspelt role does not silently fall back to a default.
func Parse(data []byte) (*Theme, error) {
	var spec Spec
	md, err := toml.Decode(string(data), &spec)
	if err != nil {
		return nil, apgerr.Wrap(apgerr.ErrCodeInvalidTheme, err, "decode theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apgerr.New(apgerr.ErrCodeInvalidTheme, "unknown theme keys: %s", strings.Join(keys, ", "))
	}
	return New(spec)
}

// LoadFile reads a theme from a TOML file on disk.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apgerr.Wrap(apgerr.ErrCodeThemeNotFound, err, "theme file %s", path)
		}
		return nil, fmt.Errorf("read theme file: %w", err)
	}
	return Parse(data)
}
