package pipeline

import (
	"errors"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
)

// DefaultConfigFile is the config file name looked up in the working directory.
const DefaultConfigFile = "apgdeck.toml"

// LoadConfig reads build options from a TOML file. Unknown keys are rejected
// so that typos do not silently fall back to defaults.
//
//	output  = "out/APG_Media_Corporate_Proposal.pptx"
//	formats = ["pptx", "json"]
//	theme   = "corporate"
//	assets  = "assets"
//
//	[overrides]
//	accent = "C8102E"
//
//	[metadata]
//	title  = "Skaitmeninės rinkodaros pasiūlymas"
//	author = "APG Media"
func LoadConfig(path string) (Options, error) {
	var opts Options
	md, err := toml.DecodeFile(path, &opts)
	if errors.Is(err, fs.ErrNotExist) {
		return Options{}, apgerr.Wrap(apgerr.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Options{}, apgerr.Wrap(apgerr.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Options{}, apgerr.New(apgerr.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if len(opts.Formats) > 0 {
		if err := ValidateFormats(opts.Formats); err != nil {
			return Options{}, apgerr.Wrap(apgerr.ErrCodeInvalidConfig, err, "config %s", path)
		}
	}
	return opts, nil
}
