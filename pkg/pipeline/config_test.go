package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	apgerr "github.com/apgmedia/apgdeck/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output  = "out/deck.pptx"
formats = ["pptx", "json"]
theme   = "standard"
assets  = "art"

[overrides]
accent = "#C8102E"
"font.heading" = "Montserrat"

[metadata]
title   = "Pasiūlymas"
company = "APG Media"
`)

	opts, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if opts.Output != "out/deck.pptx" {
		t.Errorf("Output = %q, want out/deck.pptx", opts.Output)
	}
	if strings.Join(opts.Formats, ",") != "pptx,json" {
		t.Errorf("Formats = %v, want [pptx json]", opts.Formats)
	}
	if opts.Theme != "standard" || opts.AssetsDir != "art" {
		t.Errorf("Theme, AssetsDir = %q, %q", opts.Theme, opts.AssetsDir)
	}
	if opts.Overrides["accent"] != "#C8102E" || opts.Overrides["font.heading"] != "Montserrat" {
		t.Errorf("Overrides = %v", opts.Overrides)
	}
	if opts.Metadata.Title != "Pasiūlymas" || opts.Metadata.Company != "APG Media" {
		t.Errorf("Metadata = %+v", opts.Metadata)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want apgerr.Code
		msg  string
	}{
		{"unknown key", "theme = \"corporate\"\nthme = \"standard\"\n", apgerr.ErrCodeInvalidConfig, "thme"},
		{"syntax", "theme = corporate\n", apgerr.ErrCodeInvalidConfig, ""},
		{"bad format", "formats = [\"pptx\", \"docx\"]\n", apgerr.ErrCodeInvalidConfig, "docx"},
		{"wrong type", "formats = \"pptx\"\n", apgerr.ErrCodeInvalidConfig, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("LoadConfig() error = nil")
			}
			if !apgerr.Is(err, tt.want) {
				t.Errorf("LoadConfig() code = %v, want %v", apgerr.GetCode(err), tt.want)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("LoadConfig() error = %q, want mention of %q", err, tt.msg)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !apgerr.Is(err, apgerr.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig(missing) code = %v, want %v", apgerr.GetCode(err), apgerr.ErrCodeFileNotFound)
	}
}
