package errors

import (
	"strings"
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "APG_Media_Corporate_Proposal.pptx", false},
		{"relative dir", "out/deck.pptx", false},
		{"absolute", "/tmp/deck.pptx", false},
		{"unicode name", "pasiūlymas.pptx", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 1100), true},
		{"null byte", "deck\x00.pptx", true},
		{"newline", "deck\n.pptx", true},
		{"trailing slash", "out/", true},
		{"dot", ".", true},
		{"dot dot", "out/..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"upper", "EA3E2B", false},
		{"lower", "f5f0eb", false},

		{"hash prefix", "#EA3E2B", true},
		{"short", "FFF", true},
		{"non hex", "GGGGGG", true},
		{"empty", "", true},
		{"alpha", "FFEA3E2B", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFontFamily(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"source sans", "Source Sans Pro", false},
		{"open sans", "Open Sans", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"control", "Open\tSans", true},
		{"too long", strings.Repeat("x", 200), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFontFamily(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFontFamily(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
