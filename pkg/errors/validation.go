package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutputPath validates an artifact output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator, not "." or "..")
//
// Whether the parent directory exists is not checked here; that failure surfaces
// when the artifact is written.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}

	switch filepath.Base(path) {
	case ".", "..":
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}

	return nil
}

// hexColorRegex matches a six-digit RGB hex colour without the leading '#'.
var hexColorRegex = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ValidateHexColor validates a palette value such as "EA3E2B".
func ValidateHexColor(value string) error {
	if !hexColorRegex.MatchString(value) {
		return New(ErrCodeInvalidTheme, "invalid colour %q (want six hex digits, no '#')", value)
	}
	return nil
}

// ValidateFontFamily validates a font family name.
// Family names are written into presentation XML, so control characters are rejected.
func ValidateFontFamily(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidTheme, "font family cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidTheme, "font family too long (max 128 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTheme, "font family contains invalid control characters")
		}
	}
	return nil
}
