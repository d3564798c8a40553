package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateRatio validates a fractional split argument.
// Ratios must be finite and within the closed interval [0, 1].
func ValidateRatio(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return New(ErrCodeInvalidRatio, "ratio must be a finite number, got %v", p)
	}
	if p < 0 || p > 1 {
		return New(ErrCodeInvalidRatio, "ratio %v outside [0, 1]", p)
	}
	return nil
}

// ValidateLayoutName validates a layout name used for config lookup.
// Names are short lowercase identifiers without whitespace or path characters.
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeUnknownLayout, "layout name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeUnknownLayout, "layout name too long (max 64 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeUnknownLayout, "layout name contains invalid characters: %q", name)
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeUnknownLayout, "layout name cannot contain path separators")
	}
	return nil
}
