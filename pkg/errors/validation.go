package errors

import (
	"slices"
	"strings"
	"unicode"
)

// MaxDimension bounds container sizes accepted from documents and API requests.
const MaxDimension = 1 << 20

// ValidateElementID validates an element identifier from a layout document.
// IDs end up in SVG attributes, DOT labels and JSON keys, so the rules are strict:
//   - No empty IDs
//   - Maximum length of 128 characters
//   - Letters, digits, '-', '_' and '.' only
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDocument, "element id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidDocument, "element id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("-_.", r) {
			continue
		}
		return New(ErrCodeInvalidDocument, "element id %q contains invalid character %q", id, r)
	}
	return nil
}

// ValidateDimensions checks a container size. Zero is allowed and means
// "use the preferred size".
func ValidateDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidInput, "dimensions must be non-negative, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidInput, "dimensions too large (max %d)", MaxDimension)
	}
	return nil
}

// ValidateFormat checks that format is one of the supported names.
func ValidateFormat(format string, supported []string) error {
	if slices.Contains(supported, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(supported, ", "))
}
