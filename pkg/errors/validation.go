package errors

import (
	"slices"
	"strings"
	"unicode"
)

// maxFieldNameLength bounds attribute field names accepted from
// configuration files and command-line flags.
const maxFieldNameLength = 256

// ValidateFieldName validates an attribute field name used in an
// attribute-key mapping.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No leading or trailing whitespace
//   - Maximum length of 256 characters
//
// Uniqueness across roles is checked by the converter, not here.
func ValidateFieldName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfiguration, "attribute field name cannot be empty")
	}

	if len(name) > maxFieldNameLength {
		return New(ErrCodeInvalidConfiguration, "attribute field name too long (max %d characters)", maxFieldNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfiguration, "attribute field name contains invalid control characters")
		}
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidConfiguration, "attribute field name %q has surrounding whitespace", name)
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
// The comparison is case-insensitive.
func ValidateFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, strings.ToLower(format)) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}
