package errors

import (
	"unicode"
	"unicode/utf8"
)

// MaxLabelLength caps labels accepted from interactive input.
const MaxLabelLength = 256

// ValidateLabel checks a node label typed into the editor or posted to the
// chart server. Labels are opaque to the layout, so the rules only keep the
// renderers sane:
//   - No empty labels
//   - No control characters (newlines break SVG text and DOT quoting)
//   - Valid UTF-8
//   - Maximum length of MaxLabelLength runes
//
// Labels read from tree files are not validated; their author controls them.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}
	if !utf8.ValidString(label) {
		return New(ErrCodeInvalidLabel, "label is not valid UTF-8")
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return New(ErrCodeInvalidLabel, "label too long (max %d characters)", MaxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}
	return nil
}
