package entity

import (
	"fmt"

	"magazine-registry/internal/utils/text"
)

// Length bounds, counted in Unicode characters.
const (
	MagazineNameMinLength = 2
	MagazineNameMaxLength = 16
	ArticleTitleMinLength = 5
	ArticleTitleMaxLength = 50
)

// ValidateRequired returns a ValidationError for field if value is empty.
func ValidateRequired(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "must be a non-empty string"}
	}
	return nil
}

// ValidateLength returns a ValidationError for field unless value has between
// min and max characters, inclusive.
func ValidateLength(field, value string, min, max int) error {
	if text.LengthBetween(value, min, max) {
		return nil
	}
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be a string between %d and %d characters, got %d", min, max, text.CountRunes(value)),
	}
}
