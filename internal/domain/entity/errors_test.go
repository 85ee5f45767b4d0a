package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "title length error",
			field:    "title",
			message:  "must be a string between 5 and 50 characters, got 4",
			expected: "validation error on field 'title': must be a string between 5 and 50 characters, got 4",
		},
		{
			name:     "required field error",
			field:    "category",
			message:  "must be a non-empty string",
			expected: "validation error on field 'category': must be a non-empty string",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{
				Field:   tt.field,
				Message: tt.message,
			}

			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "must be a non-empty string"}

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))

	// Wrapped errors keep matching
	wrapped := fmt.Errorf("create author: %w", err)
	assert.True(t, errors.Is(wrapped, ErrValidationFailed))

	var validationErr *ValidationError
	assert.True(t, errors.As(wrapped, &validationErr))
	assert.Equal(t, "name", validationErr.Field)
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"sentinel only", ErrValidationFailed, false},
		{"not found", ErrNotFound, false},
		{"validation error", &ValidationError{Field: "title"}, true},
		{"wrapped validation error", fmt.Errorf("x: %w", &ValidationError{Field: "title"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidationError(tt.err))
		})
	}
}

func TestSentinelErrors_ErrorMessages(t *testing.T) {
	assert.Equal(t, "entity not found", ErrNotFound.Error())
	assert.Equal(t, "validation failed", ErrValidationFailed.Error())
	assert.NotEqual(t, ErrNotFound, ErrValidationFailed)
}
