package domain_test

import (
	"testing"

	"github.com/meldehub/meldehub-backend/internal/confirmation/domain"
	"github.com/stretchr/testify/assert"
)

func TestStringValue_Validity(t *testing.T) {
	tests := []struct {
		name    string
		value   domain.StringValue
		invalid bool
	}{
		{"valid text", domain.NewValidString("A123456789"), false},
		{"flagged text", domain.NewInvalidString("A123456789"), true},
		{"empty text is always invalid", domain.NewValidString(""), true},
		{"empty flagged text", domain.NewInvalidString(""), true},
		{"explicit flag", domain.NewStringValue("x", true), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalid, tt.value.IsInvalid())
		})
	}
}

func TestStringValue_StringKeepsOriginalText(t *testing.T) {
	v := domain.NewInvalidString("  raw text  ")
	assert.Equal(t, "  raw text  ", v.String())
}
