package errors

import (
	"strings"
	"testing"
)

func TestValidateFieldName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "source", false},
		{"valid with dash", "display-name", false},
		{"valid with dot", "meta.label", false},
		{"valid unicode", "étiquette", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"leading space", " name", true},
		{"trailing space", "name ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFieldName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfiguration) {
				t.Errorf("ValidateFieldName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfiguration)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"dot", "svg"}
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"dot", "dot", false},
		{"svg upper", "SVG", false},
		{"empty", "", true},
		{"unknown", "png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, allowed...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
