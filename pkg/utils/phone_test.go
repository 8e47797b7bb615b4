package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"formatted local number", "(33) 99988-7766", "+5533999887766"},
		{"bare digits", "33999887766", "+5533999887766"},
		{"already has country code", "5533999887766", "+5533999887766"},
		{"plus and country code", "+55 33 99988-7766", "+5533999887766"},
		{"short 55 prefix is an area-less local number", "5599887", "+555599887"},
		{"empty", "", ""},
		{"no digits at all", "abc-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}
