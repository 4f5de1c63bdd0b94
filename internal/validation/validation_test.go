package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "a@b.com", true},
		{"plus and dots", "first.last+tag@example.org", true},
		{"missing at", "nobody.example.org", false},
		{"missing local part", "@example.org", false},
		{"missing domain", "nobody@", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		minLength int
		want      bool
	}{
		{"exactly at minimum", "secret", 6, true},
		{"above minimum", "secret1", 6, true},
		{"below minimum", "short", 6, false},
		{"empty", "", 6, false},
		{"zero min uses default", "secret", 0, true},
		{"zero min rejects short", "five5", 0, false},
		{"custom minimum", "12345678", 8, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidPassword(tc.password, tc.minLength))
		})
	}
}
