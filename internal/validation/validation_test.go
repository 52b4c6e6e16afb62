package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid simple", "alice", false},
		{"Valid single char", "a", false},
		{"Valid with separators", "alice.b-c_d", false},
		{"Empty", "", true},
		{"Too long", strings.Repeat("a", 33), true},
		{"Spaces", "alice b", true},
		{"Illegal chars", "alice!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "a@x.com", false},
		{"Valid subdomain", "user@mail.example.org", false},
		{"Empty", "", true},
		{"Missing at", "ax.com", true},
		{"Missing domain dot", "a@x", true},
		{"Whitespace", "a @x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("p"))
	assert.NoError(t, ValidatePassword("correct horse battery staple"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
}

func TestValidateSectionName(t *testing.T) {
	assert.NoError(t, ValidateSectionName("bio"))
	assert.Error(t, ValidateSectionName(""))
	assert.Error(t, ValidateSectionName("   "))
	assert.Error(t, ValidateSectionName(strings.Repeat("s", 65)))
}
