package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("organizer@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("+15551234567"))
	assert.Error(t, ValidatePhone("not-a-phone"))
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "Sh0rt", true},
		{"no uppercase", "lowercase123", true},
		{"no lowercase", "UPPERCASE123", true},
		{"no digit", "NoDigitsHere", true},
		{"valid", "Valid1Password", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidatePassword(c.password)
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSportName(t *testing.T) {
	assert.NoError(t, ValidateSportName("tennis"))
	assert.Error(t, ValidateSportName("a"))

	tooLong := make([]byte, 65)
	for i := range tooLong {
		tooLong[i] = 'a'
	}
	assert.Error(t, ValidateSportName(string(tooLong)))
}
