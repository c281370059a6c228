package account

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()

	v, err := New(nil, nil)
	require.NoError(t, err)

	return v
}

func TestValidateUsername(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"valid", "quiet_writer", []string{}},
		{"empty", "  ", []string{"Username is required"}},
		{"too short", "ab", []string{"Username must be between 3 and 20 characters"}},
		{"too long", strings.Repeat("a", 21), []string{"Username must be between 3 and 20 characters"}},
		{"bad characters", "bad-name!", []string{"Username can only contain letters, numbers and underscores"}},
		{"leading digit", "9lives", []string{"Username cannot start with a number"}},
		{"reserved", "Admin", []string{"This username is reserved"}},
		{"taken", "john", []string{"This username is already taken"}},
		{"profanity", "shit_poster", []string{"Username contains inappropriate language"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidateUsername(tt.in))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"writer@example.com", true},
		{"writer@mail.example.co.uk", true},
		{"", false},
		{"not-an-email", false},
		{"Writer <writer@example.com>", false},
		{"writer@localhost", false},
		{"writer@example.notarealtld", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ValidateEmail(tt.in)
			if tt.valid {
				assert.Empty(t, got)
			} else {
				assert.NotEmpty(t, got)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		in           string
		wantErr      bool
		wantStrength Strength
	}{
		{"", true, StrengthWeak},
		{"short", true, StrengthWeak},
		{"alllowercase", false, StrengthWeak},
		{"Lower1case", false, StrengthMedium},
		{"Longer1Password!", false, StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ValidatePassword(tt.in)

			assert.Equal(t, tt.wantErr, len(got.Errors) > 0)
			assert.Equal(t, tt.wantStrength, got.Strength)
		})
	}
}

func TestValidateDisplayName(t *testing.T) {
	v := newTestValidator(t)

	assert.Empty(t, v.ValidateDisplayName("Quiet Writer"))
	assert.Equal(t, []string{"Display name is required"}, v.ValidateDisplayName(""))
	assert.Equal(t, []string{"Display name must be at most 50 characters"}, v.ValidateDisplayName(strings.Repeat("x", 51)))
	assert.Equal(t, []string{"Display name contains inappropriate language"}, v.ValidateDisplayName("Master Race Fan"))
}

func TestValidate(t *testing.T) {
	v := newTestValidator(t)

	got := v.Validate(Registration{
		Username:    "admin",
		Email:       "writer@example.com",
		Password:    "Longer1Password!",
		DisplayName: "Quiet Writer",
	})

	assert.False(t, got.Valid)
	assert.Equal(t, map[string][]string{"username": {"This username is reserved"}}, got.Fields)
	assert.Equal(t, StrengthStrong, got.PasswordStrength)

	clean := v.Validate(Registration{Username: "quiet_writer"})
	assert.True(t, clean.Valid)
	assert.Empty(t, clean.Fields)
}
