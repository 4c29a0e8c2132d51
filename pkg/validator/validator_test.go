package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErrs []string
	}{
		{"valid", "warbler_fan", "fan@example.com", "secret1", nil},
		{"missing username", "", "fan@example.com", "secret1", []string{"username"}},
		{"bad username chars", "no spaces!", "fan@example.com", "secret1", []string{"username"}},
		{"missing email", "warbler_fan", "", "secret1", []string{"email"}},
		{"malformed email", "warbler_fan", "not-an-email", "secret1", []string{"email"}},
		{"short password", "warbler_fan", "fan@example.com", "12345", []string{"password"}},
		{"all missing", "", "", "", []string{"username", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSignup(tt.username, tt.email, tt.password)
			assert.Len(t, errs, len(tt.wantErrs))
			for _, field := range tt.wantErrs {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.False(t, ValidateLogin("alice", "secret1").HasErrors())
	assert.Contains(t, ValidateLogin("", "secret1"), "username")
	assert.Contains(t, ValidateLogin("alice", "123"), "password")
}

func TestValidateMessage(t *testing.T) {
	assert.False(t, ValidateMessage("hello birds").HasErrors())
	assert.Contains(t, ValidateMessage(""), "text")
	assert.Contains(t, ValidateMessage("   "), "text")

	exactly140 := strings.Repeat("a", 140)
	assert.False(t, ValidateMessage(exactly140).HasErrors())
	assert.Contains(t, ValidateMessage(exactly140+"a"), "text")
}

func TestValidateMessageCountsRunes(t *testing.T) {
	// 140 multibyte characters are within the limit even though the byte
	// count is far larger.
	assert.False(t, ValidateMessage(strings.Repeat("ö", 140)).HasErrors())
}

func TestValidateProfileUpdate(t *testing.T) {
	longBio := strings.Repeat("b", 161)

	errs := ValidateProfileUpdate("alice", "alice@example.com", "secret1", "short bio")
	assert.False(t, errs.HasErrors())

	errs = ValidateProfileUpdate("alice", "alice@example.com", "secret1", longBio)
	assert.Contains(t, errs, "bio")

	errs = ValidateProfileUpdate("alice", "bad", "123", "")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}
