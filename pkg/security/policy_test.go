package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/qamarshahid/techprocessing/pkg/errors"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, 12, p.MinLength)
	assert.Equal(t, 128, p.MaxLength)
	assert.True(t, p.RequireUppercase)
	assert.True(t, p.RequireLowercase)
	assert.True(t, p.RequireNumbers)
	assert.True(t, p.RequireSpecialChars)
	assert.True(t, p.PreventCommonPasswords)
	assert.True(t, p.PreventUserInfo)
	assert.Empty(t, p.UserInfoFields)
	assert.Zero(t, p.MinEntropyBits)
	assert.NoError(t, p.Validate())
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Policy)
		wantErr string
	}{
		{"min length zero", func(p *Policy) { p.MinLength = 0 }, "min_length must be at least 1"},
		{"max below min", func(p *Policy) { p.MaxLength = 8 }, "max_length (8) must not be below min_length (12)"},
		{"negative entropy", func(p *Policy) { p.MinEntropyBits = -1 }, "min_entropy_bits must not be negative"},
		{"min equals max", func(p *Policy) { p.MinLength, p.MaxLength = 20, 20 }, ""},
		{"min of one", func(p *Policy) { p.MinLength = 1 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrInvalidPolicy, apperrors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPolicy_WithUserInfoCopies(t *testing.T) {
	base := DefaultPolicy().WithUserInfo("alice")
	derived := base.WithUserInfo("alice@example.com")

	assert.Equal(t, []string{"alice"}, base.UserInfoFields)
	assert.Equal(t, []string{"alice", "alice@example.com"}, derived.UserInfoFields)
}

func TestPolicy_Summary(t *testing.T) {
	assert.Equal(t,
		"Password must contain at least 12 characters, at most 128 characters, one uppercase letter, "+
			"one lowercase letter, one number, one special character and cannot contain common passwords, "+
			"repeated characters or sequential characters.",
		DefaultPolicy().Summary())

	p := Policy{MinLength: 8, MaxLength: 64, PreventUserInfo: true, UserInfoFields: []string{"bob"}}
	assert.Equal(t,
		"Password must contain at least 8 characters, at most 64 characters and cannot contain "+
			"personal information, repeated characters or sequential characters.",
		p.Summary())
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "", joinList(nil, "and"))
	assert.Equal(t, "a", joinList([]string{"a"}, "and"))
	assert.Equal(t, "a and b", joinList([]string{"a", "b"}, "and"))
	assert.Equal(t, "a, b or c", joinList([]string{"a", "b", "c"}, "or"))
}
