package security

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/qamarshahid/techprocessing/pkg/errors"
)

const (
	DefaultMinLength = 12
	DefaultMaxLength = 128
)

// Policy is the set of rules a candidate password is evaluated against.
// Policies are passed by value; helpers return modified copies.
type Policy struct {
	MinLength              int      `mapstructure:"min_length" json:"min_length" envconfig:"MIN_LENGTH" validate:"gte=1"`
	MaxLength              int      `mapstructure:"max_length" json:"max_length" envconfig:"MAX_LENGTH" validate:"gtefield=MinLength"`
	RequireUppercase       bool     `mapstructure:"require_uppercase" json:"require_uppercase" envconfig:"REQUIRE_UPPERCASE"`
	RequireLowercase       bool     `mapstructure:"require_lowercase" json:"require_lowercase" envconfig:"REQUIRE_LOWERCASE"`
	RequireNumbers         bool     `mapstructure:"require_numbers" json:"require_numbers" envconfig:"REQUIRE_NUMBERS"`
	RequireSpecialChars    bool     `mapstructure:"require_special_chars" json:"require_special_chars" envconfig:"REQUIRE_SPECIAL_CHARS"`
	PreventCommonPasswords bool     `mapstructure:"prevent_common_passwords" json:"prevent_common_passwords" envconfig:"PREVENT_COMMON_PASSWORDS"`
	PreventUserInfo        bool     `mapstructure:"prevent_user_info" json:"prevent_user_info" envconfig:"PREVENT_USER_INFO"`
	UserInfoFields         []string `mapstructure:"user_info_fields" json:"user_info_fields,omitempty" envconfig:"USER_INFO_FIELDS"`
	MinEntropyBits         float64  `mapstructure:"min_entropy_bits" json:"min_entropy_bits,omitempty" envconfig:"MIN_ENTROPY_BITS" validate:"gte=0"`
}

// DefaultPolicy returns the baseline policy: 12 to 128 characters, every
// character class required, common passwords and user info rejected.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:              DefaultMinLength,
		MaxLength:              DefaultMaxLength,
		RequireUppercase:       true,
		RequireLowercase:       true,
		RequireNumbers:         true,
		RequireSpecialChars:    true,
		PreventCommonPasswords: true,
		PreventUserInfo:        true,
	}
}

var policyValidate = validator.New()

// Validate checks that the policy can be enforced.
func (p Policy) Validate() error {
	err := policyValidate.Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.InvalidPolicy(err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "MinLength":
			msgs = append(msgs, fmt.Sprintf("min_length must be at least 1, got %d", p.MinLength))
		case "MaxLength":
			msgs = append(msgs, fmt.Sprintf("max_length (%d) must not be below min_length (%d)", p.MaxLength, p.MinLength))
		case "MinEntropyBits":
			msgs = append(msgs, fmt.Sprintf("min_entropy_bits must not be negative, got %g", p.MinEntropyBits))
		default:
			msgs = append(msgs, fe.Error())
		}
	}
	return apperrors.InvalidPolicy(fmt.Errorf("%s", strings.Join(msgs, "; ")))
}

// WithUserInfo returns a copy of p with fields appended to UserInfoFields.
func (p Policy) WithUserInfo(fields ...string) Policy {
	if len(p.UserInfoFields)+len(fields) == 0 {
		p.UserInfoFields = nil
		return p
	}
	merged := make([]string, 0, len(p.UserInfoFields)+len(fields))
	merged = append(merged, p.UserInfoFields...)
	merged = append(merged, fields...)
	p.UserInfoFields = merged
	return p
}

// Summary describes every configured requirement, independent of any
// candidate. Suitable as a form hint shown before the user types.
func (p Policy) Summary() string {
	required := []string{
		fmt.Sprintf("at least %d characters", p.MinLength),
		fmt.Sprintf("at most %d characters", p.MaxLength),
	}
	if p.RequireUppercase {
		required = append(required, "one uppercase letter")
	}
	if p.RequireLowercase {
		required = append(required, "one lowercase letter")
	}
	if p.RequireNumbers {
		required = append(required, "one number")
	}
	if p.RequireSpecialChars {
		required = append(required, "one special character")
	}

	var forbidden []string
	if p.PreventCommonPasswords {
		forbidden = append(forbidden, "common passwords")
	}
	if p.PreventUserInfo && len(p.UserInfoFields) > 0 {
		forbidden = append(forbidden, "personal information")
	}
	forbidden = append(forbidden, "repeated characters", "sequential characters")

	return fmt.Sprintf("Password must contain %s and cannot contain %s.",
		strings.Join(required, ", "), joinList(forbidden, "or"))
}

// joinList renders items as "a", "a and b" or "a, b and c".
func joinList(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + conj + " " + items[len(items)-1]
}
