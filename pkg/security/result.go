package security

import (
	"fmt"

	apperrors "github.com/qamarshahid/techprocessing/pkg/errors"
)

// Rule identifies a single password requirement.
type Rule string

const (
	RuleType           Rule = "type"
	RuleMinLength      Rule = "min_length"
	RuleMaxLength      Rule = "max_length"
	RuleUppercase      Rule = "uppercase"
	RuleLowercase      Rule = "lowercase"
	RuleNumber         Rule = "number"
	RuleSpecial        Rule = "special"
	RuleCommonPassword Rule = "common_password"
	RuleUserInfo       Rule = "user_info"
	RuleRepeated       Rule = "repeated"
	RuleSequential     Rule = "sequential"
	RuleEntropy        Rule = "entropy"
)

// Violation is a broken rule together with its sentence fragment.
type Violation struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// Result is the outcome of an evaluation. Reason is empty when Valid.
type Result struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
	Reason     string      `json:"reason,omitempty"`
}

// Has reports whether rule is among the violations.
func (r Result) Has(rule Rule) bool {
	for _, v := range r.Violations {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

// Rules lists the violated rules in evaluation order.
func (r Result) Rules() []Rule {
	rules := make([]Rule, 0, len(r.Violations))
	for _, v := range r.Violations {
		rules = append(rules, v.Rule)
	}
	return rules
}

// Err returns nil for a valid result and a weak-password AppError otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return apperrors.WeakPassword(r.Reason, r.Violations)
}

func newResult(violations []Violation) Result {
	if len(violations) == 0 {
		return Result{Valid: true}
	}
	msgs := make([]string, len(violations))
	for i, v := range violations {
		msgs[i] = v.Message
	}
	return Result{
		Valid:      false,
		Violations: violations,
		Reason:     "Password must " + joinList(msgs, "and") + ".",
	}
}

func newViolation(rule Rule, p Policy) Violation {
	var msg string
	switch rule {
	case RuleType:
		msg = "be a string"
	case RuleMinLength:
		msg = fmt.Sprintf("contain at least %d characters", p.MinLength)
	case RuleMaxLength:
		msg = fmt.Sprintf("contain at most %d characters", p.MaxLength)
	case RuleUppercase:
		msg = "contain at least one uppercase letter"
	case RuleLowercase:
		msg = "contain at least one lowercase letter"
	case RuleNumber:
		msg = "contain at least one number"
	case RuleSpecial:
		msg = "contain at least one special character"
	case RuleCommonPassword:
		msg = "not contain common passwords"
	case RuleUserInfo:
		msg = "not contain personal information"
	case RuleRepeated:
		msg = fmt.Sprintf("not repeat a character %d or more times in a row", maxRepeat)
	case RuleSequential:
		msg = "not contain sequential characters"
	case RuleEntropy:
		msg = fmt.Sprintf("be less predictable (at least %g bits of entropy)", p.MinEntropyBits)
	default:
		msg = "satisfy rule " + string(rule)
	}
	return Violation{Rule: rule, Message: msg}
}
