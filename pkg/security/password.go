// Package security evaluates candidate passwords against a strength policy.
//
// Evaluation is pure: it performs no I/O, keeps no state between calls and
// never panics, so it can be called from any goroutine. Hashing accepted
// passwords is left to the caller.
package security

import (
	"reflect"
	"strings"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	specialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`"

	// maxRepeat is the shortest run of one character that is rejected.
	maxRepeat = 4
)

// sequences are the ascending three-character runs that are rejected.
// Descending and wrapping runs ("cba", "901") are not in the list.
var sequences = []string{
	"012", "123", "234", "345", "456", "567", "678", "789", "890",
	"abc", "bcd", "cde", "def", "efg", "fgh", "ghi", "hij", "ijk", "jkl",
	"klm", "lmn", "mno", "nop", "opq", "pqr", "qrs", "rst", "stu", "tuv",
	"uvw", "vwx", "wxy", "xyz",
}

// Evaluate checks candidate against every rule of policy and reports all of
// the rules it breaks. A nil dict means DefaultDictionary.
func Evaluate(candidate string, policy Policy, dict *Dictionary) Result {
	if dict == nil {
		dict = DefaultDictionary()
	}

	var violations []Violation
	fail := func(rule Rule) {
		violations = append(violations, newViolation(rule, policy))
	}

	n := utf8.RuneCountInString(candidate)
	if n < policy.MinLength {
		fail(RuleMinLength)
	}
	if n > policy.MaxLength {
		fail(RuleMaxLength)
	}

	var upper, lower, digit, special bool
	for _, r := range candidate {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case r < utf8.RuneSelf && strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	if policy.RequireUppercase && !upper {
		fail(RuleUppercase)
	}
	if policy.RequireLowercase && !lower {
		fail(RuleLowercase)
	}
	if policy.RequireNumbers && !digit {
		fail(RuleNumber)
	}
	if policy.RequireSpecialChars && !special {
		fail(RuleSpecial)
	}

	if policy.PreventCommonPasswords && IsCommonPassword(candidate, dict) {
		fail(RuleCommonPassword)
	}
	if policy.PreventUserInfo && IsUserInfo(candidate, policy.UserInfoFields) {
		fail(RuleUserInfo)
	}
	if hasRepeatedRun(candidate, maxRepeat) {
		fail(RuleRepeated)
	}
	if hasSequence(candidate) {
		fail(RuleSequential)
	}
	if policy.MinEntropyBits > 0 && passwordvalidator.GetEntropy(candidate) < policy.MinEntropyBits {
		fail(RuleEntropy)
	}

	return newResult(violations)
}

// EvaluateValue is Evaluate for values of unknown type, as handed over by
// decoders and validation frameworks. Strings, named string types and
// non-nil pointers to them are evaluated; anything else fails with RuleType.
func EvaluateValue(candidate interface{}, policy Policy, dict *Dictionary) Result {
	if s, ok := candidate.(string); ok {
		return Evaluate(s, policy, dict)
	}

	v := reflect.ValueOf(candidate)
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return typeFailure(policy)
		}
		v = v.Elem()
	}
	if !v.IsValid() || v.Kind() != reflect.String {
		return typeFailure(policy)
	}
	return Evaluate(v.String(), policy, dict)
}

// IsCommonPassword reports whether candidate contains any dictionary entry,
// ignoring case. A nil dict means DefaultDictionary.
func IsCommonPassword(candidate string, dict *Dictionary) bool {
	if dict == nil {
		dict = DefaultDictionary()
	}
	_, found := dict.MatchIn(candidate)
	return found
}

// IsUserInfo reports whether candidate contains any non-empty field,
// ignoring case.
func IsUserInfo(candidate string, fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	lower := strings.ToLower(candidate)
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

func hasRepeatedRun(s string, limit int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= limit {
			return true
		}
	}
	return false
}

func hasSequence(s string) bool {
	lower := strings.ToLower(s)
	for _, seq := range sequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}
	return false
}

func typeFailure(policy Policy) Result {
	return newResult([]Violation{newViolation(RuleType, policy)})
}
