package validation

import (
	"formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/infra/utils"
	"unicode/utf8"
)

const _minPasswordLength = 8

// Outcome is the result of checking one value against a field's rules.
type Outcome struct {
	Valid   bool
	Message string
}

func Valid() Outcome {
	return Outcome{Valid: true}
}

func Invalid(message string) Outcome {
	return Outcome{Valid: false, Message: message}
}

// Validate runs the field rules in order and stops at the first failure.
// Derived fields are computed, never validated.
func Validate(field domain.Field, value any) Outcome {
	if field.IsDerived() {
		return Valid()
	}

	for _, rule := range field.ValidationRules {
		if !passes(rule, value) {
			return Invalid(rule.Message)
		}
	}

	return Valid()
}

func passes(rule domain.ValidationRule, value any) bool {
	switch rule.Type {
	case domain.RuleTypeRequired:
		return !domain.IsBlank(value)
	case domain.RuleTypeMinLength:
		return checkLength(rule, value, func(length, limit float64) bool { return length >= limit })
	case domain.RuleTypeMaxLength:
		return checkLength(rule, value, func(length, limit float64) bool { return length <= limit })
	case domain.RuleTypeEmail:
		if !domain.IsTruthy(value) {
			return true
		}
		return utils.IsValidEmail(domain.FormatValue(value))
	case domain.RuleTypePassword:
		if !domain.IsTruthy(value) {
			return true
		}
		return isStrongPassword(domain.FormatValue(value))
	default:
		return true
	}
}

// checkLength only applies to strings; a rule whose limit is not numeric is
// skipped.
func checkLength(rule domain.ValidationRule, value any, ok func(length, limit float64) bool) bool {
	s, isString := value.(string)
	if !isString {
		return true
	}
	limit, isNumber := domain.ToNumber(rule.Value)
	if !isNumber {
		return true
	}
	return ok(float64(utf8.RuneCountInString(s)), limit)
}

func isStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < _minPasswordLength {
		return false
	}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
