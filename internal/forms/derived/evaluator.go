package derived

import (
	"formbuilder-server/internal/forms/derived/arith"
	"formbuilder-server/internal/forms/domain"
	"formbuilder-server/internal/infra/utils"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"
)

const (
	_arithmeticOperators = "+-*/"
	_ageToken            = "age"
	_concatToken         = "concat"
)

var _dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
}

// Evaluator computes derived field values. It never fails: any problem
// degrades to an empty string.
type Evaluator struct {
	now utils.Clock
}

func NewEvaluator(now utils.Clock) *Evaluator {
	if now == nil {
		now = utils.SystemClock()
	}
	return &Evaluator{now: now}
}

// Evaluate returns the value of field given the current raw input values.
// Parent labels are resolved through fields. values is never modified.
func (e *Evaluator) Evaluate(field domain.Field, fields domain.FieldLookup, values domain.Values) any {
	if !field.IsDerived() || len(field.DerivedConfig.ParentFields) == 0 {
		return ""
	}

	cfg := field.DerivedConfig
	switch {
	case strings.ContainsAny(cfg.Formula, _arithmeticOperators):
		return e.arithmetic(field, fields, values)
	case strings.Contains(strings.ToLower(cfg.Formula), _ageToken) && len(cfg.ParentFields) == 1:
		return e.age(values[cfg.ParentFields[0]])
	case strings.Contains(cfg.Formula, _concatToken):
		return concatenate(cfg.ParentFields, values)
	default:
		return ""
	}
}

// EvaluateAll recomputes every derived field of schema from scratch.
func (e *Evaluator) EvaluateAll(schema domain.FormSchema, values domain.Values) domain.Values {
	result := make(domain.Values)
	for _, field := range schema.Fields {
		if field.IsDerived() && len(field.DerivedConfig.ParentFields) > 0 {
			result[field.ID] = e.Evaluate(field, schema, values)
		}
	}
	return result
}

// arithmetic substitutes every whole-word parent label with the parent's
// value (0 when absent) and evaluates the literal expression that remains.
func (e *Evaluator) arithmetic(field domain.Field, fields domain.FieldLookup, values domain.Values) any {
	expression := field.DerivedConfig.Formula
	for _, parentID := range field.DerivedConfig.ParentFields {
		token := parentID.String()
		if parent, ok := fields.Field(parentID); ok && parent.Label != "" {
			token = parent.Label
		}

		replacement := "0"
		if value := values[parentID]; domain.IsTruthy(value) {
			replacement = domain.FormatValue(value)
		}

		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(token) + `\b`)
		if err != nil {
			return ""
		}
		expression = pattern.ReplaceAllLiteralString(expression, replacement)
	}

	result, err := arith.Eval(expression)
	if err != nil {
		slog.Debug("derived formula not evaluated",
			slog.String("field_id", field.ID.String()),
			slog.String("expression", expression),
			slog.String("error", err.Error()))
		return ""
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return ""
	}

	return result
}

// age counts whole years from the parent date to today, minus one when this
// year's birthday has not happened yet.
func (e *Evaluator) age(value any) any {
	if !domain.IsTruthy(value) {
		return ""
	}

	birth, ok := parseDate(domain.FormatValue(value))
	if !ok {
		return ""
	}

	today := e.now()
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years
}

func concatenate(parents []shareddomain.ID, values domain.Values) string {
	parts := make([]string, len(parents))
	for i, parentID := range parents {
		if value := values[parentID]; domain.IsTruthy(value) {
			parts[i] = domain.FormatValue(value)
		}
	}
	return strings.Join(parts, " ")
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range _dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
