package domain

import (
	"encoding/json"
	"fmt"
	shareddomain "formbuilder-server/internal/shared_kernel/domain"
	"math"
	"strconv"
	"strings"
)

// Values holds raw field input keyed by field id. Values decoded from JSON
// are string, float64, bool or nil.
type Values map[shareddomain.ID]any

// Clone returns a shallow copy so callers can hand out values without
// exposing the session's own map.
func (v Values) Clone() Values {
	result := make(Values, len(v))
	for id, value := range v {
		result[id] = value
	}
	return result
}

// IsTruthy follows form-input semantics: nil, false, zero, NaN and the empty
// string count as "no value".
func IsTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case int:
		return v != 0
	case int64:
		return v != 0
	case int32:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	default:
		return true
	}
}

// IsBlank reports a missing value, or a string that is only whitespace.
func IsBlank(value any) bool {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return !IsTruthy(value)
}

// FormatValue renders a value the way it is shown to the user and
// substituted into formulas.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// ToNumber converts a JSON number or numeric string.
func ToNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
