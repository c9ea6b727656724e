package utils

import (
	"encoding/json"
	"fmt"
	"time"
)

const _timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Time serialises as an ISO-8601 UTC timestamp with millisecond precision.
type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	formatted := t.UTC().Format(_timeLayout)
	return []byte(`"` + formatted + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	val, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", str, err)
	}
	t.Time = val
	return nil
}
