package docstore

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"logiflow/internal/core/ports"
	"logiflow/internal/pkg/errs"
)

// timeValuer matches backend date types that convert to time.Time (e.g. the
// MongoDB driver's primitive.DateTime).
type timeValuer interface {
	Time() time.Time
}

// String reads a string field. ok is false when the key is absent or null.
func String(doc ports.Document, key string) (value string, ok bool, err error) {
	raw, present := doc[key]
	if !present || raw == nil {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, fmt.Errorf("field %q: expected string, got %T", key, raw)
	}
	return s, true, nil
}

// OptionalString reads a string field into a pointer, nil when absent or null.
func OptionalString(doc ports.Document, key string) (*string, error) {
	s, ok, err := String(doc, key)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

// Float reads a numeric field of any numeric kind as float64.
func Float(doc ports.Document, key string) (value float64, ok bool, err error) {
	raw, present := doc[key]
	if !present || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		f, convErr := v.Float64()
		if convErr != nil {
			return 0, false, fmt.Errorf("field %q: %w", key, convErr)
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("field %q: expected number, got %T", key, raw)
	}
}

// Int reads a numeric field that must hold a whole number.
func Int(doc ports.Document, key string) (value int, ok bool, err error) {
	f, ok, err := Float(doc, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	if f != math.Trunc(f) {
		return 0, false, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%v is not an integer", f))
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false, errs.NewValueIsOutOfRangeError(key, f, math.MinInt32, math.MaxInt32)
	}
	return int(f), true, nil
}

// Time reads a timestamp stored as a native date, a backend date type or an
// RFC 3339 string. ok is false when the key is absent, null or not a parsable
// timestamp; such values are treated as unknown rather than as errors.
func Time(doc ports.Document, key string) (value time.Time, ok bool) {
	switch v := doc[key].(type) {
	case time.Time:
		return v.UTC(), true
	case timeValuer:
		return v.Time().UTC(), true
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	default:
		return time.Time{}, false
	}
}
