package messageformat

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ToNumber converts an argument value to a float64. Integers, floats,
// json.Number and numeric strings are accepted.
func ToNumber(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, n.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, n)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %T is not a number", ErrInvalidValue, v)
}

// maxEpochMillis is the largest distance from the Unix epoch a JS Date can
// hold, 100 million days.
const maxEpochMillis = 8.64e15

// ToTime converts an argument value to a time.Time. Numbers and numeric
// strings are read as milliseconds since the Unix epoch and must lie
// within ±8.64e15; other strings must be RFC 3339 or a date in the form
// 2006-01-02.
func ToTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidValue)
		}
		return t, nil
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidValue)
		}
		return *t, nil
	case string:
		s := strings.TrimSpace(t)
		if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return parsed, nil
		}
		if parsed, err := time.Parse(time.DateOnly, s); err == nil {
			return parsed, nil
		}
		if _, err := ToNumber(s); err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidValue, t)
		}
	}

	ms, err := ToNumber(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %T is not a date", ErrInvalidValue, v)
	}
	if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, fmt.Errorf("%w: %v is out of the date range", ErrInvalidValue, ms)
	}
	return time.UnixMilli(int64(ms)), nil
}

// ToString renders a value for a plain {name} placeholder.
func ToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case error:
		return s.Error()
	}
	return fmt.Sprint(v)
}
