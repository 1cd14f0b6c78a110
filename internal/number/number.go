package number

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var ErrNotInteger = errors.New("value is not an integer")

// ToFloat64 converts supported numeric values to float64.
func ToFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case int:
		return float64(current), true
	case int8:
		return float64(current), true
	case int16:
		return float64(current), true
	case int32:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint:
		return float64(current), true
	case uint8:
		return float64(current), true
	case uint16:
		return float64(current), true
	case uint32:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float32:
		return float64(current), true
	case float64:
		return current, true
	case json.Number:
		parsed, err := current.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// ToInt64 converts integer-typed values into int64. Floats are accepted only
// when they hold a whole number, which is how decoded JSON carries integers.
func ToInt64(value any) (int64, error) {
	switch current := value.(type) {
	case int:
		return int64(current), nil
	case int8:
		return int64(current), nil
	case int16:
		return int64(current), nil
	case int32:
		return int64(current), nil
	case int64:
		return current, nil
	case uint:
		return fromUint64(uint64(current))
	case uint8:
		return int64(current), nil
	case uint16:
		return int64(current), nil
	case uint32:
		return int64(current), nil
	case uint64:
		return fromUint64(current)
	case float32:
		return fromFloat64(float64(current))
	case float64:
		return fromFloat64(current)
	case json.Number:
		parsed, err := current.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrNotInteger, current)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotInteger, value)
	}
}

func fromUint64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d overflows int64", ErrNotInteger, v)
	}
	return int64(v), nil
}

func fromFloat64(v float64) (int64, error) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, v)
	}
	return int64(v), nil
}

// IsZero reports whether value is a numeric zero.
func IsZero(value any) bool {
	f, ok := ToFloat64(value)
	return ok && f == 0
}
