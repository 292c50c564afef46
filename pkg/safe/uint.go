// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case int32:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case int64:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case uint:
		return uint64(value), nil
	case uint32:
		return uint64(value), nil
	case uint64:
		return value, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// Sub returns a-b, failing instead of wrapping around when b > a.
func Sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, fmt.Errorf("subtraction %d - %d underflows uint64", a, b)
	}
	return a - b, nil
}

// NumberUint64 converts a JSON number to uint64. Fractions, exponents and
// negative values are rejected.
func NumberUint64(n json.Number) (uint64, error) {
	v, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("number %q is not a non-negative integer: %w", n, err)
	}
	return v, nil
}
