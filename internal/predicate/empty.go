package predicate

import (
	"reflect"

	"github.com/jacoelho/textkit/internal/number"
)

// IsNil reports whether v is nil or a nil pointer, map, slice, channel,
// function or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func IsEmptySlice[T any](s []T) bool {
	return len(s) == 0
}

func IsNonEmptySlice[T any](s []T) bool {
	return len(s) > 0
}

// IsEmptyMap also covers sets represented as map[T]struct{}.
func IsEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

func IsNonEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) > 0
}

// IsEmptyValue reports whether v is nil, an empty string, or an empty
// slice, array or map. Zero numbers and false are not empty.
func IsEmptyValue(v any) bool {
	if IsNil(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}

// IsDefaultValue extends IsEmptyValue with numeric zeros and false.
func IsDefaultValue(v any) bool {
	if IsEmptyValue(v) || number.IsZero(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	default:
		return false
	}
}
