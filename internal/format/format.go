// Package format renders sizes, counts and durations as short human-readable
// strings.
package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/units"

	"github.com/jacoelho/textkit/internal/convert"
)

var (
	// SIUnits are powers of 1000.
	SIUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
	// IECUnits are powers of 1024.
	IECUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}
	// NumericUnits are powers of 1000 for plain counts.
	NumericUnits = []string{"", "K", "M", "G", "T", "P"}
)

var ErrInvalidSize = errors.New("invalid size")

// Size formats a byte count with SI units (base 1000) or IEC units
// (base 1024): 1023456789 is "1.02 GB" or "976 MiB". Any base other than
// 1024 is treated as 1000.
func Size(bytes float64, base int) string {
	if base == 1024 {
		return SizeWithUnits(bytes, base, IECUnits)
	}
	return SizeWithUnits(bytes, 1000, SIUnits)
}

// SizeWithUnits formats a byte count using custom unit names, one per power
// of base starting at power 0.
func SizeWithUnits(bytes float64, base int, unitNames []string) string {
	if len(unitNames) == 0 {
		return Number(bytes)
	}
	if base <= 1 {
		base = 1000
	}

	value, power := convert.Compact(bytes, len(unitNames)-1, float64(base))
	return Number(value) + " " + unitNames[power]
}

// Compact formats a count in at most a handful of characters: 1200345 is "1.2M".
func Compact(value float64) string {
	compact, power := convert.Compact(value, len(NumericUnits)-1, 1000)
	return Number(compact) + NumericUnits[power]
}

// Seconds renders d as a number of seconds with millisecond precision.
func Seconds(d time.Duration) string {
	return Number(float64(d.Milliseconds()) / 1000)
}

// Number renders v in its shortest decimal form, without exponent.
func Number(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseSize accepts a plain byte count ("1024") or a count with a unit
// suffix: "1.5GB" uses powers of 1000 and "976MiB" powers of 1024.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSize)
	}

	if plain, err := strconv.ParseFloat(s, 64); err == nil {
		if plain < 0 || plain != math.Trunc(plain) {
			return 0, fmt.Errorf("%w: %q is not a whole number of bytes", ErrInvalidSize, s)
		}
		return int64(plain), nil
	}

	parsed, err := units.ParseStrictBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidSize, s, err)
	}
	if parsed < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidSize, s)
	}
	return parsed, nil
}
