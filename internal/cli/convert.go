package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jacoelho/textkit/internal/convert"
	"github.com/jacoelho/textkit/internal/exit"
	"github.com/jacoelho/textkit/internal/format"
)

// Size writes every value as a human readable size. Values may carry a unit
// suffix, as in "1.5GiB".
func Size(w io.Writer, values []string, base int) error {
	return eachValue(w, values, func(value string) (string, error) {
		bytes, err := format.ParseSize(value)
		if err != nil {
			return "", err
		}
		return format.Size(float64(bytes), base), nil
	})
}

// Compact writes every number with a k, M, G... suffix.
func Compact(w io.Writer, values []string) error {
	return eachValue(w, values, func(value string) (string, error) {
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", fmt.Errorf("parse number %q: %w", value, err)
		}
		return format.Compact(n), nil
	})
}

// IP converts between dotted IPv4 notation and the numeric form, in
// whichever direction the value needs.
func IP(w io.Writer, values []string) error {
	return eachValue(w, values, func(value string) (string, error) {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return convert.FormatIPv4(n), nil
		}
		n, err := convert.ParseIPv4(value)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(n), 10), nil
	})
}

// MAC rewrites every MAC address with delimiter. Decimal integers are
// treated as the numeric form of an address, except for twelve digit values
// which read as undelimited hex.
func MAC(w io.Writer, values []string, delimiter string) error {
	return eachValue(w, values, func(value string) (string, error) {
		if len(value) == 12 {
			return convert.ReformatMAC(value, delimiter)
		}
		if n, err := strconv.ParseUint(value, 10, 64); err == nil {
			return convert.FormatMAC(n, delimiter), nil
		}
		return convert.ReformatMAC(value, delimiter)
	})
}

func eachValue(w io.Writer, values []string, fn func(string) (string, error)) error {
	if len(values) == 0 {
		return exit.Usagef("at least one value is required, as arguments or stdin lines")
	}

	for _, value := range values {
		out, err := fn(value)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}
