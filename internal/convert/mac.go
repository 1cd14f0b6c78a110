package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultMACDelimiter separates MAC octets unless the caller asks otherwise.
const DefaultMACDelimiter = "-"

var ErrInvalidMAC = errors.New("invalid MAC address")

var macDelimiters = strings.NewReplacer("-", "", ":", "")

// FormatMAC renders the low 48 bits of mac as six lower-case hex octets.
func FormatMAC(mac uint64, delimiter string) string {
	var b strings.Builder
	b.Grow(12 + 5*len(delimiter))
	for shift := 40; shift >= 0; shift -= 8 {
		if shift != 40 {
			b.WriteString(delimiter)
		}
		octet := mac >> shift & 0xff
		if octet < 0x10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatUint(octet, 16))
	}
	return b.String()
}

// ReformatMAC rewrites a MAC address string to use delimiter. The input must
// be either 12 characters (no delimiters) or 17 characters (with delimiters).
func ReformatMAC(mac, delimiter string) (string, error) {
	switch len(mac) {
	case 12:
		if delimiter == "" {
			return mac, nil
		}
		var b strings.Builder
		for i := 0; i < 12; i += 2 {
			if i > 0 {
				b.WriteString(delimiter)
			}
			b.WriteString(mac[i : i+2])
		}
		return b.String(), nil
	case 17:
		if delimiter == "" {
			return macDelimiters.Replace(mac), nil
		}
		if mac[2:3] != delimiter {
			return strings.NewReplacer("-", delimiter, ":", delimiter).Replace(mac), nil
		}
		return mac, nil
	default:
		return "", fmt.Errorf("%w: %q should be either 12 or 17 characters long", ErrInvalidMAC, mac)
	}
}

// MACString formats a MAC address held either as a string or as an unsigned
// integer.
func MACString(v any, delimiter string) (string, error) {
	switch mac := v.(type) {
	case string:
		return ReformatMAC(mac, delimiter)
	case uint64:
		return FormatMAC(mac, delimiter), nil
	case uint:
		return FormatMAC(uint64(mac), delimiter), nil
	case int64:
		if mac < 0 {
			return "", fmt.Errorf("%w: negative value %d", ErrInvalidMAC, mac)
		}
		return FormatMAC(uint64(mac), delimiter), nil
	case int:
		if mac < 0 {
			return "", fmt.Errorf("%w: negative value %d", ErrInvalidMAC, mac)
		}
		return FormatMAC(uint64(mac), delimiter), nil
	default:
		return "", fmt.Errorf("%w: input should be either string or unsigned integer, got %T", ErrInvalidMAC, v)
	}
}

// ParseMAC returns the numeric form of a MAC address written with colons,
// dashes or no delimiters at all.
func ParseMAC(mac string) (uint64, error) {
	digits := macDelimiters.Replace(mac)
	if len(digits) != 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMAC, mac)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMAC, mac)
	}
	return v, nil
}
