package convert

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strconv"

	"github.com/jacoelho/textkit/internal/number"
)

var ErrInvalidIPv4 = errors.New("invalid IPv4 address")

// FormatIPv4 renders the low 32 bits of ip in dotted form, so signed values
// such as -1407844352 format as 172.22.0.0.
func FormatIPv4(ip int64) string {
	v := uint32(ip)
	buf := make([]byte, 0, len("255.255.255.255"))
	for shift := 24; shift >= 0; shift -= 8 {
		if shift != 24 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(v>>shift&0xff), 10)
	}
	return string(buf)
}

// ParseIPv4 returns the numeric form of a dotted IPv4 address.
func ParseIPv4(s string) (uint32, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIPv4, s)
	}
	octets := addr.As4()
	return binary.BigEndian.Uint32(octets[:]), nil
}

// IPv4String converts an address held as a string, an integer or a
// netip.Addr to dotted form. Strings are returned as-is without validation.
func IPv4String(v any) (string, error) {
	switch ip := v.(type) {
	case string:
		return ip, nil
	case netip.Addr:
		if !ip.Is4() {
			return "", fmt.Errorf("%w: %s", ErrInvalidIPv4, ip)
		}
		return ip.String(), nil
	default:
		n, err := number.ToInt64(v)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidIPv4, err)
		}
		return FormatIPv4(n), nil
	}
}

// IPsEqual compares two IPv4 values that may be held as strings or integers.
// nil, "" and 0 are all treated as "no address" and are equal to each other.
func IPsEqual(a, b any) bool {
	if isNoAddress(a) {
		return isNoAddress(b)
	}
	if isNoAddress(b) {
		return false
	}

	sa, aIsString := a.(string)
	sb, bIsString := b.(string)
	if aIsString && bIsString {
		return sa == sb
	}

	left, err := IPv4String(a)
	if err != nil {
		return false
	}
	right, err := IPv4String(b)
	if err != nil {
		return false
	}
	return left == right
}

func isNoAddress(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return number.IsZero(v)
}
