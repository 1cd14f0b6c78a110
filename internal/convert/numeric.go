package convert

import "math"

var factors = [...]float64{1, 10, 100, 1000}

// Round keeps at most digits decimal digits of value. A negative digits
// leaves value untouched. Halves round toward positive infinity.
func Round(value float64, digits int) float64 {
	if digits < 0 {
		return value
	}
	if digits == 0 {
		return roundHalfUp(value)
	}

	intPart := math.Trunc(value)
	fraction := value - intPart
	if fraction == 0 {
		return intPart
	}

	factor := math.Pow(10, float64(digits))
	if digits < len(factors) {
		factor = factors[digits]
	}
	return intPart + roundHalfUp(fraction*factor)/factor
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Compact splits value into a compact mantissa and a power of base, so that
// value ~= compact * base^power. power never exceeds maxPower. The mantissa
// keeps 2 decimals below 100, 1 below base and none above.
func Compact(value float64, maxPower int, base float64) (float64, int) {
	current := math.Abs(value)
	power := 0

	for power < maxPower && current >= base {
		current /= base
		power++
	}

	digits := 0
	switch {
	case current < 100:
		digits = 2
	case current < base:
		digits = 1
	}

	if value < 0 {
		current = -current
	}
	return Round(current, digits), power
}
