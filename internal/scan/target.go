package scan

import "unicode/utf8"

// Target reports whether a character is the one being searched for.
type Target func(r rune) bool

// Rune matches a single character.
func Rune(want rune) Target {
	return func(r rune) bool {
		return r == want
	}
}

// Char matches the first character of s. An empty string matches nothing.
func Char(s string) Target {
	if s == "" {
		return never
	}

	want, _ := utf8.DecodeRuneInString(s)
	return Rune(want)
}

// Match wraps an arbitrary predicate. A nil predicate matches nothing.
func Match(fn func(r rune) bool) Target {
	if fn == nil {
		return never
	}
	return fn
}

func never(rune) bool {
	return false
}
