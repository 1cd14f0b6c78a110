// Package scan locates delimiters in structured text while skipping balanced
// groups of parentheses, square brackets and braces, and quoted strings.
//
// Offsets are byte offsets into the input string. A result equal to
// len(text) means the target was not found before the text ended.
package scan

import (
	"unicode/utf8"

	"github.com/jacoelho/textkit/internal/stack"
)

// SkipPairsUntil returns the offset of the first character at or after start
// that satisfies target while no bracket group is open. Quoted strings are
// skipped without inspecting their contents.
//
// A closer that does not match the innermost pending opener fails with a
// *MismatchError; groups still open at the end of text fail with an
// *UnclosedGroupsError. An unterminated quote is not an error: the result is
// len(text).
func SkipPairsUntil(text string, start int, target Target) (int, error) {
	return skipPairs(text, start, target, true)
}

// SkipPairsUntilLenient behaves like SkipPairsUntil but resolves mismatched
// and unclosed groups to len(text) instead of failing.
func SkipPairsUntilLenient(text string, start int, target Target) int {
	end, _ := skipPairs(text, start, target, false)
	return end
}

func skipPairs(text string, start int, target Target, strict bool) (int, error) {
	if target == nil {
		target = never
	}
	start = max(start, 0)

	pending := stack.New[Kind]()

	for i := start; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if pending.IsEmpty() && target(r) {
			return i, nil
		}

		if kind, ok := openedBy(r); ok {
			pending.Push(kind)
			i += size
			continue
		}

		if isClosing(r) {
			expected, ok := pending.Pop()
			if !ok || expected.Close() != r {
				if !strict {
					return len(text), nil
				}
				mismatch := &MismatchError{Offset: i, Actual: r}
				if ok {
					mismatch.Expected = expected.Close()
					mismatch.HasExpected = true
				}
				return 0, mismatch
			}
			i += size
			continue
		}

		if isQuote(r) {
			closing := SkipQuoted(text, i+size, r)
			if closing == len(text) {
				return closing, nil
			}
			// quote characters are single bytes
			i = closing + 1
			continue
		}

		i += size
	}

	if strict && !pending.IsEmpty() {
		kinds := pending.TopDown()
		closers := make([]rune, len(kinds))
		for j, kind := range kinds {
			closers[j] = kind.Close()
		}
		return 0, &UnclosedGroupsError{Pending: closers}
	}

	return len(text), nil
}

// SkipQuoted returns the offset of the next unescaped quote at or after start,
// or len(text) when the quoted string is not terminated. A backslash escapes
// the character that follows it.
func SkipQuoted(text string, start int, quote rune) int {
	for i := max(start, 0); i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == quote {
			return i
		}
		i += size
		if r == '\\' && i < len(text) {
			_, escaped := utf8.DecodeRuneInString(text[i:])
			i += escaped
		}
	}
	return len(text)
}
