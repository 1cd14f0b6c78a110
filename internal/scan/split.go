package scan

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// SplitTopLevel splits text at every occurrence of sep that is neither inside
// a bracket group nor inside a quoted string. Like strings.Split, it returns
// one more part than there are separators.
func SplitTopLevel(text string, sep rune) ([]string, error) {
	return split(text, sep, true)
}

// SplitTopLevelLenient is SplitTopLevel without structural errors: a
// mismatched or unclosed group extends the current part to the end of text.
func SplitTopLevelLenient(text string, sep rune) []string {
	parts, _ := split(text, sep, false)
	return parts
}

func split(text string, sep rune, strict bool) ([]string, error) {
	var parts []string
	target := Rune(sep)
	width := utf8.RuneLen(sep)
	if width < 0 {
		width = 1
	}

	start := 0
	for {
		end, err := skipPairs(text, start, target, strict)
		if err != nil {
			return nil, err
		}

		parts = append(parts, text[start:end])
		if end >= len(text) {
			return parts, nil
		}
		start = end + width
	}
}

// FindClosing returns the offset of the closer matching the opening bracket
// at offset open.
func FindClosing(text string, open int) (int, error) {
	if open < 0 || open >= len(text) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, open, len(text))
	}

	r, size := utf8.DecodeRuneInString(text[open:])
	kind, ok := openedBy(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q at offset %d", ErrNotOpening, r, open)
	}

	end, err := SkipPairsUntil(text, open+size, Rune(kind.Close()))
	if err != nil {
		// the scan starts inside the group, so a closer at its depth 0
		// was really expected to close kind
		var mismatch *MismatchError
		if errors.As(err, &mismatch) && !mismatch.HasExpected {
			mismatch.Expected = kind.Close()
			mismatch.HasExpected = true
		}
		return 0, err
	}
	if end == len(text) {
		return 0, &UnclosedGroupsError{Pending: []rune{kind.Close()}}
	}

	return end, nil
}
