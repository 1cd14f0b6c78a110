// Package cli implements the textkit commands. Each action reads its input
// from the arguments or a reader and writes its result to a writer, so the
// command wiring in cmd/textkit stays thin.
package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jacoelho/textkit/internal/exit"
	"github.com/jacoelho/textkit/internal/scan"
)

// TargetFor matches any rune of chars. A single rune is matched exactly.
func TargetFor(chars string) (scan.Target, error) {
	switch utf8.RuneCountInString(chars) {
	case 0:
		return nil, exit.Usagef("target must not be empty")
	case 1:
		r, _ := utf8.DecodeRuneInString(chars)
		return scan.Rune(r), nil
	default:
		return scan.Match(func(r rune) bool {
			return strings.ContainsRune(chars, r)
		}), nil
	}
}

// Scan writes the offset of the first top-level match of target in text.
func Scan(w io.Writer, text string, start int, target scan.Target, lenient bool) error {
	if start < 0 || start > len(text) {
		return exit.Usagef("start %d outside text of length %d", start, len(text))
	}

	var offset int
	if lenient {
		offset = scan.SkipPairsUntilLenient(text, start, target)
	} else {
		var err error
		offset, err = scan.SkipPairsUntil(text, start, target)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, offset)
	return err
}

// Closing writes the offset of the bracket closing the one at open.
func Closing(w io.Writer, text string, open int) error {
	end, err := scan.FindClosing(text, open)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, end)
	return err
}

// Split writes every top-level part of text on its own line.
func Split(w io.Writer, text, sep string, lenient bool) error {
	if utf8.RuneCountInString(sep) != 1 {
		return exit.Usagef("separator must be a single character, got %q", sep)
	}
	r, _ := utf8.DecodeRuneInString(sep)

	var parts []string
	if lenient {
		parts = scan.SplitTopLevelLenient(text, r)
	} else {
		var err error
		parts, err = scan.SplitTopLevel(text, r)
		if err != nil {
			return err
		}
	}

	for _, part := range parts {
		if _, err := fmt.Fprintln(w, part); err != nil {
			return err
		}
	}
	return nil
}
