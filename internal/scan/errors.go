package scan

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMismatch is matched by every *MismatchError.
	ErrMismatch = errors.New("mismatched closing symbol")
	// ErrUnclosedGroups is matched by every *UnclosedGroupsError.
	ErrUnclosedGroups = errors.New("unclosed groups")
	// ErrNotOpening is returned by FindClosing when the offset does not hold
	// an opening bracket.
	ErrNotOpening = errors.New("not an opening bracket")
	// ErrOutOfRange is returned by FindClosing for an offset outside the text.
	ErrOutOfRange = errors.New("offset out of range")
)

// MismatchError reports a closing symbol that does not match the innermost
// pending opener, or that appears with no opener pending at all.
type MismatchError struct {
	Offset   int
	Actual   rune
	Expected rune
	// HasExpected is false when the closer was found at depth 0.
	HasExpected bool
}

func (e *MismatchError) Error() string {
	expected := "(none)"
	if e.HasExpected {
		expected = string(e.Expected)
	}
	return fmt.Sprintf("%s: unexpected '%c' at offset %d, expected '%s'", ErrMismatch, e.Actual, e.Offset, expected)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// UnclosedGroupsError reports openers still pending at the end of the text.
type UnclosedGroupsError struct {
	// Pending holds the expected closers, innermost first.
	Pending []rune
}

func (e *UnclosedGroupsError) Error() string {
	quoted := make([]string, len(e.Pending))
	for i, r := range e.Pending {
		quoted[i] = "'" + string(r) + "'"
	}
	return fmt.Sprintf("%s: %d pending: %s", ErrUnclosedGroups, len(e.Pending), strings.Join(quoted, ","))
}

func (e *UnclosedGroupsError) Is(target error) bool {
	return target == ErrUnclosedGroups
}
