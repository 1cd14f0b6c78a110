// Package normalize prunes empty or default members from decoded JSON values
// before they are encoded.
package normalize

import (
	"errors"
	"fmt"

	"github.com/jacoelho/textkit/internal/ndjson"
	"github.com/jacoelho/textkit/internal/predicate"
)

// Mode selects which values are pruned.
type Mode int

const (
	// Keep leaves the value untouched.
	Keep Mode = iota
	// Empty prunes nil, empty strings, empty arrays and empty objects.
	Empty
	// Defaults also prunes zero numbers and false.
	Defaults
)

var ErrUnknownMode = errors.New("unknown normalization mode")

var modeNames = map[string]Mode{
	"keep":     Keep,
	"none":     Keep,
	"empty":    Empty,
	"defaults": Defaults,
}

func (m Mode) String() string {
	switch m {
	case Keep:
		return "keep"
	case Empty:
		return "empty"
	case Defaults:
		return "defaults"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts keep (or none), empty and defaults.
func ParseMode(name string) (Mode, error) {
	mode, ok := modeNames[name]
	if !ok {
		return Keep, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
	return mode, nil
}

// IgnoreEmpty returns a copy of v without object members whose value is
// empty. A member is checked before its own members are pruned, so an
// object that only becomes empty after pruning is kept. Array elements that
// are empty become nil. The result is nil when v itself is empty.
func IgnoreEmpty(v any) any {
	return prune(v, predicate.IsEmptyValue)
}

// IgnoreDefaults is IgnoreEmpty that also drops zero numbers and false.
func IgnoreDefaults(v any) any {
	return prune(v, predicate.IsDefaultValue)
}

// Apply prunes v according to mode.
func Apply(v any, mode Mode) any {
	switch mode {
	case Empty:
		return IgnoreEmpty(v)
	case Defaults:
		return IgnoreDefaults(v)
	default:
		return v
	}
}

// Marshal encodes v as compact JSON after pruning it.
func Marshal(v any, mode Mode) ([]byte, error) {
	switch mode {
	case Keep, Empty, Defaults:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	pruned := Apply(v, mode)
	if pruned == nil && mode != Keep {
		// a pruned root encodes as nothing at all
		return nil, nil
	}
	return ndjson.Marshal(pruned)
}

func prune(v any, drop predicate.Predicate[any]) any {
	if drop(v) {
		return nil
	}
	return walk(v, drop)
}

func walk(v any, drop predicate.Predicate[any]) any {
	switch current := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(current))
		for key, member := range current {
			if drop(member) {
				continue
			}
			out[key] = walk(member, drop)
		}
		return out
	case []any:
		out := make([]any, len(current))
		for i, element := range current {
			if drop(element) {
				continue
			}
			out[i] = walk(element, drop)
		}
		return out
	default:
		return v
	}
}
