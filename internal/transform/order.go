// Package transform reorders the properties of JSON-like objects.
package transform

import (
	"slices"

	"github.com/samber/lo"
)

// OrderOptions describes a property order. Names in First lead, names in
// Last trail, and everything else keeps its order unless Sort is set.
type OrderOptions struct {
	First []string `yaml:"first,omitempty"`
	Last  []string `yaml:"last,omitempty"`
	Sort  bool     `yaml:"sort,omitempty"`
	// SortDescending only applies when Sort is set.
	SortDescending bool `yaml:"sort_descending,omitempty"`
}

// IsZero reports whether the options leave the order unchanged.
func (o OrderOptions) IsZero() bool {
	return len(o.First) == 0 && len(o.Last) == 0 && !o.Sort
}

// OrderNames arranges names according to opts. A name listed in both First
// and Last goes first; names in the options that do not occur in names are
// ignored, and duplicates collapse to their first occurrence.
func OrderNames(names []string, opts OrderOptions) []string {
	remaining := make(map[string]struct{}, len(names))
	for _, name := range names {
		remaining[name] = struct{}{}
	}

	claim := func(name string, _ int) bool {
		if _, ok := remaining[name]; !ok {
			return false
		}
		delete(remaining, name)
		return true
	}

	head := lo.Filter(opts.First, claim)
	tail := lo.Filter(opts.Last, claim)
	body := lo.Filter(lo.Uniq(names), func(name string, _ int) bool {
		_, ok := remaining[name]
		return ok
	})

	if opts.Sort {
		slices.Sort(body)
		if opts.SortDescending {
			slices.Reverse(body)
		}
	}

	out := make([]string, 0, len(head)+len(body)+len(tail))
	out = append(out, head...)
	out = append(out, body...)
	return append(out, tail...)
}
