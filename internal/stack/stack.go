// Package stack holds the nesting state of a scan: one entry per open
// group, innermost last.
package stack

import "slices"

type Stack[T any] struct {
	items []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push opens a group.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop closes the innermost group. It reports false when no group is open.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}

	item := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item, true
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// TopDown lists the open groups innermost first. The result is a copy.
func (s *Stack[T]) TopDown() []T {
	out := slices.Clone(s.items)
	slices.Reverse(out)
	return out
}
