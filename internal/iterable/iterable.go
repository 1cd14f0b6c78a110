package iterable

import (
	"iter"

	"github.com/jacoelho/textkit/internal/predicate"
)

// Map applies transform to every element of source.
func Map[T, U any](source iter.Seq[T], transform func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		if source == nil {
			return
		}
		for item := range source {
			if !yield(transform(item)) {
				return
			}
		}
	}
}

// Filter keeps the elements for which predicate returns true.
func Filter[T any](source iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		for item := range source {
			if predicate != nil && !predicate(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Take yields at most count elements.
func Take[T any](source iter.Seq[T], count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil || count <= 0 {
			return
		}
		remaining := count
		for item := range source {
			if !yield(item) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

// TakeWhile yields elements until condition first returns false.
func TakeWhile[T any](source iter.Seq[T], condition func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		for item := range source {
			if condition != nil && !condition(item) {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// TakeUntil yields elements until condition first returns true.
func TakeUntil[T any](source iter.Seq[T], condition func(T) bool) iter.Seq[T] {
	return TakeWhile(source, negate(condition))
}

// Skip drops the first count elements.
func Skip[T any](source iter.Seq[T], count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		remaining := count
		for item := range source {
			if remaining > 0 {
				remaining--
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// SkipWhile drops elements while condition returns true, then yields the rest.
func SkipWhile[T any](source iter.Seq[T], condition func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		skipping := condition != nil
		for item := range source {
			if skipping {
				if condition(item) {
					continue
				}
				skipping = false
			}
			if !yield(item) {
				return
			}
		}
	}
}

// SkipUntil drops elements until condition first returns true, then yields
// the rest, starting with that element.
func SkipUntil[T any](source iter.Seq[T], condition func(T) bool) iter.Seq[T] {
	return SkipWhile(source, negate(condition))
}

// Collect appends every element of source to a new slice.
func Collect[T any](source iter.Seq[T]) []T {
	var out []T
	if source == nil {
		return out
	}
	for item := range source {
		out = append(out, item)
	}
	return out
}

func negate[T any](condition func(T) bool) func(T) bool {
	if condition == nil {
		return nil
	}
	return predicate.Not[T](condition)
}
