// Package predicate composes boolean conditions and tests values for
// emptiness.
package predicate

import (
	"github.com/samber/lo"
)

// Predicate reports whether value satisfies a condition.
type Predicate[T any] func(value T) bool

// AlwaysTrue accepts every value.
func AlwaysTrue[T any](T) bool {
	return true
}

// And is satisfied when every non-nil predicate is. Evaluation stops at the
// first failing predicate. Without predicates it accepts everything, and a
// single predicate is returned unchanged.
func And[T any](predicates ...Predicate[T]) Predicate[T] {
	conditions := compact(predicates)
	switch len(conditions) {
	case 0:
		return AlwaysTrue[T]
	case 1:
		return conditions[0]
	}

	return func(value T) bool {
		return lo.EveryBy(conditions, func(test Predicate[T]) bool {
			return test(value)
		})
	}
}

// Or is satisfied when any non-nil predicate is. Evaluation stops at the
// first passing predicate. Without predicates it accepts everything, and a
// single predicate is returned unchanged.
func Or[T any](predicates ...Predicate[T]) Predicate[T] {
	conditions := compact(predicates)
	switch len(conditions) {
	case 0:
		return AlwaysTrue[T]
	case 1:
		return conditions[0]
	}

	return func(value T) bool {
		return lo.SomeBy(conditions, func(test Predicate[T]) bool {
			return test(value)
		})
	}
}

func Not[T any](predicate Predicate[T]) Predicate[T] {
	return func(value T) bool {
		return !predicate(value)
	}
}

func compact[T any](predicates []Predicate[T]) []Predicate[T] {
	return lo.Filter(predicates, func(p Predicate[T], _ int) bool {
		return p != nil
	})
}
