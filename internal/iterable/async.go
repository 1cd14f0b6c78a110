package iterable

import (
	"context"
)

// FromSlice emits items in order, then closes the returned channel.
func FromSlice[T any](ctx context.Context, items []T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for _, item := range items {
			if !send(ctx, out, item) {
				return
			}
		}
	}()
	return out
}

// MapAsync applies transform to every element received from source.
func MapAsync[T, U any](ctx context.Context, source <-chan T, transform func(T) U) <-chan U {
	out := make(chan U)
	go func() {
		defer close(out)
		receive(ctx, source, func(item T) bool {
			return send(ctx, out, transform(item))
		})
	}()
	return out
}

// FilterAsync forwards the elements for which predicate returns true.
func FilterAsync[T any](ctx context.Context, source <-chan T, predicate func(T) bool) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		receive(ctx, source, func(item T) bool {
			if predicate != nil && !predicate(item) {
				return true
			}
			return send(ctx, out, item)
		})
	}()
	return out
}

// TakeAsync forwards at most count elements. It stops receiving from source
// once the count is reached.
func TakeAsync[T any](ctx context.Context, source <-chan T, count int) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		if count <= 0 {
			return
		}
		remaining := count
		receive(ctx, source, func(item T) bool {
			if !send(ctx, out, item) {
				return false
			}
			remaining--
			return remaining > 0
		})
	}()
	return out
}

// TakeWhileAsync forwards elements until condition first returns false.
func TakeWhileAsync[T any](ctx context.Context, source <-chan T, condition func(T) bool) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		receive(ctx, source, func(item T) bool {
			if condition != nil && !condition(item) {
				return false
			}
			return send(ctx, out, item)
		})
	}()
	return out
}

// TakeUntilAsync forwards elements until condition first returns true.
func TakeUntilAsync[T any](ctx context.Context, source <-chan T, condition func(T) bool) <-chan T {
	return TakeWhileAsync(ctx, source, negate(condition))
}

// SkipAsync drops the first count elements.
func SkipAsync[T any](ctx context.Context, source <-chan T, count int) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		remaining := count
		receive(ctx, source, func(item T) bool {
			if remaining > 0 {
				remaining--
				return true
			}
			return send(ctx, out, item)
		})
	}()
	return out
}

// SkipWhileAsync drops elements while condition returns true.
func SkipWhileAsync[T any](ctx context.Context, source <-chan T, condition func(T) bool) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		skipping := condition != nil
		receive(ctx, source, func(item T) bool {
			if skipping {
				if condition(item) {
					return true
				}
				skipping = false
			}
			return send(ctx, out, item)
		})
	}()
	return out
}

// SkipUntilAsync drops elements until condition first returns true.
func SkipUntilAsync[T any](ctx context.Context, source <-chan T, condition func(T) bool) <-chan T {
	return SkipWhileAsync(ctx, source, negate(condition))
}

// CollectAsync drains source into a slice. It returns the context error if
// ctx is cancelled before source is closed.
func CollectAsync[T any](ctx context.Context, source <-chan T) ([]T, error) {
	var out []T
	if source == nil {
		return out, nil
	}
	for {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case item, ok := <-source:
			if !ok {
				return out, nil
			}
			out = append(out, item)
		}
	}
}

// receive calls fn for each element of source until fn returns false, source
// is closed or ctx is done.
func receive[T any](ctx context.Context, source <-chan T, fn func(T) bool) {
	if source == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-source:
			if !ok || !fn(item) {
				return
			}
		}
	}
}

func send[T any](ctx context.Context, out chan<- T, item T) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- item:
		return true
	}
}
