package progress

import (
	"context"
	"iter"
)

// Track counts every element of seq on r once the consumer has handled it.
// The reporter is restarted when iteration begins and reports completion
// when iteration ends, including when the consumer stops early. A nil r
// uses New().
func Track[T any](seq iter.Seq[T], r *Reporter) iter.Seq[T] {
	return func(yield func(T) bool) {
		reporter := r
		if reporter == nil {
			reporter = New()
		}

		reporter.Start()
		defer reporter.StopAndReport()

		if seq == nil {
			return
		}
		for item := range seq {
			if !yield(item) {
				return
			}
			reporter.Entry()
		}
	}
}

// TrackAsync forwards elements of source, counting each one once it has been
// received downstream. Completion is reported when source is closed or ctx
// is cancelled.
func TrackAsync[T any](ctx context.Context, source <-chan T, r *Reporter) <-chan T {
	if r == nil {
		r = New()
	}

	out := make(chan T)
	go func() {
		defer close(out)

		r.Start()
		defer r.StopAndReport()

		if source == nil {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-source:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- item:
				}
				r.Entry()
			}
		}
	}()
	return out
}
