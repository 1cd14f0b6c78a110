package ndjson

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/jacoelho/textkit/internal/iterable"
)

// MaxLineSize bounds a single line read by Decode and Lines.
const MaxLineSize = 16 * 1024 * 1024

// Result is one parsed line of an asynchronous stream.
type Result[T any] struct {
	Value T
	// Line is the 1-based position of the entry in the stream.
	Line int
	Err  error
}

// ParseLines decodes every line as a JSON value of type T. A line that fails
// to decode yields the zero value with an error wrapping ErrInvalidLine;
// iteration continues with the next line unless the consumer stops.
func ParseLines[T any](lines iter.Seq[string]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if lines == nil {
			return
		}
		n := 0
		for line := range lines {
			n++
			if !yield(parseLine[T](line, n)) {
				return
			}
		}
	}
}

// ParseLinesAsync decodes lines received from source. The returned channel is
// closed when source is closed or ctx is cancelled.
func ParseLinesAsync[T any](ctx context.Context, source <-chan string) <-chan Result[T] {
	n := 0
	return iterable.MapAsync(ctx, source, func(line string) Result[T] {
		n++
		value, err := parseLine[T](line, n)
		return Result[T]{Value: value, Line: n, Err: err}
	})
}

// Lines yields the non-blank lines of r with surrounding whitespace removed.
// A read failure is yielded once, as the last element.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if !yield(line, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("read lines: %w", err))
		}
	}
}

// Decode reads an NDJSON stream from r, skipping blank lines.
func Decode[T any](r io.Reader) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		n := 0
		for line, err := range Lines(r) {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			n++
			if !yield(parseLine[T](line, n)) {
				return
			}
		}
	}
}

func parseLine[T any](line string, n int) (T, error) {
	var value T
	if err := api.UnmarshalFromString(line, &value); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: line %d: %v", ErrInvalidLine, n, err)
	}
	return value, nil
}
