package cli

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/textkit/internal/ndjson"
	"github.com/jacoelho/textkit/internal/normalize"
	"github.com/jacoelho/textkit/internal/progress"
	"github.com/jacoelho/textkit/internal/ratelimit"
)

type NDJSONOptions struct {
	// Path selects nodes from every entry; each match becomes an output line.
	Path  string
	Prune normalize.Mode
	// SkipInvalid logs undecodable lines instead of failing on the first.
	SkipInvalid bool
	// RateLimit caps written lines per second; 0 is unlimited.
	RateLimit      float64
	Progress       bool
	ProgressPeriod time.Duration
}

// NDJSON streams entries from r to w. Reading, decoding and writing run as
// separate stages; the first failure stops all of them.
func NDJSON(ctx context.Context, r io.Reader, w io.Writer, opts NDJSONOptions, logger log.Logger) error {
	var selector *ndjson.Selector
	if opts.Path != "" {
		var err error
		if selector, err = ndjson.NewSelector(opts.Path); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	lines := make(chan string)
	g.Go(func() error {
		defer close(lines)
		for line, err := range ndjson.Lines(r) {
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case lines <- line:
			}
		}
		return nil
	})

	results := ndjson.ParseLinesAsync[any](ctx, lines)
	if opts.Progress {
		reporter := progress.New(
			progress.WithLogger(log.With(logger, "stage", "ndjson")),
			progress.WithPeriod(opts.ProgressPeriod),
		)
		results = progress.TrackAsync(ctx, results, reporter)
	}

	limiter := ratelimit.New(opts.RateLimit)

	g.Go(func() error {
		out := bufio.NewWriter(w)
		written, skipped := 0, 0

		for result := range results {
			if result.Err != nil {
				if !opts.SkipInvalid {
					return result.Err
				}
				skipped++
				level.Warn(logger).Log("msg", "skipping invalid line", "line", result.Line, "err", result.Err)
				continue
			}

			values := []any{result.Value}
			if selector != nil {
				values = selector.Select(result.Value)
			}

			for _, value := range values {
				value = normalize.Apply(value, opts.Prune)
				if value == nil && opts.Prune != normalize.Keep {
					continue
				}
				if err := limiter.Wait(ctx); err != nil {
					return err
				}
				line, err := ndjson.ToLine(value)
				if err != nil {
					return err
				}
				if _, err := out.WriteString(line); err != nil {
					return err
				}
				written++
			}
		}

		level.Debug(logger).Log("msg", "ndjson done", "written", written, "skipped", skipped)
		return out.Flush()
	})

	return g.Wait()
}
