// Package progress counts processed entries and periodically reports the
// elapsed time, the count and the processing rate.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/jacoelho/textkit/internal/clock"
	"github.com/jacoelho/textkit/internal/format"
	"github.com/jacoelho/textkit/internal/ratelimit"
)

// DefaultPeriod is the minimum time between two periodic reports.
const DefaultPeriod = time.Second

// LogFunc receives every report. Rate is in whole entries per second.
type LogFunc func(duration time.Duration, count, rate int64, completed bool)

type Option func(*Reporter)

// WithPeriod sets the minimum time between periodic reports. A non-positive
// period disables them; explicit reports still go through.
func WithPeriod(period time.Duration) Option {
	return func(r *Reporter) {
		r.period = period
	}
}

// WithLogFunc sends reports to fn. A nil fn keeps the default.
func WithLogFunc(fn LogFunc) Option {
	return func(r *Reporter) {
		if fn != nil {
			r.log = fn
		}
	}
}

// WithLogger sends reports to logger as structured records tagged with the
// reporter ID.
func WithLogger(logger log.Logger) Option {
	return func(r *Reporter) {
		r.log = Logger(log.With(logger, "reporter", r.id.String()))
	}
}

// Reporter is safe for concurrent use. The log function is called without
// holding the reporter lock.
type Reporter struct {
	id     uuid.UUID
	period time.Duration
	log    LogFunc

	mu       sync.Mutex
	throttle *ratelimit.Throttle
	start    time.Time
	count    int64
	duration time.Duration
}

// New returns a reporter that has already started. Without options it
// reports to stdout at most once per DefaultPeriod.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		id:     uuid.New(),
		period: DefaultPeriod,
		log:    Stdout(os.Stdout),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.start = clock.Now()
	r.throttle = ratelimit.NewThrottle(r.period, r.start)
	return r
}

// Start resets the count and the start time.
func (r *Reporter) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.start = clock.Now()
	r.count = 0
	r.duration = 0
	r.throttle.Reset(r.start)
}

// Entry counts one processed entry and reports if a period has passed since
// the last report.
func (r *Reporter) Entry() {
	r.mu.Lock()
	r.count++
	now := clock.Now()
	if !r.throttle.AllowAt(now) {
		r.mu.Unlock()
		return
	}
	r.duration = now.Sub(r.start)
	duration, count := r.duration, r.count
	r.mu.Unlock()

	r.log(duration, count, Rate(count, duration), false)
}

// Stop freezes the duration at the time of the call.
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.duration = clock.Since(r.start)
}

func (r *Reporter) StopAndReport() {
	r.Stop()
	r.Report(true)
}

// Report logs the current state. The duration is the one recorded by the
// last periodic report or Stop.
func (r *Reporter) Report(completed bool) {
	r.mu.Lock()
	r.throttle.Reset(clock.Now())
	duration, count := r.duration, r.count
	r.mu.Unlock()

	r.log(duration, count, Rate(count, duration), completed)
}

func (r *Reporter) Count() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Duration returns the duration recorded by the last report or Stop.
func (r *Reporter) Duration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.duration
}

func (r *Reporter) ID() uuid.UUID {
	return r.id
}

// Rate returns whole entries per second, rounded down. It is 0 when nothing
// was counted or no time has passed.
func Rate(count int64, duration time.Duration) int64 {
	if count <= 0 || duration <= 0 {
		return 0
	}
	return count * int64(time.Second) / int64(duration)
}

// FormatMessage renders a report as a single line of text.
func FormatMessage(duration time.Duration, count, rate int64) string {
	return fmt.Sprintf("Duration: %s seconds, count: %d, rate: %d entries/second", format.Seconds(duration), count, rate)
}

// Stdout writes every report to w on the same terminal line, and moves to a
// new line once the work is completed.
func Stdout(w io.Writer) LogFunc {
	return func(duration time.Duration, count, rate int64, completed bool) {
		end := "\r"
		if completed {
			end = "\n"
		}
		fmt.Fprint(w, FormatMessage(duration, count, rate)+end)
	}
}

// Logger writes reports as info records.
func Logger(logger log.Logger) LogFunc {
	return func(duration time.Duration, count, rate int64, completed bool) {
		level.Info(logger).Log(
			"msg", "progress",
			"duration", duration,
			"count", count,
			"rate", rate,
			"completed", completed,
		)
	}
}
