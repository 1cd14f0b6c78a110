// Package logging builds the go-kit logger used by the command line tool.
package logging

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Format string

const (
	FormatLogfmt Format = "logfmt"
	FormatJSON   Format = "json"
)

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

type Options struct {
	Level  Level  `yaml:"level"`
	Format Format `yaml:"format"`
}

// DefaultOptions logs info and above as logfmt.
var DefaultOptions = Options{Level: LevelInfo, Format: FormatLogfmt}

func (o Options) Validate() error {
	if _, err := o.Level.filter(); err != nil {
		return err
	}
	switch o.Format {
	case FormatLogfmt, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, o.Format)
	}
}

func (l Level) filter() (level.Option, error) {
	switch l {
	case LevelDebug:
		return level.AllowDebug(), nil
	case LevelInfo:
		return level.AllowInfo(), nil
	case LevelWarn:
		return level.AllowWarn(), nil
	case LevelError:
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, l)
	}
}

// New returns a logger writing to w that drops records below the configured
// level. Records carry a UTC timestamp.
func New(w io.Writer, opts Options) (log.Logger, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var logger log.Logger
	switch opts.Format {
	case FormatJSON:
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	default:
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}

	allow, _ := opts.Level.filter()
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

// Nop discards everything.
func Nop() log.Logger {
	return log.NewNopLogger()
}
