// Package config holds the settings shared by textkit commands. Settings
// start from Default, are overlaid by an optional YAML file and finally by
// command line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/textkit/internal/convert"
	"github.com/jacoelho/textkit/internal/logging"
	"github.com/jacoelho/textkit/internal/normalize"
	"github.com/jacoelho/textkit/internal/progress"
	"github.com/jacoelho/textkit/internal/transform"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Output string

const (
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

type Progress struct {
	Enabled bool          `yaml:"enabled"`
	Period  time.Duration `yaml:"period"`
}

type Config struct {
	// Lenient resolves mismatched and unclosed brackets to the end of the
	// text instead of failing.
	Lenient bool `yaml:"lenient"`
	// SizeBase is 1000 (kB, MB) or 1024 (KiB, MiB).
	SizeBase     int                    `yaml:"size_base"`
	MACDelimiter string                 `yaml:"mac_delimiter"`
	Output       Output                 `yaml:"output"`
	Prune        string                 `yaml:"prune"`
	Order        transform.OrderOptions `yaml:"order"`
	Progress     Progress               `yaml:"progress"`
	// RateLimit caps NDJSON entries per second; 0 is unlimited.
	RateLimit float64         `yaml:"rate_limit"`
	Log       logging.Options `yaml:"log"`
}

func Default() Config {
	return Config{
		SizeBase:     1000,
		MACDelimiter: convert.DefaultMACDelimiter,
		Output:       OutputJSON,
		Prune:        normalize.Keep.String(),
		Progress:     Progress{Period: progress.DefaultPeriod},
		Log:          logging.DefaultOptions,
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defer f.Close()

	if err := cfg.decode(f); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults. Unknown fields are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks every setting and reports the first problem found.
func (c *Config) Validate() error {
	if c.SizeBase != 1000 && c.SizeBase != 1024 {
		return fmt.Errorf("%w: size_base must be 1000 or 1024, got %d", ErrInvalidConfig, c.SizeBase)
	}

	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output must be json or yaml, got %q", ErrInvalidConfig, c.Output)
	}

	if _, err := normalize.ParseMode(c.Prune); err != nil {
		return fmt.Errorf("%w: prune: %v", ErrInvalidConfig, err)
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate_limit must not be negative, got %g", ErrInvalidConfig, c.RateLimit)
	}

	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: log: %v", ErrInvalidConfig, err)
	}

	return nil
}

// PruneMode returns the parsed prune setting. Validate must have passed.
func (c *Config) PruneMode() normalize.Mode {
	mode, _ := normalize.ParseMode(c.Prune)
	return mode
}
