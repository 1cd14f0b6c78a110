package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/textkit/internal/config"
	"github.com/jacoelho/textkit/internal/ndjson"
	"github.com/jacoelho/textkit/internal/normalize"
	"github.com/jacoelho/textkit/internal/transform"
)

// Reorder reads a JSON object from r and writes it with its top-level
// properties reordered.
func Reorder(r io.Reader, w io.Writer, opts transform.OrderOptions, output config.Output) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	obj, err := transform.ParseObject(data)
	if err != nil {
		return err
	}
	return writeValue(w, transform.ReorderObject(obj, opts), output)
}

// Prune reads a JSON value from r and writes it without empty or default
// members. Nothing is written when the whole value is pruned.
func Prune(r io.Reader, w io.Writer, mode normalize.Mode, output config.Output) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var value any
	if err := ndjson.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %v", ndjson.ErrMalformed, err)
	}

	pruned := normalize.Apply(value, mode)
	if pruned == nil && mode != normalize.Keep {
		return nil
	}
	return writeValue(w, pruned, output)
}

func writeValue(w io.Writer, v any, output config.Output) error {
	var (
		data []byte
		err  error
	)
	switch output {
	case config.OutputYAML:
		data, err = yaml.Marshal(v)
	default:
		var line string
		line, err = ndjson.ToLine(v)
		data = []byte(line)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}

	_, err = w.Write(data)
	return err
}
