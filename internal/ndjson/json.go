// Package ndjson reads and writes newline-delimited JSON.
package ndjson

import (
	"errors"
	"fmt"
	"io"

	json "github.com/json-iterator/go"
	"github.com/theory/jsonpath"
)

var (
	ErrInvalidLine = errors.New("invalid JSON line")
	ErrInvalidPath = errors.New("invalid JSONPath")
	ErrNotObject   = errors.New("not a JSON object")
	ErrMalformed   = errors.New("malformed JSON")
)

// api matches encoding/json except that it leaves HTML characters alone.
// Map keys are sorted so output is stable.
var api = json.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Marshal encodes v as compact JSON.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes a single JSON value. Numbers decode to float64 when the
// destination is untyped.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// ToLine renders v as one NDJSON entry: compact JSON followed by a newline.
func ToLine(v any) (string, error) {
	line, err := api.MarshalToString(v)
	if err != nil {
		return "", err
	}
	return line + "\n", nil
}

// Selector is a compiled JSONPath expression.
type Selector struct {
	expr string
	path *jsonpath.Path
}

func NewSelector(path string) (*Selector, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: expression is empty", ErrInvalidPath)
	}

	parsed, err := jsonpath.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	return &Selector{expr: path, path: parsed}, nil
}

// Select returns every node of v matched by the expression.
func (s *Selector) Select(v any) []any {
	return s.path.Select(v)
}

func (s *Selector) String() string {
	return s.expr
}

// Select evaluates a JSONPath expression against a decoded JSON value and
// returns every matching node.
func Select(v any, path string) ([]any, error) {
	selector, err := NewSelector(path)
	if err != nil {
		return nil, err
	}
	return selector.Select(v), nil
}

// RawMessage is an encoded JSON value that is written out unchanged.
type RawMessage = json.RawMessage

// ReadObject calls fn for every member of the JSON object in data, in the
// order the members appear. Values are passed undecoded. Anything but
// whitespace after the object is malformed.
func ReadObject(data []byte, fn func(name string, value RawMessage) error) error {
	iter := api.BorrowIterator(data)
	defer api.ReturnIterator(iter)

	if next := iter.WhatIsNext(); next != json.ObjectValue {
		return fmt.Errorf("%w: found %s", ErrNotObject, valueTypeName(next))
	}

	var cbErr error
	iter.ReadMapCB(func(iter *json.Iterator, name string) bool {
		value := append(RawMessage(nil), iter.SkipAndReturnBytes()...)
		if iter.Error != nil {
			// a truncated value surfaces as io.EOF
			return false
		}
		if err := fn(name, value); err != nil {
			cbErr = err
			return false
		}
		return true
	})

	if cbErr != nil {
		return cbErr
	}
	if iter.Error != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, iter.Error)
	}

	// only the end of input reports InvalidValue together with io.EOF
	if next := iter.WhatIsNext(); next != json.InvalidValue || iter.Error != io.EOF {
		return fmt.Errorf("%w: unexpected data after object", ErrMalformed)
	}
	return nil
}

func valueTypeName(t json.ValueType) string {
	switch t {
	case json.StringValue:
		return "string"
	case json.NumberValue:
		return "number"
	case json.NilValue:
		return "null"
	case json.BoolValue:
		return "boolean"
	case json.ArrayValue:
		return "array"
	default:
		return "invalid value"
	}
}
