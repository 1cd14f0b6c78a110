package transform

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"

	"github.com/jacoelho/textkit/internal/ndjson"
)

// Property is a single named value of an Object.
type Property[T any] struct {
	Name  string
	Value T
}

// Object is an ordered list of properties. It encodes to JSON and YAML as a
// mapping with the properties in list order.
type Object[T any] []Property[T]

// Names returns the property names in order.
func (o Object[T]) Names() []string {
	return lo.Map(o, func(p Property[T], _ int) string {
		return p.Name
	})
}

// Get returns the value of the first property called name.
func (o Object[T]) Get(name string) (T, bool) {
	for _, p := range o {
		if p.Name == name {
			return p.Value, true
		}
	}
	var zero T
	return zero, false
}

// Map converts the object into a map, losing its order.
func (o Object[T]) Map() map[string]T {
	return lo.SliceToMap(o, func(p Property[T]) (string, T) {
		return p.Name, p.Value
	})
}

func (o Object[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := ndjson.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		value, err := ndjson.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("encode property %q: %w", p.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the object as an ordered mapping. Raw JSON values are
// decoded first so they render as YAML rather than as bytes.
func (o Object[T]) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, len(o))
	for _, p := range o {
		var value any = p.Value
		if raw, ok := value.(ndjson.RawMessage); ok {
			if err := ndjson.Unmarshal(raw, &value); err != nil {
				return nil, fmt.Errorf("decode property %q: %w", p.Name, err)
			}
		}
		out = append(out, yaml.MapItem{Key: p.Name, Value: value})
	}
	return out, nil
}

// Reorder builds an ordered object from src. Map iteration order is random,
// so names start out sorted before opts are applied.
func Reorder[T any](src map[string]T, opts OrderOptions) Object[T] {
	names := lo.Keys(src)
	slices.Sort(names)

	return lo.Map(OrderNames(names, opts), func(name string, _ int) Property[T] {
		return Property[T]{Name: name, Value: src[name]}
	})
}

// ReorderObject returns a reordered copy of obj. Without options the copy
// keeps the original order.
func ReorderObject[T any](obj Object[T], opts OrderOptions) Object[T] {
	if opts.IsZero() {
		return slices.Clone(obj)
	}

	out := make(Object[T], 0, len(obj))
	for _, name := range OrderNames(obj.Names(), opts) {
		value, _ := obj.Get(name)
		out = append(out, Property[T]{Name: name, Value: value})
	}
	return out
}

// ParseObject decodes a JSON object keeping its member order. Member values
// stay encoded. When a name repeats, the last value wins and keeps the
// position of the first occurrence.
func ParseObject(data []byte) (Object[ndjson.RawMessage], error) {
	var obj Object[ndjson.RawMessage]
	index := make(map[string]int)

	err := ndjson.ReadObject(data, func(name string, value ndjson.RawMessage) error {
		if i, ok := index[name]; ok {
			obj[i].Value = value
			return nil
		}
		index[name] = len(obj)
		obj = append(obj, Property[ndjson.RawMessage]{Name: name, Value: value})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// ReorderJSON reorders the top-level members of a JSON object. Nested
// values are copied through unchanged.
func ReorderJSON(data []byte, opts OrderOptions) ([]byte, error) {
	obj, err := ParseObject(data)
	if err != nil {
		return nil, err
	}
	return ReorderObject(obj, opts).MarshalJSON()
}
