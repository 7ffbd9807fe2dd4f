package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// OrderedMap is a string keyed map that remembers first-insertion order.
// The order survives a JSON round trip. Entries are never removed.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Set stores v under key. Overwriting keeps the original position.
func (m *OrderedMap[V]) Set(key string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order
func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// All iterates entries in insertion order
func (m OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Map returns a plain map copy of the entries
func (m OrderedMap[V]) Map() map[string]V {
	out := make(map[string]V, len(m.keys))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (m *OrderedMap[V]) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = OrderedMap[V]{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	var out OrderedMap[V]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("failed to decode %q: %w", key, err)
		}
		out.Set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = out
	return nil
}
