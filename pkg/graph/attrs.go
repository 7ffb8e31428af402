package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Attrs stores arbitrary key-value pairs attached to a graph, node, or edge.
// Unlike a plain map, Attrs remembers insertion order: overwriting an existing
// key keeps its position, new keys are appended. This keeps exported
// documents stable and lets round-trips reproduce attribute order exactly.
//
// The zero value is an empty, usable container. A nil *Attrs behaves as
// empty for all read operations.
type Attrs struct {
	keys []string
	vals map[string]any
}

// NewAttrs creates an Attrs from alternating key, value arguments.
// It panics if kv has odd length or a key is not a string, which makes it
// suitable for literals in code and tests, not for untrusted input.
func NewAttrs(kv ...any) *Attrs {
	if len(kv)%2 != 0 {
		panic("graph: NewAttrs called with odd number of arguments")
	}
	a := &Attrs{}
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("graph: NewAttrs key %v is not a string", kv[i]))
		}
		a.Set(k, kv[i+1])
	}
	return a
}

// Get returns the value stored under key and whether it was present.
func (a *Attrs) Get(key string) (any, bool) {
	if a == nil || a.vals == nil {
		return nil, false
	}
	v, ok := a.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (a *Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set stores v under key.
func (a *Attrs) Set(key string, v any) {
	if a.vals == nil {
		a.vals = make(map[string]any)
	}
	if _, exists := a.vals[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.vals[key] = v
}

// Delete removes key. No error is returned if the key does not exist.
func (a *Attrs) Delete(key string) {
	if a == nil || a.vals == nil {
		return
	}
	if _, ok := a.vals[key]; !ok {
		return
	}
	delete(a.vals, key)
	a.keys = slices.DeleteFunc(a.keys, func(k string) bool { return k == key })
}

// Len returns the number of keys.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns a copy of the keys in insertion order.
func (a *Attrs) Keys() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.keys)
}

// All iterates over key-value pairs in insertion order.
func (a *Attrs) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if a == nil {
			return
		}
		for _, k := range a.keys {
			if !yield(k, a.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy. Values are shared, the container is not:
// setting a key on the clone never affects the original.
func (a *Attrs) Clone() *Attrs {
	c := &Attrs{}
	if a == nil || len(a.keys) == 0 {
		return c
	}
	c.keys = slices.Clone(a.keys)
	c.vals = make(map[string]any, len(a.vals))
	for k, v := range a.vals {
		c.vals[k] = v
	}
	return c
}

// Update copies every pair of other into a, in other's order.
// Existing keys are overwritten in place.
func (a *Attrs) Update(other *Attrs) {
	for k, v := range other.All() {
		a.Set(k, v)
	}
}

// Map returns the pairs as a plain map. Order is lost.
func (a *Attrs) Map() map[string]any {
	m := make(map[string]any, a.Len())
	for k, v := range a.All() {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the pairs as a JSON object in insertion order.
func (a *Attrs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range a.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("attr %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the order keys appear in.
// Nested objects are decoded as map[string]any.
func (a *Attrs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return a.decode(dec)
}

func (a *Attrs) decode(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("attrs: expected object, got %v", tok)
	}
	*a = Attrs{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("attrs: expected string key, got %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("attr %q: %w", key, err)
		}
		a.Set(key, normalizeNumbers(v))
	}
	_, err = dec.Token()
	return err
}

// normalizeNumbers turns json.Number into int64 when the literal is
// integral and float64 otherwise, recursing into arrays and objects.
func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []any:
		for i := range x {
			x[i] = normalizeNumbers(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = normalizeNumbers(x[k])
		}
		return x
	}
	return v
}

// NormalizeJSON converts json.Number values (as produced by a decoder with
// UseNumber) into int64 or float64, the same way Attrs decoding does.
func NormalizeJSON(v any) any { return normalizeNumbers(v) }
