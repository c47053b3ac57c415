package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Attrs is a typed variant map for provider-defined attribute payloads.
// Each value is a string, number, bool, or nested map. The layout engine
// never interprets these; they ride along into the serialized document.
type Attrs map[string]Value

// ValueKind discriminates the variants held by a [Value].
type ValueKind int

const (
	// KindString holds a string value.
	KindString ValueKind = iota
	// KindNumber holds a float64 value.
	KindNumber
	// KindBool holds a bool value.
	KindBool
	// KindMap holds a nested Attrs map.
	KindMap
)

// Value is a tagged union of the attribute types the diagram surface accepts.
// The zero value is the empty string.
type Value struct {
	kind ValueKind
	s    string
	n    float64
	b    bool
	m    Attrs
}

// String wraps a string as a Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number wraps a float64 as a Value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Int wraps an int as a numeric Value.
func Int(n int) Value { return Value{kind: KindNumber, n: float64(n)} }

// Bool wraps a bool as a Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Map wraps a nested Attrs map as a Value.
func Map(m Attrs) Value { return Value{kind: KindMap, m: m} }

// Kind returns the variant held by the value.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string value and true if the value is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsNumber returns the numeric value and true if the value is a number.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsBool returns the bool value and true if the value is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsMap returns the nested map and true if the value is a map.
func (v Value) AsMap() (Attrs, bool) { return v.m, v.kind == KindMap }

// MarshalJSON encodes the value as its underlying JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.s)
	case KindNumber:
		return json.Marshal(v.n)
	case KindBool:
		return json.Marshal(v.b)
	case KindMap:
		return json.Marshal(v.m)
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.kind)
	}
}

// UnmarshalJSON decodes a JSON scalar or object into the matching variant.
// JSON arrays and nulls are not valid attribute values.
func (v *Value) UnmarshalJSON(data []byte) error {
	// Unmarshal into a scalar succeeds on the null token without setting
	// the target, so null has to be rejected before trying the variants.
	if string(bytes.TrimSpace(data)) == "null" {
		return fmt.Errorf("unsupported attribute value: null")
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Bool(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Number(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = String(s)
		return nil
	}
	var m Attrs
	if err := json.Unmarshal(data, &m); err == nil {
		*v = Map(m)
		return nil
	}
	return fmt.Errorf("unsupported attribute value: %s", data)
}

// Keys returns the attribute keys in sorted order for deterministic output.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the attribute map.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		if m, ok := v.AsMap(); ok {
			out[k] = Map(m.Clone())
			continue
		}
		out[k] = v
	}
	return out
}
