package untag

import (
	"bytes"
	"fmt"

	"github.com/tdehart/untag/internal/json"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

// Field is a single key/value pair of a decoded map.
type Field struct {
	Key   string
	Value Value
}

// Value is one decoded plain value: an explicit null, a boolean, an
// integer, a floating-point number, a string, a list of values, or an
// ordered map of fields.
//
// The zero value is the explicit null. Construct the other variants
// with [Bool], [Int], [Float], [String], [List] and [Map].
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	l    []Value
	m    []Field
}

// Null returns the explicit null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns a list value holding items in order.
func List(items []Value) Value { return Value{kind: KindList, l: items} }

// Map returns a map value holding fields in the given order.
//
// The decoder always produces fields in ascending lexical key order;
// Map does not reorder them.
func Map(fields []Field) Value { return Value{kind: KindMap, m: fields} }

// Kind returns the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Valid only for [KindBool].
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload. Valid only for [KindInt].
func (v Value) Int() int64 { return v.i }

// Float returns the float payload. Valid only for [KindFloat].
func (v Value) Float() float64 { return v.f }

// Text returns the string payload. Valid only for [KindString].
func (v Value) Text() string { return v.s }

// Items returns the list payload. Valid only for [KindList].
func (v Value) Items() []Value { return v.l }

// Fields returns the map payload. Valid only for [KindMap].
func (v Value) Fields() []Field { return v.m }

// Equal checks if two values are the same, comparing lists element by
// element and maps field by field.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.l) != len(o.l) {
			return false
		}
		for i := range v.l {
			if !v.l[i].Equal(o.l[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for i := range v.m {
			if v.m[i].Key != o.m[i].Key {
				return false
			}
			if !v.m[i].Value.Equal(o.m[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON encodes the value as plain JSON. Map fields are written
// in their stored order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindList:
		if len(v.l) == 0 {
			return []byte("[]"), nil
		}
		return json.Marshal(v.l)
	case KindMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, f := range v.m {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := json.Marshal(f.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("untag: unknown value kind %d", v.kind)
}
