// Package value defines the document value model: a closed tagged union over
// the six kinds a decoded document can contain (null, bool, number, string,
// sequence, mapping). Values are immutable once built; the comparator and
// serializer switch exhaustively on Kind.
package value

import (
	"sort"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindNull is the null/absent value
	KindNull Kind = iota
	// KindBool is a boolean
	KindBool
	// KindNumber is an exact integer or a floating value
	KindNumber
	// KindString is a text value
	KindString
	// KindSequence is an ordered list of values
	KindSequence
	// KindMapping is a string-keyed map of values
	KindMapping
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is one node of a decoded document tree.
type Value struct {
	kind  Kind
	boolv bool
	intv  int64
	fltv  float64
	isInt bool
	strv  string
	seq   []*Value
	mp    map[string]*Value
}

// Null returns the null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, boolv: b}
}

// Int returns an exact-integer number value.
func Int(i int64) *Value {
	return &Value{kind: KindNumber, isInt: true, intv: i}
}

// Float returns a floating number value.
func Float(f float64) *Value {
	return &Value{kind: KindNumber, fltv: f}
}

// String returns a string value.
func String(s string) *Value {
	return &Value{kind: KindString, strv: s}
}

// Sequence returns an ordered sequence value.
func Sequence(elems ...*Value) *Value {
	return &Value{kind: KindSequence, seq: elems}
}

// Mapping returns a mapping value. The map is owned by the Value after the
// call; callers must not mutate it.
func Mapping(members map[string]*Value) *Value {
	if members == nil {
		members = map[string]*Value{}
	}
	return &Value{kind: KindMapping, mp: members}
}

// Kind reports which variant this value holds.
func (v *Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload. Valid only for KindBool.
func (v *Value) AsBool() bool {
	return v.boolv
}

// IsInt reports whether a number value holds an exact integer.
func (v *Value) IsInt() bool {
	return v.isInt
}

// AsInt returns the integer payload of an exact-integer number.
func (v *Value) AsInt() int64 {
	return v.intv
}

// AsFloat returns the numeric payload as a float64, converting exact
// integers. Valid only for KindNumber.
func (v *Value) AsFloat() float64 {
	if v.isInt {
		return float64(v.intv)
	}
	return v.fltv
}

// AsString returns the string payload. Valid only for KindString.
func (v *Value) AsString() string {
	return v.strv
}

// Len returns the element count of a sequence or the member count of a
// mapping, and 0 for every other kind.
func (v *Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.mp)
	default:
		return 0
	}
}

// Elem returns the i-th element of a sequence.
func (v *Value) Elem(i int) *Value {
	return v.seq[i]
}

// Elems returns the sequence elements in order. Callers must not mutate the
// returned slice.
func (v *Value) Elems() []*Value {
	return v.seq
}

// Member returns the mapping member for key, and whether it is present.
func (v *Value) Member(key string) (*Value, bool) {
	m, ok := v.mp[key]
	return m, ok
}

// Keys returns the mapping keys in ascending codepoint order. Mapping
// traversal is always lexicographic, never insertion-ordered.
func (v *Value) Keys() []string {
	keys := make([]string, 0, len(v.mp))
	for k := range v.mp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
