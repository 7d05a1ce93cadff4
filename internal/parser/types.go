package parser

import "github.com/saltyorg/params/internal/types"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindSection
)

// String returns the kind name as used in descriptions.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return types.Null
	case KindBool:
		return types.Bool
	case KindInt:
		return types.Int
	case KindFloat:
		return types.Float
	case KindString:
		return types.String
	case KindSequence:
		return types.List
	case KindSection:
		return types.Dict
	default:
		return "unknown"
	}
}

// Value is a single node of a parsed document. Only the field matching
// Kind is meaningful.
type Value struct {
	Kind    Kind
	Bool    bool
	Int     int64
	Float   float64
	Str     string
	Items   []Value // KindSequence
	Section *Map    // KindSection
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IntValue wraps n.
func IntValue(n int64) Value { return Value{Kind: KindInt, Int: n} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// SequenceValue wraps an ordered list of items.
func SequenceValue(items []Value) Value { return Value{Kind: KindSequence, Items: items} }

// SectionValue wraps a section mapping.
func SectionValue(m *Map) Value { return Value{Kind: KindSection, Section: m} }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Map is a string-keyed mapping that remembers first-insertion order.
// A later assignment to an existing key replaces the value in place.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Get returns the value stored at key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map) set(key string, v Value) {
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Document is the root mapping produced by a parse.
type Document struct {
	Map
}

// newDocument creates an empty Document.
func newDocument() *Document {
	return &Document{Map: Map{values: make(map[string]Value)}}
}

// ParserState tracks the current parsing context.
type ParserState struct {
	CurrentSection string
	InSection      bool // Never reset once a section header has been seen
}
