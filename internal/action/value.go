package action

import (
	"fmt"
	"math"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a node of an action tree. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	arr  []Value
	m    *Map
}

// Null returns the null value.
func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Uint(u uint64) Value { return Value{kind: KindUint, u: u} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array value holding the given elements in order.
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// FromMap wraps m as a value. A nil map is encoded as an empty map.
func FromMap(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, m: m}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the value as int64 for both integer kinds, if it fits.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindUint:
		if v.u > math.MaxInt64 {
			return 0, false
		}
		return int64(v.u), true
	default:
		return 0, false
	}
}

// AsUint returns the value as uint64 for non-negative integers of either kind.
func (v Value) AsUint() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.u, true
	case KindInt:
		if v.i < 0 {
			return 0, false
		}
		return uint64(v.i), true
	default:
		return 0, false
	}
}

func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns the elements of an array value. The slice must not be modified.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

func (v Value) AsMap() (*Map, bool) { return v.m, v.kind == KindMap }

// Interface converts the value to plain Go types: nil, bool, int64, uint64,
// float64, string, []any and *Map (maps keep their order).
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindMap:
		return v.m
	default:
		return nil
	}
}

// Equal reports deep equality, including map key order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindUint:
		return v.u == other.u
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.Equal(other.m)
	default:
		return false
	}
}

// FromAny converts plain Go values into a Value tree. Unordered Go maps are
// rejected because their iteration order would leak into the action hash.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Map:
		return FromMap(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Uint(uint64(t)), nil
	case uint8:
		return Uint(uint64(t)), nil
	case uint16:
		return Uint(uint64(t)), nil
	case uint32:
		return Uint(uint64(t)), nil
	case uint64:
		return Uint(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case []Value:
		return Array(t...), nil
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return Value{kind: KindArray, arr: elems}, nil
	case map[string]any:
		return Value{}, encodingErrorf("unordered map %T cannot be used as an action; use *action.Map", x)
	default:
		return Value{}, encodingErrorf("unsupported action value type %T", x)
	}
}
