package action

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MarshalJSON writes the value with map keys in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindUint:
		buf.WriteString(strconv.FormatUint(v.u, 10))
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return encodingErrorf("float %v has no JSON representation", v.f)
		}
		b, err := json.Marshal(v.f)
		if err != nil {
			return errors.Wrap(err, "failed to marshal float")
		}
		buf.Write(b)
	case KindString:
		b, err := json.Marshal(v.s)
		if err != nil {
			return errors.Wrap(err, "failed to marshal string")
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMap:
		return v.m.writeJSON(buf)
	default:
		return encodingErrorf("unknown value kind %s", v.kind)
	}
	return nil
}

// MarshalJSON writes the map with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Map) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	first := true
	var err error
	m.Range(func(key string, v Value) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		var k []byte
		if k, err = json.Marshal(key); err != nil {
			return false
		}
		buf.Write(k)
		buf.WriteByte(':')
		err = v.writeJSON(buf)
		return err == nil
	})
	if err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSON parses any JSON document. Object keys keep their document
// order. Numbers without a fraction or exponent become integers.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty JSON value")
	}

	switch data[0] {
	case 'n':
		*v = Null()
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return errors.Wrap(err, "failed to parse bool")
		}
		*v = Bool(b)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "failed to parse string")
		}
		*v = String(s)
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return errors.Wrap(err, "failed to parse array")
		}
		elems := make([]Value, len(raw))
		for i, r := range raw {
			if err := elems[i].UnmarshalJSON(r); err != nil {
				return err
			}
		}
		*v = Value{kind: KindArray, arr: elems}
	case '{':
		m := NewMap()
		if err := m.UnmarshalJSON(data); err != nil {
			return err
		}
		*v = FromMap(m)
	default:
		n, err := parseNumber(string(data))
		if err != nil {
			return err
		}
		*v = n
	}
	return nil
}

// UnmarshalJSON parses a JSON object keeping its key order.
func (m *Map) UnmarshalJSON(data []byte) error {
	om := orderedmap.New[string, Value]()
	if err := om.UnmarshalJSON(data); err != nil {
		return errors.Wrap(err, "failed to parse object")
	}
	m.om = om
	return nil
}

func parseNumber(s string) (Value, error) {
	isFloat := false
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
			break
		}
	}

	if !isFloat {
		if s[0] == '-' {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return Int(i), nil
			}
		} else if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint(u), nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, errors.Wrapf(err, "invalid JSON number %q", s)
	}
	return Float(f), nil
}
