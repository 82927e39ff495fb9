package action

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Encode serializes v as MessagePack. Integers use the narrowest format that
// holds them, floats are always float64 and maps are written in insertion order.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := v.EncodeMsgpack(enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	var err error
	switch v.kind {
	case KindNull:
		err = enc.EncodeNil()
	case KindBool:
		err = enc.EncodeBool(v.b)
	case KindInt:
		err = enc.EncodeInt(v.i)
	case KindUint:
		err = enc.EncodeUint(v.u)
	case KindFloat:
		err = enc.EncodeFloat64(v.f)
	case KindString:
		err = enc.EncodeString(v.s)
	case KindArray:
		if err = enc.EncodeArrayLen(len(v.arr)); err != nil {
			break
		}
		for _, e := range v.arr {
			if err = e.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
	case KindMap:
		err = v.m.EncodeMsgpack(enc)
	default:
		return encodingErrorf("unknown value kind %s", v.kind)
	}

	if err != nil {
		return errors.Wrapf(ErrEncoding, "failed to encode %s value: %v", v.kind, err)
	}
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (m *Map) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(m.Len()); err != nil {
		return errors.Wrapf(ErrEncoding, "failed to encode map header: %v", err)
	}

	var err error
	m.Range(func(key string, v Value) bool {
		if err = enc.EncodeString(key); err != nil {
			err = errors.Wrapf(ErrEncoding, "failed to encode map key %q: %v", key, err)
			return false
		}
		err = v.EncodeMsgpack(enc)
		return err == nil
	})
	return err
}
