package eip712

import (
	"encoding/json"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/hl-signer/internal/action"
	"github/chapool/hl-signer/internal/crypto/keccak"
	"github/chapool/hl-signer/internal/util/hexconv"
)

const (
	wordSize      = 32
	addressLength = 20
)

var digestPrefix = []byte{0x19, 0x01}

// EncodeType renders name and every struct type it references as
// "Name(type1 field1,type2 field2)". Referenced types follow the primary type in
// alphabetical order.
func EncodeType(types Types, name string) (string, error) {
	deps := map[string]struct{}{}
	if err := collectDependencies(types, name, deps); err != nil {
		return "", err
	}
	delete(deps, name)

	sorted := make([]string, 0, len(deps))
	for dep := range deps {
		sorted = append(sorted, dep)
	}
	sort.Strings(sorted)

	var b strings.Builder
	for _, t := range append([]string{name}, sorted...) {
		b.WriteString(t)
		b.WriteByte('(')
		for i, f := range types[t] {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(f.Type)
			b.WriteByte(' ')
			b.WriteString(f.Name)
		}
		b.WriteByte(')')
	}

	return b.String(), nil
}

func collectDependencies(types Types, name string, seen map[string]struct{}) error {
	if _, ok := seen[name]; ok {
		return nil
	}
	fields, ok := types[name]
	if !ok {
		return errors.Wrapf(ErrUnknownType, "type %q", name)
	}
	seen[name] = struct{}{}

	for _, f := range fields {
		if _, isStruct := types[f.Type]; isStruct {
			if err := collectDependencies(types, f.Type, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// TypeHash returns keccak256(EncodeType(types, name)).
func TypeHash(types Types, name string) (keccak.Digest, error) {
	enc, err := EncodeType(types, name)
	if err != nil {
		return keccak.Digest{}, err
	}
	return keccak.Sum([]byte(enc)), nil
}

// HashStruct returns keccak256(typeHash ‖ encodeField(f) for each declared field).
// Message entries that are not declared fields are ignored.
func HashStruct(types Types, name string, data map[string]any) (keccak.Digest, error) {
	typeHash, err := TypeHash(types, name)
	if err != nil {
		return keccak.Digest{}, err
	}

	fields := types[name]
	buf := make([]byte, 0, wordSize*(1+len(fields)))
	buf = append(buf, typeHash[:]...)

	for _, f := range fields {
		value, ok := data[f.Name]
		if !ok {
			return keccak.Digest{}, errors.Wrapf(ErrMissingField, "%s.%s", name, f.Name)
		}

		var word [32]byte
		if _, isStruct := types[f.Type]; isStruct {
			nested, err := nestedMessage(value)
			if err != nil {
				return keccak.Digest{}, errors.Wrapf(err, "%s.%s", name, f.Name)
			}
			if word, err = HashStruct(types, f.Type, nested); err != nil {
				return keccak.Digest{}, err
			}
		} else if word, err = EncodeField(f.Type, value); err != nil {
			return keccak.Digest{}, errors.Wrapf(err, "%s.%s", name, f.Name)
		}

		buf = append(buf, word[:]...)
	}

	return keccak.Sum(buf), nil
}

// Digest returns keccak256(0x19 0x01 ‖ domainSeparator ‖ hashStruct(primaryType, message)).
func Digest(domain Domain, types Types, primaryType string, message map[string]any) (keccak.Digest, error) {
	structHash, err := HashStruct(types, primaryType, message)
	if err != nil {
		return keccak.Digest{}, err
	}

	sep := domain.Separator()
	return keccak.Sum(digestPrefix, sep[:], structHash[:]), nil
}

// MessageFromMap converts an action map into a message. Nested maps are
// converted recursively.
func MessageFromMap(m *action.Map) map[string]any {
	out := make(map[string]any, m.Len())
	m.Range(func(key string, v action.Value) bool {
		if nested, ok := v.AsMap(); ok {
			out[key] = MessageFromMap(nested)
		} else {
			out[key] = v.Interface()
		}
		return true
	})
	return out
}

func nestedMessage(value any) (map[string]any, error) {
	switch t := value.(type) {
	case map[string]any:
		return t, nil
	case *action.Map:
		return MessageFromMap(t), nil
	case action.Value:
		if m, ok := t.AsMap(); ok {
			return MessageFromMap(m), nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidValue, "expected struct value, got %T", value)
}

// EncodeField encodes a single atomic value into its 32-byte EIP-712 word.
func EncodeField(typ string, value any) ([32]byte, error) {
	var word [32]byte

	if v, ok := value.(action.Value); ok {
		value = v.Interface()
	}

	switch typ {
	case "string":
		s, ok := value.(string)
		if !ok {
			return word, invalidValue(typ, value)
		}
		return keccak.Sum([]byte(s)), nil

	case "bytes":
		b, err := toBytes(value)
		if err != nil {
			return word, errors.Wrapf(ErrInvalidValue, "bytes: %v", err)
		}
		return keccak.Sum(b), nil

	case "bytes32":
		b, err := toBytes(value)
		if err != nil {
			return word, errors.Wrapf(ErrInvalidValue, "bytes32: %v", err)
		}
		if len(b) != wordSize {
			return word, errors.Wrapf(ErrInvalidValue, "bytes32 value has %d bytes", len(b))
		}
		copy(word[:], b)
		return word, nil

	case "address":
		b, err := toBytes(value)
		if err != nil {
			return word, errors.Wrapf(ErrInvalidValue, "address: %v", err)
		}
		if len(b) != addressLength {
			return word, errors.Wrapf(ErrInvalidValue, "address value has %d bytes", len(b))
		}
		copy(word[wordSize-addressLength:], b)
		return word, nil

	case "bool":
		b, ok := value.(bool)
		if !ok {
			return word, invalidValue(typ, value)
		}
		if b {
			word[wordSize-1] = 1
		}
		return word, nil

	case "uint64", "uint256":
		n, err := toUint64(value)
		if err != nil {
			return word, errors.Wrapf(ErrInvalidValue, "%s: %v", typ, err)
		}
		for i := 0; i < 8; i++ {
			word[wordSize-1-i] = byte(n >> (8 * i))
		}
		return word, nil

	default:
		return word, errors.Wrapf(ErrUnsupportedType, "%q", typ)
	}
}

func invalidValue(typ string, value any) error {
	return errors.Wrapf(ErrInvalidValue, "%s field cannot hold %T", typ, value)
}

func toBytes(value any) ([]byte, error) {
	switch t := value.(type) {
	case []byte:
		return t, nil
	case [32]byte:
		return t[:], nil
	case keccak.Digest:
		return t[:], nil
	case common.Hash:
		return t.Bytes(), nil
	case common.Address:
		return t.Bytes(), nil
	case *common.Address:
		if t == nil {
			return nil, errors.New("nil address")
		}
		return t.Bytes(), nil
	case string:
		return hexconv.DecodeHex(t)
	default:
		return nil, errors.Errorf("unsupported value type %T", value)
	}
}

func toUint64(value any) (uint64, error) {
	switch t := value.(type) {
	case uint64:
		return t, nil
	case uint32:
		return uint64(t), nil
	case uint:
		return uint64(t), nil
	case int:
		return signedToUint64(int64(t))
	case int32:
		return signedToUint64(int64(t))
	case int64:
		return signedToUint64(t)
	case *big.Int:
		if t == nil || t.Sign() < 0 || !t.IsUint64() {
			return 0, errors.New("integer out of range")
		}
		return t.Uint64(), nil
	case json.Number:
		return hexconv.ParseUint64(t.String())
	case string:
		return hexconv.ParseUint64(t)
	default:
		return 0, errors.Errorf("unsupported value type %T", value)
	}
}

func signedToUint64(n int64) (uint64, error) {
	if n < 0 {
		return 0, errors.Errorf("negative integer %d", n)
	}
	return uint64(n), nil
}
