package acctlayout

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// toBig accepts the integer shapes produced by Go callers and by the
// JSON/CBOR/msgpack/protobuf decoders in package codec.
func toBig(v any) (*big.Int, error) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrTypeMismatch)
		}
		return x, nil
	case big.Int:
		return &x, nil
	case int:
		return big.NewInt(int64(x)), nil
	case int8:
		return big.NewInt(int64(x)), nil
	case int16:
		return big.NewInt(int64(x)), nil
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case float64:
		// only integers a float64 holds exactly
		if x != math.Trunc(x) || math.Abs(x) > 1<<53 {
			return nil, fmt.Errorf("%w: inexact integer %v", ErrTypeMismatch, x)
		}
		return big.NewInt(int64(x)), nil
	case json.Number:
		return parseBig(string(x))
	case string:
		return parseBig(x)
	default:
		return nil, fmt.Errorf("%w: %T is not an integer", ErrTypeMismatch, v)
	}
}

// parseBig accepts an optionally signed decimal integer, or hex behind an
// explicit 0x prefix. Leading zeros are decimal: "010" is ten.
func parseBig(s string) (*big.Int, error) {
	digits, neg := s, false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	base := 10
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		base, digits = 16, digits[2:]
	}
	// SetString would take a second sign
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrTypeMismatch, s)
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrTypeMismatch, s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

func toKey(v any) (solana.PublicKey, error) {
	var k solana.PublicKey
	switch x := v.(type) {
	case solana.PublicKey:
		return x, nil
	case *solana.PublicKey:
		if x == nil {
			return k, fmt.Errorf("%w: nil key", ErrTypeMismatch)
		}
		return *x, nil
	case [solana.PublicKeyLength]byte:
		return solana.PublicKey(x), nil
	case []byte:
		if len(x) != solana.PublicKeyLength {
			return k, fmt.Errorf("%w: got %d bytes", ErrSizeMismatch, len(x))
		}
		copy(k[:], x)
		return k, nil
	case string:
		raw, err := base58.Decode(x)
		if err != nil {
			return k, fmt.Errorf("%w: %q is not base58", ErrTypeMismatch, x)
		}
		if len(raw) != solana.PublicKeyLength {
			return k, fmt.Errorf("%w: %q decodes to %d bytes", ErrSizeMismatch, x, len(raw))
		}
		copy(k[:], raw)
		return k, nil
	default:
		return k, fmt.Errorf("%w: %T is not a public key", ErrTypeMismatch, v)
	}
}

func toString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	default:
		return "", fmt.Errorf("%w: %T is not a string", ErrTypeMismatch, v)
	}
}

func toRecord(v any) (Record, error) {
	switch x := v.(type) {
	case Record:
		return x, nil
	case map[string]any:
		return Record(x), nil
	case map[any]any:
		r := make(Record, len(x))
		for k, val := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: map key %T", ErrTypeMismatch, k)
			}
			r[ks] = val
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a record", ErrTypeMismatch, v)
	}
}
