package acctlayout

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
)

// Plain returns a copy of rec that every generic serializer can carry
// losslessly: integers become decimal strings, keys become base58 strings
// and nested records become map[string]any. Every field's EncodeAny accepts
// the plain form back.
func Plain(rec Record) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch x := v.(type) {
	case *big.Int:
		return x.String()
	case solana.PublicKey:
		return x.String()
	case Record:
		return Plain(x)
	case map[string]any:
		return Plain(Record(x))
	default:
		return v
	}
}
