package codec

import (
	"fmt"

	"github.com/unkn0wn-root/acctlayout"
)

// MaxAccountData is the largest account data size the ledger permits (10 MiB).
const MaxAccountData = 10 << 20

// Limit wraps another codec to enforce maximum payload sizes.
// A limit <= 0 disables that direction.
//
// Typical use: refuse oversized buffers from an untrusted RPC node before
// walking a layout over them.
type Limit[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]

	// MaxDecode bounds the incoming payload; Inner is not invoked above it.
	MaxDecode int

	// MaxEncode bounds the produced payload.
	MaxEncode int

	// Hooks, if set, is told about every rejected payload.
	Hooks acctlayout.Hooks
}

func (c Limit[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if err := c.check(len(b), c.MaxEncode); err != nil {
		return nil, err
	}
	return b, nil
}

func (c Limit[V]) Decode(b []byte) (V, error) {
	if err := c.check(len(b), c.MaxDecode); err != nil {
		var zero V
		return zero, err
	}
	return c.Inner.Decode(b)
}

func (c Limit[V]) check(size, limit int) error {
	if limit <= 0 || size <= limit {
		return nil
	}
	if c.Hooks != nil {
		c.Hooks.PayloadRejected(size, limit)
	}
	return fmt.Errorf("%w: %d > %d", acctlayout.ErrTooLarge, size, limit)
}
