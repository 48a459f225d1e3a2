package codec

import (
	"fmt"

	"github.com/unkn0wn-root/acctlayout"
)

// Layout is a Codec for a whole account buffer described by a struct layout.
// The zero value is NOT ready to use. Construct with NewLayout.
type Layout struct {
	s      *acctlayout.StructLayout
	strict bool
	hooks  acctlayout.Hooks
}

var _ Codec[acctlayout.Record] = Layout{}

// NewLayout returns a codec over s. When strict is true Decode rejects
// buffers with bytes after the last member; account data is often
// allocated larger than its layout, so the default is lenient.
func NewLayout(s *acctlayout.StructLayout, strict bool) Layout {
	return Layout{s: s, strict: strict, hooks: acctlayout.NopHooks{}}
}

// WithHooks returns a copy that reports trailing bytes to h.
func (c Layout) WithHooks(h acctlayout.Hooks) Layout {
	if h == nil {
		h = acctlayout.NopHooks{}
	}
	c.hooks = h
	return c
}

// Encode allocates exactly the bytes rec needs and encodes it.
func (c Layout) Encode(rec acctlayout.Record) ([]byte, error) {
	n, err := c.s.SizeOf(rec)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := c.s.Encode(rec, b, 0); err != nil {
		return nil, err
	}
	return b, nil
}

func (c Layout) Decode(b []byte) (acctlayout.Record, error) {
	rec, err := c.s.Decode(b, 0)
	if err != nil {
		return nil, err
	}
	if c.strict {
		n, err := c.s.Span(b, 0)
		if err != nil {
			return nil, err
		}
		if extra := len(b) - n; extra > 0 {
			c.hooks.TrailingBytes(c.s.Property(), extra)
			return nil, fmt.Errorf("%w: %d after %q", acctlayout.ErrTrailingBytes, extra, c.s.Property())
		}
	}
	return rec, nil
}
