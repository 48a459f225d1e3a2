package acctlayout

import (
	"fmt"
	"math/big"

	"github.com/unkn0wn-root/acctlayout/internal/wire"
)

// UintField is an unsigned little-endian integer of 8 or 16 bytes.
type UintField struct {
	name  string
	width int
}

// IntField is a two's-complement little-endian integer of 8 or 16 bytes.
type IntField struct {
	name  string
	width int
}

var (
	_ Field[*big.Int] = UintField{}
	_ Field[*big.Int] = IntField{}
)

func checkWidth(kind string, width int) {
	if width != 8 && width != 16 {
		panic(fmt.Sprintf("acctlayout: unsupported %s width %d (want 8 or 16)", kind, width))
	}
}

// Uint returns an unsigned field of width bytes. It panics unless width is
// 8 or 16. An empty name means "uint64" or "uint128".
func Uint(name string, width int) UintField {
	checkWidth("uint", width)
	def := defaultUint64Name
	if width == 16 {
		def = defaultUint128Name
	}
	return UintField{name: coalesce(name, def), width: width}
}

func U64(name string) UintField  { return Uint(name, 8) }
func U128(name string) UintField { return Uint(name, 16) }

// Int returns a signed field of width bytes. It panics unless width is
// 8 or 16. An empty name means "int64" or "int128".
func Int(name string, width int) IntField {
	checkWidth("int", width)
	def := defaultInt64Name
	if width == 16 {
		def = defaultInt128Name
	}
	return IntField{name: coalesce(name, def), width: width}
}

func I64(name string) IntField  { return Int(name, 8) }
func I128(name string) IntField { return Int(name, 16) }

func (f UintField) Property() string { return f.name }
func (f UintField) Width() int       { return f.width }

func (f UintField) Span(b []byte, off int) (int, error) {
	if err := wire.Check(b, off, f.width); err != nil {
		return 0, decodeErr(f.name, off, err)
	}
	return f.width, nil
}

func (f UintField) SizeOf(any) (int, error) { return f.width, nil }

func (f UintField) Decode(b []byte, off int) (*big.Int, error) {
	v, err := wire.Uint(b, off, f.width)
	if err != nil {
		return nil, decodeErr(f.name, off, err)
	}
	return v, nil
}

func (f UintField) Encode(v *big.Int, b []byte, off int) (int, error) {
	if v == nil {
		return 0, encodeErr(f.name, off, fmt.Errorf("%w: nil *big.Int", ErrTypeMismatch))
	}
	if err := wire.PutUint(b, off, f.width, v); err != nil {
		return 0, encodeErr(f.name, off, err)
	}
	return f.width, nil
}

func (f UintField) DecodeAny(b []byte, off int) (any, error) { return f.Decode(b, off) }

func (f UintField) EncodeAny(v any, b []byte, off int) (int, error) {
	n, err := toBig(v)
	if err != nil {
		return 0, encodeErr(f.name, off, err)
	}
	return f.Encode(n, b, off)
}

func (f IntField) Property() string { return f.name }
func (f IntField) Width() int       { return f.width }

func (f IntField) Span(b []byte, off int) (int, error) {
	if err := wire.Check(b, off, f.width); err != nil {
		return 0, decodeErr(f.name, off, err)
	}
	return f.width, nil
}

func (f IntField) SizeOf(any) (int, error) { return f.width, nil }

func (f IntField) Decode(b []byte, off int) (*big.Int, error) {
	v, err := wire.Int(b, off, f.width)
	if err != nil {
		return nil, decodeErr(f.name, off, err)
	}
	return v, nil
}

func (f IntField) Encode(v *big.Int, b []byte, off int) (int, error) {
	if v == nil {
		return 0, encodeErr(f.name, off, fmt.Errorf("%w: nil *big.Int", ErrTypeMismatch))
	}
	if err := wire.PutInt(b, off, f.width, v); err != nil {
		return 0, encodeErr(f.name, off, err)
	}
	return f.width, nil
}

func (f IntField) DecodeAny(b []byte, off int) (any, error) { return f.Decode(b, off) }

func (f IntField) EncodeAny(v any, b []byte, off int) (int, error) {
	n, err := toBig(v)
	if err != nil {
		return 0, encodeErr(f.name, off, err)
	}
	return f.Encode(n, b, off)
}
