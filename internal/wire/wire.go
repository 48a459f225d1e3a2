// Package wire holds the little-endian primitives shared by every field
// layout: bounds checks, big integer import/export in both signednesses and
// the length-prefixed byte run used for strings.
package wire

import (
	"encoding/binary"
	"errors"
	"math"
	"math/big"
)

const (
	KeySize = 32

	// u32 length | u32 padding word
	StringHeader = 4 + 4
)

var (
	ErrBufferUnderflow = errors.New("acctlayout: buffer underflow")
	ErrOverflow        = errors.New("acctlayout: value out of range")
	ErrInvalidSign     = errors.New("acctlayout: negative value for unsigned field")
	ErrSizeMismatch    = errors.New("acctlayout: identifier size mismatch")
	ErrInvalidEncoding = errors.New("acctlayout: invalid utf-8")
)

var one = big.NewInt(1)

// Check returns ErrBufferUnderflow unless [off, off+n) lies inside b.
func Check(b []byte, off, n int) error {
	if off < 0 || n < 0 || off > len(b) || n > len(b)-off { // overflow-safe
		return ErrBufferUnderflow
	}
	return nil
}

// Uint reads width little-endian bytes at off as a non-negative integer.
func Uint(b []byte, off, width int) (*big.Int, error) {
	if err := Check(b, off, width); err != nil {
		return nil, err
	}
	be := make([]byte, width)
	for i := 0; i < width; i++ {
		be[i] = b[off+width-1-i]
	}
	return new(big.Int).SetBytes(be), nil
}

// Int reads width little-endian bytes at off as a two's-complement integer.
// The sign lives in the top bit of the last byte.
func Int(b []byte, off, width int) (*big.Int, error) {
	if err := Check(b, off, width); err != nil {
		return nil, err
	}
	if b[off+width-1]&0x80 == 0 {
		return Uint(b, off, width)
	}
	// invert + reverse in one pass, then -(inv+1)
	inv := make([]byte, width)
	for i := 0; i < width; i++ {
		inv[i] = ^b[off+width-1-i]
	}
	v := new(big.Int).SetBytes(inv)
	v.Add(v, one)
	return v.Neg(v), nil
}

// PutUint writes v as exactly width little-endian bytes at off, zero-filling
// the high end. Nothing is written on error.
func PutUint(b []byte, off, width int, v *big.Int) error {
	if v.Sign() < 0 {
		return ErrInvalidSign
	}
	if !UintFits(v, width) {
		return ErrOverflow
	}
	if err := Check(b, off, width); err != nil {
		return err
	}
	putLE(b[off:off+width], v.Bytes())
	return nil
}

// PutInt writes v in two's complement as exactly width little-endian bytes.
// Negative values are stored as 2^(8*width) + v, which carries the 0xFF sign
// extension into every high byte the magnitude does not reach.
func PutInt(b []byte, off, width int, v *big.Int) error {
	if !IntFits(v, width) {
		return ErrOverflow
	}
	if err := Check(b, off, width); err != nil {
		return err
	}
	if v.Sign() >= 0 {
		putLE(b[off:off+width], v.Bytes())
		return nil
	}
	t := new(big.Int).Lsh(one, uint(8*width))
	t.Add(t, v)
	putLE(b[off:off+width], t.Bytes())
	return nil
}

// IntFits reports whether v is in [-2^(8w-1), 2^(8w-1)-1].
func IntFits(v *big.Int, width int) bool {
	limit := 8*width - 1
	if v.Sign() >= 0 {
		return v.BitLen() <= limit
	}
	// -v-1 has the same bit length bound as the positive side
	m := new(big.Int).Neg(v)
	m.Sub(m, one)
	return m.BitLen() <= limit
}

// UintFits reports whether v is in [0, 2^(8w)-1].
func UintFits(v *big.Int, width int) bool {
	return v.Sign() >= 0 && v.BitLen() <= 8*width
}

// putLE zero-fills dst and stores the big-endian digits be reversed into it.
// len(be) <= len(dst) must already hold.
func putLE(dst, be []byte) {
	for i := range dst {
		dst[i] = 0
	}
	for i, c := range be {
		dst[len(be)-1-i] = c
	}
}

// LenPrefixed returns the run stored at off as
// len(u32 le) | pad(u32) | data(len) and the total bytes it occupies.
// The returned slice aliases b.
func LenPrefixed(b []byte, off int) (data []byte, n int, err error) {
	if err := Check(b, off, StringHeader); err != nil {
		return nil, 0, err
	}
	l := binary.LittleEndian.Uint32(b[off : off+4])
	start := off + StringHeader
	if uint64(l) > uint64(len(b)-start) {
		return nil, 0, ErrBufferUnderflow
	}
	end := start + int(l)
	return b[start:end], StringHeader + int(l), nil
}

// PutLenPrefixed writes data in the layout read by LenPrefixed with a zero
// padding word and returns the bytes written. Nothing is written on error.
func PutLenPrefixed(b []byte, off int, data []byte) (int, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return 0, ErrOverflow
	}
	n := StringHeader + len(data)
	if err := Check(b, off, n); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint32(b[off:off+4], uint32(len(data)))
	binary.LittleEndian.PutUint32(b[off+4:off+8], 0)
	copy(b[off+StringHeader:off+n], data)
	return n, nil
}
