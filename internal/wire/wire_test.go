package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"
)

func pow2(n uint) *big.Int { return new(big.Int).Lsh(big.NewInt(1), n) }

func mustUint(t *testing.T, b []byte, off, width int) *big.Int {
	t.Helper()
	v, err := Uint(b, off, width)
	if err != nil {
		t.Fatalf("Uint error: %v", err)
	}
	return v
}

func mustInt(t *testing.T, b []byte, off, width int) *big.Int {
	t.Helper()
	v, err := Int(b, off, width)
	if err != nil {
		t.Fatalf("Int error: %v", err)
	}
	return v
}

func TestCheckBounds(t *testing.T) {
	b := make([]byte, 8)
	cases := []struct {
		off, n int
		ok     bool
	}{
		{0, 8, true},
		{8, 0, true},
		{4, 4, true},
		{1, 8, false},
		{9, 0, false},
		{-1, 1, false},
		{0, -1, false},
		{math.MaxInt, 1, false},
		{1, math.MaxInt, false},
	}
	for _, tc := range cases {
		err := Check(b, tc.off, tc.n)
		if tc.ok && err != nil {
			t.Fatalf("Check(%d,%d): unexpected %v", tc.off, tc.n, err)
		}
		if !tc.ok && !errors.Is(err, ErrBufferUnderflow) {
			t.Fatalf("Check(%d,%d): want underflow, got %v", tc.off, tc.n, err)
		}
	}
}

func TestUintLittleEndian(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	got := mustUint(t, b, 0, 8)
	if got.Uint64() != binary.LittleEndian.Uint64(b) {
		t.Fatalf("got %x want %x", got, binary.LittleEndian.Uint64(b))
	}

	// leading zero bytes on the high end must not shift digits
	b = []byte{0xAB, 0, 0, 0, 0, 0, 0, 0}
	if got := mustUint(t, b, 0, 8); got.Int64() != 0xAB {
		t.Fatalf("got %s want 171", got)
	}
}

func TestUintRT(t *testing.T) {
	cases := []struct {
		width int
		v     *big.Int
	}{
		{8, big.NewInt(0)},
		{8, big.NewInt(1)},
		{8, new(big.Int).Sub(pow2(64), big.NewInt(1))},
		{16, big.NewInt(0)},
		{16, pow2(64)},
		{16, new(big.Int).Sub(pow2(128), big.NewInt(1))},
	}
	for _, tc := range cases {
		b := make([]byte, tc.width+3)
		if err := PutUint(b, 3, tc.width, tc.v); err != nil {
			t.Fatalf("PutUint(%s): %v", tc.v, err)
		}
		if got := mustUint(t, b, 3, tc.width); got.Cmp(tc.v) != 0 {
			t.Fatalf("RT mismatch: got %s want %s", got, tc.v)
		}
	}
}

func TestPutUintMaxIsAllFF(t *testing.T) {
	b := make([]byte, 8)
	if err := PutUint(b, 0, 8, new(big.Int).Sub(pow2(64), big.NewInt(1))); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, bytes.Repeat([]byte{0xFF}, 8)) {
		t.Fatalf("got %x", b)
	}
}

func TestPutUintRejects(t *testing.T) {
	b := make([]byte, 8)
	for i := range b {
		b[i] = 0x5A
	}
	orig := append([]byte(nil), b...)

	if err := PutUint(b, 0, 8, big.NewInt(-1)); !errors.Is(err, ErrInvalidSign) {
		t.Fatalf("want invalid sign, got %v", err)
	}
	if err := PutUint(b, 0, 8, pow2(64)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("want overflow, got %v", err)
	}
	if err := PutUint(b, 1, 8, big.NewInt(1)); !errors.Is(err, ErrBufferUnderflow) {
		t.Fatalf("want underflow, got %v", err)
	}
	if !bytes.Equal(b, orig) {
		t.Fatalf("failed writes must not touch the buffer: %x", b)
	}
}

func TestIntRT(t *testing.T) {
	for _, width := range []int{8, 16} {
		bits := uint(8 * width)
		max := new(big.Int).Sub(pow2(bits-1), big.NewInt(1))
		min := new(big.Int).Neg(pow2(bits - 1))
		for _, v := range []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(-1), max, min} {
			b := make([]byte, width)
			if err := PutInt(b, 0, width, v); err != nil {
				t.Fatalf("PutInt(%d, %s): %v", width, v, err)
			}
			if got := mustInt(t, b, 0, width); got.Cmp(v) != 0 {
				t.Fatalf("width %d: got %s want %s", width, got, v)
			}
		}
	}
}

func TestIntMinusOneIsAllFF(t *testing.T) {
	b := make([]byte, 8)
	if err := PutInt(b, 0, 8, big.NewInt(-1)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, bytes.Repeat([]byte{0xFF}, 8)) {
		t.Fatalf("got %x", b)
	}
}

// Every magnitude class must match the native int64 two's-complement layout,
// including values whose minimal form is shorter than 8 bytes.
func TestIntSignExtensionAllMagnitudes(t *testing.T) {
	var vals []int64
	for k := uint(0); k < 63; k++ {
		p := int64(1) << k
		vals = append(vals, p, p-1, -p, -(p - 1), -p-1)
	}
	vals = append(vals, math.MaxInt64, math.MinInt64)

	for _, v := range vals {
		b := make([]byte, 8)
		if err := PutInt(b, 0, 8, big.NewInt(v)); err != nil {
			t.Fatalf("PutInt(%d): %v", v, err)
		}
		want := make([]byte, 8)
		binary.LittleEndian.PutUint64(want, uint64(v))
		if !bytes.Equal(b, want) {
			t.Fatalf("PutInt(%d): got %x want %x", v, b, want)
		}
		if got := mustInt(t, b, 0, 8); got.Int64() != v {
			t.Fatalf("Int(%x): got %s want %d", b, got, v)
		}
	}
}

func TestUintFits(t *testing.T) {
	top := func(w uint) *big.Int { return new(big.Int).Sub(pow2(8*w), big.NewInt(1)) }
	cases := []struct {
		v     *big.Int
		width int
		want  bool
	}{
		{big.NewInt(0), 8, true},
		{top(8), 8, true},
		{pow2(64), 8, false},
		{pow2(64), 16, true},
		{top(16), 16, true},
		{pow2(128), 16, false},
		{big.NewInt(-1), 16, false},
	}
	for _, tc := range cases {
		if got := UintFits(tc.v, tc.width); got != tc.want {
			t.Fatalf("UintFits(%s, %d) = %v, want %v", tc.v, tc.width, got, tc.want)
		}
		err := PutUint(make([]byte, tc.width), 0, tc.width, tc.v)
		if tc.want != (err == nil) {
			t.Fatalf("PutUint(%s, %d) = %v, disagrees with UintFits", tc.v, tc.width, err)
		}
	}
}

func TestIntRange(t *testing.T) {
	b := make([]byte, 8)
	over := pow2(63)
	under := new(big.Int).Sub(new(big.Int).Neg(pow2(63)), big.NewInt(1))
	if err := PutInt(b, 0, 8, over); !errors.Is(err, ErrOverflow) {
		t.Fatalf("2^63: want overflow, got %v", err)
	}
	if err := PutInt(b, 0, 8, under); !errors.Is(err, ErrOverflow) {
		t.Fatalf("-2^63-1: want overflow, got %v", err)
	}
	if !bytes.Equal(b, make([]byte, 8)) {
		t.Fatalf("rejected values must not be written: %x", b)
	}
}

func TestIntShortBuffer(t *testing.T) {
	if _, err := Int(make([]byte, 7), 0, 8); !errors.Is(err, ErrBufferUnderflow) {
		t.Fatalf("want underflow, got %v", err)
	}
	if _, err := Uint(make([]byte, 15), 0, 16); !errors.Is(err, ErrBufferUnderflow) {
		t.Fatalf("want underflow, got %v", err)
	}
}

func TestLenPrefixedRT(t *testing.T) {
	for _, s := range []string{"", "a", "€", strings.Repeat("xyz", 100)} {
		b := make([]byte, 2+StringHeader+len(s))
		n, err := PutLenPrefixed(b, 2, []byte(s))
		if err != nil {
			t.Fatalf("PutLenPrefixed(%q): %v", s, err)
		}
		if n != StringHeader+len(s) {
			t.Fatalf("n=%d want %d", n, StringHeader+len(s))
		}
		data, m, err := LenPrefixed(b, 2)
		if err != nil {
			t.Fatalf("LenPrefixed: %v", err)
		}
		if m != n || string(data) != s {
			t.Fatalf("got %q (%d) want %q (%d)", data, m, s, n)
		}
		if pad := binary.LittleEndian.Uint32(b[6:10]); pad != 0 {
			t.Fatalf("padding word must be zero, got %d", pad)
		}
	}
}

func TestLenPrefixedCorrupt(t *testing.T) {
	b := make([]byte, StringHeader+3)
	if _, err := PutLenPrefixed(b, 0, []byte("abc")); err != nil {
		t.Fatal(err)
	}

	// header cut short
	if _, _, err := LenPrefixed(b[:7], 0); !errors.Is(err, ErrBufferUnderflow) {
		t.Fatalf("want underflow on short header, got %v", err)
	}

	// length beyond remaining
	bad := append([]byte(nil), b...)
	binary.LittleEndian.PutUint32(bad[0:4], 4)
	if _, _, err := LenPrefixed(bad, 0); !errors.Is(err, ErrBufferUnderflow) {
		t.Fatalf("want underflow on long length, got %v", err)
	}

	// huge length must not overflow int arithmetic
	binary.LittleEndian.PutUint32(bad[0:4], math.MaxUint32)
	if _, _, err := LenPrefixed(bad, 0); !errors.Is(err, ErrBufferUnderflow) {
		t.Fatalf("want underflow on max length, got %v", err)
	}

	// padding word is ignored
	pad := append([]byte(nil), b...)
	binary.LittleEndian.PutUint32(pad[4:8], 0xDEADBEEF)
	if data, _, err := LenPrefixed(pad, 0); err != nil || string(data) != "abc" {
		t.Fatalf("padding should be ignored: data=%q err=%v", data, err)
	}
}

func TestPutLenPrefixedNoPartialWrite(t *testing.T) {
	b := make([]byte, StringHeader+2)
	if _, err := PutLenPrefixed(b, 0, []byte("abc")); !errors.Is(err, ErrBufferUnderflow) {
		t.Fatalf("want underflow, got %v", err)
	}
	if !bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("buffer touched on failure: %x", b)
	}
}

func TestLenPrefixedAliasesInput(t *testing.T) {
	b := make([]byte, StringHeader+1)
	if _, err := PutLenPrefixed(b, 0, []byte("X")); err != nil {
		t.Fatal(err)
	}
	data, _, _ := LenPrefixed(b, 0)
	data[0] = 'Q'
	again, _, _ := LenPrefixed(b, 0)
	if again[0] != 'Q' {
		t.Fatalf("expected zero-copy subslice into b")
	}
}
