package acctlayout

import (
	"unicode/utf8"

	"github.com/unkn0wn-root/acctlayout/internal/wire"
)

// StringField is a UTF-8 string stored as
// len(u32 le) | pad(u32, zero) | bytes(len).
// Its width depends on the value: 8 + len(s) bytes.
type StringField struct{ name string }

var _ Field[string] = StringField{}

// String returns a length-prefixed string field. An empty name means "string".
func String(name string) StringField {
	return StringField{name: coalesce(name, defaultStringName)}
}

// StringSize is the number of bytes s occupies on the wire.
func StringSize(s string) int { return wire.StringHeader + len(s) }

func (f StringField) Property() string { return f.name }

func (f StringField) Span(b []byte, off int) (int, error) {
	_, n, err := wire.LenPrefixed(b, off)
	if err != nil {
		return 0, decodeErr(f.name, off, err)
	}
	return n, nil
}

func (f StringField) SizeOf(v any) (int, error) {
	s, err := toString(v)
	if err != nil {
		return 0, encodeErr(f.name, 0, err)
	}
	return StringSize(s), nil
}

func (f StringField) Decode(b []byte, off int) (string, error) {
	data, _, err := wire.LenPrefixed(b, off)
	if err != nil {
		return "", decodeErr(f.name, off, err)
	}
	if !utf8.Valid(data) {
		return "", decodeErr(f.name, off, ErrInvalidEncoding)
	}
	return string(data), nil
}

// Encode records the UTF-8 byte length of s, not its rune count.
func (f StringField) Encode(s string, b []byte, off int) (int, error) {
	if !utf8.ValidString(s) {
		return 0, encodeErr(f.name, off, ErrInvalidEncoding)
	}
	n, err := wire.PutLenPrefixed(b, off, []byte(s))
	if err != nil {
		return 0, encodeErr(f.name, off, err)
	}
	return n, nil
}

func (f StringField) DecodeAny(b []byte, off int) (any, error) { return f.Decode(b, off) }

func (f StringField) EncodeAny(v any, b []byte, off int) (int, error) {
	s, err := toString(v)
	if err != nil {
		return 0, encodeErr(f.name, off, err)
	}
	return f.Encode(s, b, off)
}
