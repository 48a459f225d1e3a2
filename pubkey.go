package acctlayout

import (
	"github.com/gagliardetto/solana-go"
	"github.com/unkn0wn-root/acctlayout/internal/wire"
)

// PublicKeyField is a 32-byte account identifier stored verbatim.
type PublicKeyField struct{ name string }

var _ Field[solana.PublicKey] = PublicKeyField{}

// PublicKey returns a 32-byte key field. An empty name means "publicKey".
func PublicKey(name string) PublicKeyField {
	return PublicKeyField{name: coalesce(name, defaultKeyName)}
}

func (f PublicKeyField) Property() string { return f.name }

func (f PublicKeyField) Span(b []byte, off int) (int, error) {
	if err := wire.Check(b, off, wire.KeySize); err != nil {
		return 0, decodeErr(f.name, off, err)
	}
	return wire.KeySize, nil
}

func (f PublicKeyField) SizeOf(any) (int, error) { return wire.KeySize, nil }

// Decode copies the key out of b; the result does not alias b.
func (f PublicKeyField) Decode(b []byte, off int) (solana.PublicKey, error) {
	var k solana.PublicKey
	if err := wire.Check(b, off, wire.KeySize); err != nil {
		return k, decodeErr(f.name, off, err)
	}
	copy(k[:], b[off:off+wire.KeySize])
	return k, nil
}

func (f PublicKeyField) Encode(k solana.PublicKey, b []byte, off int) (int, error) {
	if err := wire.Check(b, off, wire.KeySize); err != nil {
		return 0, encodeErr(f.name, off, err)
	}
	copy(b[off:off+wire.KeySize], k[:])
	return wire.KeySize, nil
}

// EncodeBytes writes a raw identifier, which must be exactly 32 bytes.
func (f PublicKeyField) EncodeBytes(raw []byte, b []byte, off int) (int, error) {
	k, err := toKey(raw)
	if err != nil {
		return 0, encodeErr(f.name, off, err)
	}
	return f.Encode(k, b, off)
}

func (f PublicKeyField) DecodeAny(b []byte, off int) (any, error) { return f.Decode(b, off) }

func (f PublicKeyField) EncodeAny(v any, b []byte, off int) (int, error) {
	k, err := toKey(v)
	if err != nil {
		return 0, encodeErr(f.name, off, err)
	}
	return f.Encode(k, b, off)
}
