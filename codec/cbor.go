package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/unkn0wn-root/acctlayout"
)

// CBOR carries records as CBOR maps of acctlayout.Plain values using
// fxamacker/cbor. The zero value is NOT ready to use. Construct with
// NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs (e.g., hashing snapshots).
// Otherwise PreferredUnsortedEncOptions are used (sensible defaults).
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[acctlayout.Record] = CBOR{}

// NewCBOR constructs a CBOR codec. Nested maps decode as map[string]any so
// decoded records can be encoded by a Layout directly.
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Handy for package-level variables in tests and the CLI.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(rec acctlayout.Record) ([]byte, error) {
	return c.enc.Marshal(acctlayout.Plain(rec))
}

func (c CBOR) Decode(b []byte) (acctlayout.Record, error) {
	var m map[string]any
	if err := c.dec.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return acctlayout.Record(m), nil
}
