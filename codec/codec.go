// Package codec turns whole account buffers into records and records into
// the serialization formats downstream consumers read.
//
// Layout is the binary codec for an acctlayout struct layout. JSON, CBOR,
// Msgpack and Protobuf carry the same records through acctlayout.Plain, and
// anything they decode can be fed back to Layout.Encode.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
