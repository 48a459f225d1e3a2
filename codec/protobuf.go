package codec

import (
	"github.com/unkn0wn-root/acctlayout"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Protobuf carries records as a google.protobuf.Struct message, so any
// protobuf consumer can read them without a generated schema.
type Protobuf struct {
	// Deterministic orders map entries for byte-stable output.
	Deterministic bool
}

var _ Codec[acctlayout.Record] = Protobuf{}

func (c Protobuf) Encode(rec acctlayout.Record) ([]byte, error) {
	s, err := structpb.NewStruct(acctlayout.Plain(rec))
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: c.Deterministic}.Marshal(s)
}

func (Protobuf) Decode(b []byte) (acctlayout.Record, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return acctlayout.Record(s.AsMap()), nil
}
