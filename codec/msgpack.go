package codec

import (
	"github.com/unkn0wn-root/acctlayout"
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack carries records as msgpack maps of acctlayout.Plain values.
// The zero value is ready to use.
type Msgpack struct{}

var _ Codec[acctlayout.Record] = Msgpack{}

func (Msgpack) Encode(rec acctlayout.Record) ([]byte, error) {
	return msgpack.Marshal(acctlayout.Plain(rec))
}

func (Msgpack) Decode(b []byte) (acctlayout.Record, error) {
	var m map[string]any
	if err := msgpack.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return acctlayout.Record(m), nil
}
