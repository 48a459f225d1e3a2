package codec

import (
	"bytes"
	"encoding/json"

	"github.com/unkn0wn-root/acctlayout"
)

// JSON carries records as JSON objects of acctlayout.Plain values.
// Decode keeps numbers as json.Number so integers written by hand beyond
// 2^53 survive the trip back to Layout.
type JSON struct{}

var _ Codec[acctlayout.Record] = JSON{}

func (JSON) Encode(rec acctlayout.Record) ([]byte, error) {
	return json.Marshal(acctlayout.Plain(rec))
}

func (JSON) Decode(b []byte) (acctlayout.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return acctlayout.Record(m), nil
}
