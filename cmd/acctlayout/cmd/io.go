package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/acctlayout"
	"github.com/unkn0wn-root/acctlayout/codec"
)

// readArg returns the data argument: "-" or no argument reads stdin,
// "@path" reads a file, anything else is used as is.
func readArg(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	if p, ok := strings.CutPrefix(args[0], "@"); ok {
		return os.ReadFile(p)
	}
	return []byte(args[0]), nil
}

func decodeBytes(in []byte, enc string) ([]byte, error) {
	switch enc {
	case "raw":
		return in, nil
	case "hex":
		return hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(string(in)), "0x"))
	case "base64":
		return base64.StdEncoding.DecodeString(strings.TrimSpace(string(in)))
	default:
		return nil, fmt.Errorf("unknown input encoding %q (want raw, hex or base64)", enc)
	}
}

func encodeBytes(b []byte, enc string) ([]byte, error) {
	switch enc {
	case "raw":
		return b, nil
	case "hex":
		return []byte(hex.EncodeToString(b) + "\n"), nil
	case "base64":
		return []byte(base64.StdEncoding.EncodeToString(b) + "\n"), nil
	default:
		return nil, fmt.Errorf("unknown output encoding %q (want raw, hex or base64)", enc)
	}
}

// exportCodec picks the serialization for decoded records.
func exportCodec(format string) (codec.Codec[acctlayout.Record], error) {
	switch format {
	case "json":
		return codec.JSON{}, nil
	case "cbor":
		return codec.MustCBOR(true), nil
	case "msgpack":
		return codec.Msgpack{}, nil
	case "proto":
		return codec.Protobuf{Deterministic: true}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json, cbor, msgpack or proto)", format)
	}
}
