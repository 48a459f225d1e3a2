package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/acctlayout/codec"
	"go.uber.org/zap"
)

func newDecodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [DATA|-|@file]",
		Short: "Decode account data into a record",
		Long: `Decode account data with the schema's layout and print the record.

Example:
  acctlayout decode -s reserve.yaml --in base64 AQAAAAAAAAA...
  solana account <addr> --output json | jq -r '.account.data[0]' | acctlayout decode -s reserve.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inEnc, _ := cmd.Flags().GetString("in")
			format, _ := cmd.Flags().GetString("format")
			strict, _ := cmd.Flags().GetBool("strict")
			maxSize, _ := cmd.Flags().GetInt("max-size")

			out, err := exportCodec(format)
			if err != nil {
				return err
			}
			raw, err := readArg(cmd, args)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			data, err := decodeBytes(raw, inEnc)
			if err != nil {
				return fmt.Errorf("failed to decode input: %w", err)
			}

			rec, err := a.accountCodec(strict, maxSize).Decode(data)
			if err != nil {
				return err
			}
			a.log.Debug("decoded account", zap.Int("bytes", len(data)), zap.Int("fields", len(rec)))

			b, err := out.Encode(rec)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", format, err)
			}
			if format == "json" {
				b = append(b, '\n')
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().String("in", "base64", "Input encoding: raw, hex or base64")
	cmd.Flags().StringP("format", "f", "json", "Output format: json, cbor, msgpack or proto")
	cmd.Flags().Bool("strict", false, "Reject bytes after the last field")
	cmd.Flags().Int("max-size", codec.MaxAccountData, "Largest accepted account size in bytes (0 = no limit)")
	return cmd
}
