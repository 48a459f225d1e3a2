package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/acctlayout/codec"
	"go.uber.org/zap"
)

func newEncodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [JSON|-|@file]",
		Short: "Encode a JSON record into account data",
		Long: `Encode a JSON record with the schema's layout. Integers may be JSON
numbers or decimal strings; public keys are base58 strings.

Example:
  acctlayout encode -s reserve.yaml '{"version":"1","market":"1111...","label":"x"}'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outEnc, _ := cmd.Flags().GetString("out")
			maxSize, _ := cmd.Flags().GetInt("max-size")

			raw, err := readArg(cmd, args)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			rec, err := codec.JSON{}.Decode(raw)
			if err != nil {
				return fmt.Errorf("invalid JSON record: %w", err)
			}
			data, err := a.accountCodec(false, maxSize).Encode(rec)
			if err != nil {
				return err
			}
			a.log.Debug("encoded account", zap.Int("bytes", len(data)))

			b, err := encodeBytes(data, outEnc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().String("out", "base64", "Output encoding: raw, hex or base64")
	cmd.Flags().Int("max-size", codec.MaxAccountData, "Largest produced account size in bytes (0 = no limit)")
	return cmd
}
