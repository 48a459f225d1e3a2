package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSpanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "span [DATA|-|@file]",
		Short: "Print how many bytes the layout occupies, or where a field starts",
		Long: `Print the number of bytes the layout occupies in the data. With --field,
print the byte offset of that top-level field instead. Fixed-width layouts
need no data.

Example:
  acctlayout span -s reserve.yaml --in hex 0100000000000000...
  acctlayout span -s reserve.yaml --field label @account.bin --in raw`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inEnc, _ := cmd.Flags().GetString("in")
			field, _ := cmd.Flags().GetString("field")

			if n, fixed := a.layout.FixedSize(); fixed && field == "" {
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}

			raw, err := readArg(cmd, args)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			data, err := decodeBytes(raw, inEnc)
			if err != nil {
				return fmt.Errorf("failed to decode input: %w", err)
			}

			var n int
			if field != "" {
				n, err = a.layout.Offset(field, data)
			} else {
				n, err = a.layout.Span(data, 0)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().String("in", "base64", "Input encoding: raw, hex or base64")
	cmd.Flags().String("field", "", "Print the offset of this top-level field")
	return cmd
}
