package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/acctlayout"
	"github.com/unkn0wn-root/acctlayout/codec"
	"github.com/unkn0wn-root/acctlayout/internal/schema"
	zaplog "github.com/unkn0wn-root/acctlayout/log/zap"
	"go.uber.org/zap"
)

// app is what PersistentPreRunE prepares for the subcommands.
type app struct {
	layout *acctlayout.StructLayout
	log    *zap.Logger
}

// NewRootCmd builds the command tree. Each call returns independent flags.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "acctlayout",
		Short: "Decode and encode ledger account data with a YAML layout",
		Long: `acctlayout walks a struct layout described in YAML over raw account
data (u64/u128/i64/i128 little-endian integers, 32-byte public keys and
length-prefixed strings) and converts between the binary form and
JSON, CBOR, msgpack or protobuf.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			l, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			a.log = l

			path, _ := cmd.Flags().GetString("schema")
			if path == "" {
				return fmt.Errorf("--schema is required")
			}
			s, err := schema.Load(path)
			if err != nil {
				return err
			}
			st, err := s.Compile()
			if err != nil {
				return err
			}
			a.layout = st.WithLogger(zaplog.ZapLogger{L: l})
			a.log.Debug("layout loaded", zap.String("schema", path), zap.String("layout", st.Property()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringP("schema", "s", "", "YAML layout schema")
	root.PersistentFlags().BoolP("verbose", "v", false, "Debug logging to stderr")

	root.AddCommand(newDecodeCmd(a), newEncodeCmd(a), newSpanCmd(a))
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// accountCodec bounds account data before the layout walks it.
func (a *app) accountCodec(strict bool, maxSize int) codec.Codec[acctlayout.Record] {
	return codec.Limit[acctlayout.Record]{
		Inner:     codec.NewLayout(a.layout, strict),
		MaxDecode: maxSize,
		MaxEncode: maxSize,
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
