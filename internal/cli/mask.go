package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/idmask/internal/config"
	"github.com/idelchi/idmask/internal/keystorefile"
)

// NewMaskCommand creates the mask subcommand: it masks one or more
// identifiers using the engine and key store named by flags.
func NewMaskCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask [flags] id...",
		Short: "Mask one or more identifiers into opaque tokens",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			if cfg.KeyStore == "" {
				cfg.KeyStore = viper.GetString("key-store")
			}

			cfg.Args = args

			return cobraext.Validate(configValidator{cfg}, cfg)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := keystorefile.Load(cfg.KeyStore)
			if err != nil {
				return err
			}

			engine, err := buildEngine(cfg, store)
			if err != nil {
				return err
			}

			return runBatch(cfg, func(arg string) (string, error) {
				id, err := parseIdentifier(arg, cfg.Hex)
				if err != nil {
					return "", err
				}

				return engine.Mask(id)
			})
		},
	}

	cmd.Flags().IntVar(&cfg.Engine, "engine", 16, "Engine width in bytes (8 or 16)")
	cmd.Flags().StringVar(&cfg.KeyStore, "key-store", "", "Path to the key store JSON file")
	cmd.Flags().BoolVar(&cfg.Randomize, "randomize", false, "Use randomized mode instead of deterministic")
	cmd.Flags().BoolVar(&cfg.HighSecurity, "high-security", false, "Use a 16-byte MAC (16-byte engine only)")
	cmd.Flags().BoolVar(&cfg.Hex, "hex", false, "Treat each identifier as hex-encoded bytes")
	cmd.Flags().IntVarP(&cfg.Parallel, "parallel", "j", 1, "Number of parallel workers")
	cmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress per-item output")
	cmd.Flags().BoolVar(&cfg.Stats, "stats", false, "Print a summary after processing")

	return cmd
}

// parseIdentifier converts a CLI argument into identifier bytes: hex-decoded
// if asHex, otherwise the argument's literal UTF-8 bytes (which is how a
// decimal integer string like "123" is masked identically to MaskInt).
func parseIdentifier(arg string, asHex bool) ([]byte, error) {
	if !asHex {
		return []byte(arg), nil
	}

	id, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("decoding hex identifier %q: %w", arg, err)
	}

	return id, nil
}
