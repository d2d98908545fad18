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

// NewUnmaskCommand creates the unmask subcommand: it recovers the
// identifier carried by one or more tokens, printing each as hex.
func NewUnmaskCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unmask [flags] token...",
		Short: "Recover the identifier carried by one or more tokens",
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

			return runBatch(cfg, func(token string) (string, error) {
				id, err := engine.Unmask(token)
				if err != nil {
					return "", err
				}

				return hex.EncodeToString(id), nil
			})
		},
	}

	cmd.Flags().IntVar(&cfg.Engine, "engine", 16, "Engine width in bytes (8 or 16)")
	cmd.Flags().StringVar(&cfg.KeyStore, "key-store", "", "Path to the key store JSON file")
	cmd.Flags().BoolVar(&cfg.Randomize, "randomize", false, "Tokens were minted in randomized mode")
	cmd.Flags().BoolVar(&cfg.HighSecurity, "high-security", false, "Tokens carry a 16-byte MAC (16-byte engine only)")
	cmd.Flags().IntVarP(&cfg.Parallel, "parallel", "j", 1, "Number of parallel workers")
	cmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress per-item output")
	cmd.Flags().BoolVar(&cfg.Stats, "stats", false, "Print a summary after processing")

	return cmd
}
