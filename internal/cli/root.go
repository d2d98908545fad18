// Package cli wires the idmask command-line interface: an external
// collaborator over the core Engine/KeyStore API, carrying none of the
// package's security-critical logic itself.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/idmask/internal/config"
)

// NewRootCommand creates the root command with the keygen, mask, and
// unmask subcommands attached. When --key-store is not given, the key
// store path is taken from the IDMASK_KEY_STORE environment variable;
// the other flags are read from the command line only.
func NewRootCommand(version string) *cobra.Command {
	viper.SetEnvPrefix("idmask")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "idmask [flags] command [flags]"
	root.Short = "Reversible, authenticated identifier masking"
	root.Long = `Masks small application identifiers into opaque, unforgeable, URL-safe
tokens, and recovers them again. Supports deterministic and randomized
modes and key rotation via a versioned key store.`

	var cfg config.Config

	root.AddCommand(NewKeygenCommand(), NewMaskCommand(&cfg), NewUnmaskCommand(&cfg))

	return root
}
