package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/idmask/entropy"
	"github.com/idelchi/idmask/keystore"
)

// NewKeygenCommand creates the keygen subcommand: it generates a new
// SecretKey from the system entropy source and prints it hex-encoded,
// alongside the id it was minted for.
func NewKeygenCommand() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new secret key",
		RunE: func(_ *cobra.Command, _ []string) error {
			key, err := keystore.GenerateSecretKey(id, entropy.System{})
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			raw := key.Bytes()
			defer clear(raw)

			fmt.Printf("id=%d key=%s\n", key.ID(), hex.EncodeToString(raw)) //nolint:forbidigo

			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Key id to mint, in [0, 15]")

	return cmd
}
