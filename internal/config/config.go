// Package config defines the CLI-facing configuration for the idmask
// command, bound from flags and environment variables and validated with
// struct tags.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the flags shared by the mask and unmask subcommands.
type Config struct {
	// KeyStore is the path to the JSON key-store file.
	KeyStore string `validate:"required"`

	// Engine selects the plaintext width: 8 or 16.
	Engine int `validate:"oneof=8 16"`

	// Randomize selects randomized mode over deterministic mode.
	Randomize bool

	// HighSecurity selects a 16-byte MAC for the 16-byte engine instead of
	// the 8-byte default. Ignored by the 8-byte engine.
	HighSecurity bool

	// Hex treats mask's positional arguments as hex-encoded bytes rather
	// than UTF-8 strings. It does not affect unmask, whose output is
	// always hex.
	Hex bool

	// Parallel is the number of concurrent workers used in batch mode.
	Parallel int

	// Quiet suppresses per-item output; only errors and the final stats
	// block (if requested) are printed.
	Quiet bool

	// Stats prints a scanned/processed/errored/duration summary to stderr.
	Stats bool

	// Args are the positional identifiers (mask) or tokens (unmask).
	Args []string `validate:"min=1"`
}

// Validate validates the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
