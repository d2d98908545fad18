package config_test

import (
	"testing"

	"github.com/idelchi/idmask/internal/config"
)

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		KeyStore: "keys.json",
		Engine:   16,
		Parallel: 4,
		Args:     []string{"abc"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsMissingKeyStore(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Engine: 16,
		Args:   []string{"abc"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate: want error for missing key store path")
	}
}

func TestValidateRejectsUnsupportedEngine(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		KeyStore: "keys.json",
		Engine:   12,
		Args:     []string{"abc"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate: want error for unsupported engine width")
	}
}

func TestValidateRejectsNoArgs(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		KeyStore: "keys.json",
		Engine:   8,
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate: want error for empty Args")
	}
}
