package cli

import "github.com/idelchi/idmask/internal/config"

// configValidator adapts *config.Config to the cobraext.Validator interface
// expected by cobraext.Validate.
type configValidator struct {
	cfg *config.Config
}

// Validate validates the wrapped configuration against its struct tags.
func (v configValidator) Validate(any) error {
	return v.cfg.Validate()
}

// Display reports whether the configuration should be printed instead of
// validated. idmask has no such flag, so this is always false.
func (v configValidator) Display() bool {
	return false
}
