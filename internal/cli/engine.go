package cli

import (
	"fmt"

	"github.com/idelchi/idmask"
	"github.com/idelchi/idmask/entropy"
	"github.com/idelchi/idmask/internal/config"
	"github.com/idelchi/idmask/keystore"
)

// buildEngine constructs the Engine named by cfg.Engine, bound to store.
func buildEngine(cfg *config.Config, store *keystore.Store) (idmask.Engine, error) {
	source := entropy.System{}

	switch cfg.Engine {
	case 8:
		return idmask.NewEngine8(store, cfg.Randomize, source), nil
	case 16:
		return idmask.NewEngine16(store, cfg.Randomize, cfg.HighSecurity, source), nil
	default:
		return nil, fmt.Errorf("%w: engine %d", idmask.ErrInvalidEngineID, cfg.Engine)
	}
}
