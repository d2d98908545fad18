// Package keystorefile loads a keystore.Store from a small JSON document: a
// CLI demo convenience, not the persistent key catalog a production
// deployment would need (rotation workflow, storage backend, audit trail).
package keystorefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/idelchi/idmask/keystore"
)

// entry is one key record in the JSON file.
type entry struct {
	ID       int    `json:"id"`
	HexBytes string `json:"hex_bytes"`
	Active   bool   `json:"active"`
}

// Load reads path and builds a keystore.Store from its entries. Exactly one
// entry must have Active set.
func Load(path string) (*keystore.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key store file %q: %w", path, err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing key store file %q: %w", path, err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("key store file %q: no keys defined", path)
	}

	var (
		active *keystore.SecretKey
		others []*keystore.SecretKey
	)

	for _, e := range entries {
		key, err := keystore.NewSecretKeyFromHex(e.ID, e.HexBytes)
		if err != nil {
			return nil, fmt.Errorf("key id %d in %q: %w", e.ID, path, err)
		}

		if e.Active {
			if active != nil {
				return nil, fmt.Errorf("key store file %q: more than one active key", path)
			}

			active = key
		} else {
			others = append(others, key)
		}
	}

	if active == nil {
		return nil, fmt.Errorf("key store file %q: no active key designated", path)
	}

	return keystore.New(active, others...)
}

// Save writes store's keys to path as a JSON document, marking activeID as
// the active entry. Key bytes are taken fresh from the store for the
// duration of the write and are not retained afterward.
func Save(path string, store *keystore.Store, activeID int) error {
	var entries []entry

	for id := 0; id <= keystore.MaxKeyID; id++ {
		key, ok := store.Key(id)
		if !ok {
			continue
		}

		raw := key.Bytes()
		entries = append(entries, entry{
			ID:       id,
			HexBytes: fmt.Sprintf("%x", raw),
			Active:   id == activeID,
		})
		clear(raw)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding key store file: %w", err)
	}

	const ownerReadWrite = 0o600

	if err := os.WriteFile(path, data, ownerReadWrite); err != nil {
		return fmt.Errorf("writing key store file %q: %w", path, err)
	}

	return nil
}
