// Package store provides the key-value persistence layer backing the
// storefront state. Values are JSON blobs; readers treat missing or corrupt
// data as absent and fall back to empty defaults.
package store

import "encoding/json"

// Storage keys. These match the records of the original stored data so an
// existing dataset can be migrated as-is.
const (
	KeyProducts  = "produtosData"
	KeyCart      = "carrinho"
	KeyFavorites = "favoritos"
	KeyOrders    = "encomendas"
	KeyCustomers = "clientes"
	KeyAdmins    = "admins"
	KeySession   = "adminSession"
)

// Store is a single storage scope.
type Store interface {
	// Get returns the raw value for key, reporting whether it was present.
	Get(key string) ([]byte, bool)
	// Set writes the value for key. Writes are synchronous.
	Set(key string, value []byte) error
	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string)
}

// Load unmarshals the value under key into out. Missing keys and corrupt
// JSON are treated identically: out is left untouched and false is returned.
func Load(s Store, key string, out any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

// Save marshals v and writes it under key.
func Save(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}
