// Package memory provides the non-persisting vault driver, used by tests
// and by sessions started without "remember device".
package memory

import (
	"context"
	"sync"

	"github.com/eprometna/client-go/internal/client/vault"
)

type Vault struct {
	mu      sync.RWMutex
	entries map[vault.Key]string
}

func New() *Vault {
	return &Vault{entries: make(map[vault.Key]string)}
}

func (v *Vault) Set(_ context.Context, key vault.Key, value string) error {
	if !key.Valid() {
		return vault.ErrUnknownKey
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries[key] = value
	return nil
}

func (v *Vault) Get(_ context.Context, key vault.Key) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	value, ok := v.entries[key]
	return value, ok
}

func (v *Vault) Delete(_ context.Context, key vault.Key) error {
	if !key.Valid() {
		return vault.ErrUnknownKey
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.entries, key)
	return nil
}

func (v *Vault) Close() error { return nil }
