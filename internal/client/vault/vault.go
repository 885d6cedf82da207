// Package vault is the persistent credential store. It holds exactly four
// string slots; each operation is atomic per key and there is no multi-key
// transaction. The vault must be usable before any network activity since
// cold-start routing depends on it.
package vault

import (
	"context"
	"errors"
)

// Key names the four fixed slots. The literal values are a persistence
// contract carried over from earlier releases; do not rename them.
type Key string

const (
	KeyDeviceToken  Key = "deviceToken"
	KeyAccessToken  Key = "accessToken"
	KeyRefreshToken Key = "refreshToken"
	KeyUserData     Key = "userData"
)

// Keys lists every slot, in logout-deletion order.
var Keys = []Key{KeyDeviceToken, KeyAccessToken, KeyRefreshToken, KeyUserData}

// ErrUnknownKey reports a key outside the four fixed slots.
var ErrUnknownKey = errors.New("vault: unknown key")

// Vault is the per-key credential store contract.
//
// Get intentionally has no error return: storage failures are logged by the
// driver and surfaced as "absent" so upstream logic stays simple. A caller
// can never distinguish "not stored" from "storage broken", and must not
// need to.
type Vault interface {
	Set(ctx context.Context, key Key, value string) error
	Get(ctx context.Context, key Key) (value string, ok bool)
	Delete(ctx context.Context, key Key) error
	Close() error
}

// Valid reports whether k is one of the four fixed slots.
func (k Key) Valid() bool {
	switch k {
	case KeyDeviceToken, KeyAccessToken, KeyRefreshToken, KeyUserData:
		return true
	}
	return false
}
