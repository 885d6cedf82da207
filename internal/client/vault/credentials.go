package vault

import "context"

// Credentials adapts a Vault into the transport layer's CredentialSource.
// The device token is the preferred bearer credential; the access token is
// the fallback. Both reads go to persisted storage on every request so a
// freshly persisted token takes effect immediately.
type Credentials struct {
	Vault Vault
}

func (c Credentials) Token(ctx context.Context) (string, error) {
	if token, ok := c.Vault.Get(ctx, KeyDeviceToken); ok && token != "" {
		return token, nil
	}

	if token, ok := c.Vault.Get(ctx, KeyAccessToken); ok {
		return token, nil
	}

	return "", nil
}
