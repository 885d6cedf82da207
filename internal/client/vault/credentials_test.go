package vault_test

import (
	"context"
	"testing"

	"github.com/eprometna/client-go/internal/client/vault"
	"github.com/eprometna/client-go/internal/client/vault/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestCredentialsPreferDeviceToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := memory.New()
	require.NoError(t, v.Set(ctx, vault.KeyDeviceToken, "device-tok"))
	require.NoError(t, v.Set(ctx, vault.KeyAccessToken, "access-tok"))

	token, err := vault.Credentials{Vault: v}.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "device-tok", token)
}

func TestCredentialsFallBackToAccessToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := memory.New()
	require.NoError(t, v.Set(ctx, vault.KeyAccessToken, "access-tok"))

	token, err := vault.Credentials{Vault: v}.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "access-tok", token)
}

func TestCredentialsEmptyWhenVaultEmpty(t *testing.T) {
	t.Parallel()

	token, err := vault.Credentials{Vault: memory.New()}.Token(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestKeyValid(t *testing.T) {
	t.Parallel()

	for _, k := range vault.Keys {
		require.True(t, k.Valid())
	}
	require.False(t, vault.Key("password").Valid())
}
