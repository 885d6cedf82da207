package sqlite

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/eprometna/client-go/internal/client/vault"
	"github.com/eprometna/client-go/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestVault(t *testing.T, dir string) *Vault {
	t.Helper()

	cipher, err := cryptox.NewValueCipher([]byte("vault-driver-test-key"))
	require.NoError(t, err)

	dsn := "file:" + filepath.Join(dir, "vault.db")
	v, err := New(dsn, cipher, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })
	return v
}

func TestSetGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := newTestVault(t, t.TempDir())

	_, ok := v.Get(ctx, vault.KeyAccessToken)
	require.False(t, ok)

	require.NoError(t, v.Set(ctx, vault.KeyAccessToken, "access-1"))
	got, ok := v.Get(ctx, vault.KeyAccessToken)
	require.True(t, ok)
	require.Equal(t, "access-1", got)

	require.NoError(t, v.Set(ctx, vault.KeyAccessToken, "access-2"))
	got, _ = v.Get(ctx, vault.KeyAccessToken)
	require.Equal(t, "access-2", got)

	require.NoError(t, v.Delete(ctx, vault.KeyAccessToken))
	_, ok = v.Get(ctx, vault.KeyAccessToken)
	require.False(t, ok)
}

func TestValuesSurviveReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	v := newTestVault(t, dir)
	require.NoError(t, v.Set(ctx, vault.KeyDeviceToken, "persisted-device-token"))
	require.NoError(t, v.Close())

	reopened := newTestVault(t, dir)
	got, ok := reopened.Get(ctx, vault.KeyDeviceToken)
	require.True(t, ok)
	require.Equal(t, "persisted-device-token", got)
}

func TestValuesAreSealedAtRest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := newTestVault(t, t.TempDir())
	require.NoError(t, v.Set(ctx, vault.KeyRefreshToken, "plaintext-refresh"))

	var raw []byte
	err := v.db.QueryRowContext(ctx,
		`SELECT value FROM vault_entries WHERE key = ?;`, string(vault.KeyRefreshToken),
	).Scan(&raw)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "plaintext-refresh")
}

func TestRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := newTestVault(t, t.TempDir())
	require.ErrorIs(t, v.Set(ctx, vault.Key("nope"), "x"), vault.ErrUnknownKey)
	require.ErrorIs(t, v.Delete(ctx, vault.Key("nope")), vault.ErrUnknownKey)
}
